package main

import (
	"os"
	"sportshub/config"
	"sportshub/helper"
	"sportshub/shared/logger"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	usage = "usage: migrate up | down | step-up | drop | force <version>"
)

func main() {
	logger.InitLogger()

	if len(os.Args) < 2 {
		log.Fatal().Msg(usage)
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	action := os.Args[1]

	if action == "force" {
		if len(os.Args) < 3 {
			log.Fatal().Msg(usage)
		}

		version, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Str("version", os.Args[2]).Msg("Invalid migration version")
		}

		if err = helper.Force(cfg, version); err != nil {
			log.Fatal().Err(err).Msg("Failed to force migration version")
		}

		return
	}

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", action).Msg(usage)
	}
}
