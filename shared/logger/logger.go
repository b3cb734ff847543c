package logger

import (
	"io"
	"os"
	"time"

	"sportshub/config"
	"sportshub/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global zerolog logger. Production writes JSON lines; every
// other environment gets the human-readable console writer.
func InitLogger() {
	cfg := config.Get()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(writerFor(cfg.Server.Env)).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("env", cfg.Server.Env).
		Logger()

	log.Trace().Msg("Zerolog initialized.")
}

func writerFor(env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return os.Stdout
	}

	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies LOG_LEVEL, keeping trace when it is unset or unparseable.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)

	switch {
	case cfg.Server.LogLevel == "":
		level = zerolog.TraceLevel
		log.Trace().Msg("Environment has no log level set up, using default.")
	case err != nil:
		level = zerolog.TraceLevel
		log.Warn().Str("loglevel", cfg.Server.LogLevel).Msg("Unknown log level, using default.")
	default:
		log.Trace().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
