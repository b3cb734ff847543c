// Package handler is the serverless entrypoint. Each cold start builds the service
// graph once and reuses it across invocations.
package handler

import (
	"net/http"
	"sync"

	"sportshub/config"
	"sportshub/di"
	"sportshub/shared/logger"
)

var (
	once    sync.Once
	service http.Handler
)

func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		logger.InitLogger()
		logger.SetLogLevel(config.Get())

		service = di.InitializeService()
	})

	r.RequestURI = r.URL.String()
	service.ServeHTTP(w, r)
}
