package handler

import (
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"hotel/shared/metrics"
	hotelHTTP "hotel/transport/http"
	"hotel/transport/http/response"
)

var (
	once    sync.Once
	server  *hotelHTTP.HTTP
	initErr error
)

// Handler is the serverless entrypoint. The dependency graph is built on the
// first request and reused while the instance stays warm.
func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()
		logger.UseEnvironmentOutput(cfg)
		logger.SetLogLevel(cfg)

		metrics.Register()

		server, initErr = di.InitializeService()
	})

	if initErr != nil {
		logger.ErrorWithStack(initErr)
		response.WithUnhealthy(w)

		return
	}

	server.ServeHTTP(w, r)
}
