// Package httpserver runs an http.Server with graceful shutdown.
//
// Run blocks until the passed context is cancelled or the process receives
// SIGINT or SIGTERM, then calls http.Server.Shutdown with the configured
// timeout. Failures wrap ErrListen, ErrServe, ErrAlreadyRunning or
// ErrShutdown.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheck returns a handler for liveness and readiness probes.
package httpserver
