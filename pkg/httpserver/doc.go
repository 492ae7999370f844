// Package httpserver runs an http.Handler with graceful shutdown on context
// cancellation or SIGINT/SIGTERM, env-loadable timeouts and a JSON health
// endpoint.
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthHandler answers liveness with no checks and readiness with one or
// more named Check functions; any failure turns the response into 503.
package httpserver
