// Package bootstrap provides uniform application lifecycle management:
// config validation, logger construction, component startup in registration
// order, readiness verification, signal handling, and graceful shutdown.
//
// A typical service:
//
//	var cfg MyConfig
//	if err := config.Load("relay", &cfg); err != nil { ... }
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil { ... }
//	srv := server.New(cfg.Server, app.Logger)
//	srv.ApplyDefaults(app.Name, cfg.DisclosureRestricted(), app.Components)
//	_ = app.RegisterComponent(server.NewComponent(srv))
//	_ = app.Run(context.Background())
package bootstrap
