// Package server wraps http.Server with functional options, environment
// configuration and graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg.Server, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Run returns a func() error suitable for errgroup.Group.Go: it serves until
// ctx is cancelled, then shuts down within the configured timeout. Start and
// Stop give direct control when no errgroup is involved.
//
// TLS is enabled when SERVER_TLS_CERT_FILE and SERVER_TLS_KEY_FILE are both
// set, or with WithTLS.
package server
