// Package server wraps http.Server with graceful shutdown, functional
// options, and local port negotiation.
//
// The server binds one of a fixed ordered list of candidate ports on the
// loopback interface:
//
//	port, err := server.NegotiatePort(cfg.Host, cfg.Ports)
//	if err != nil {
//		return err // no candidate port available, nothing to serve on
//	}
//
//	srv := server.NewFromConfig(cfg, port, server.WithLogger(log))
//
// Start blocks until the context is canceled; Run returns an errgroup
// compatible closure that shuts down gracefully on cancellation and
// surfaces a grace-period overrun as an error:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
package server
