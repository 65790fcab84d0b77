// Package logger provides structured logging built on Go's standard slog package.
//
// Loggers are created with the New factory and functional options:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithJSONFormatter(),
//	)
//
//	log.Info("server started", logger.Port(53472), logger.Component("server"))
//
// Attribute helpers return an empty slog.Attr for zero values (nil error,
// empty string), so they can be passed unconditionally:
//
//	log.Error("request failed", logger.Error(err), logger.Path(r.URL.Path))
package logger
