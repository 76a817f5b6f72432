// Package logger provides a structured logging facility based on Zap.
//
// The debug level selects zap's development configuration (ISO8601 timestamps,
// caller info); every other level uses the production configuration with the
// requested minimum level. Output is either json or console encoded.
//
// # Context Awareness
//
// WithRayID extracts the request id stored by the rayid middleware and attaches
// it to the logger, so every line written while serving a request can be
// correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
