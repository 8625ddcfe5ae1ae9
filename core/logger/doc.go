// Package logger builds the zap logger shared by the server and the CLI.
//
// Level "debug" selects the development preset with ISO8601 timestamps; other
// levels use the production preset at the requested threshold. Format
// "console" switches to colored console output.
//
// WithRayID attaches the request id stored by the rayid middleware so every
// line written while serving a request can be correlated:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Using fallback data set", zap.Error(err))
package logger
