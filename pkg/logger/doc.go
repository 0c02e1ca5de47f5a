// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent across the module.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("REDUCER_ENV"), "reducerdemo"),
//	    logger.WithLevelName("debug"),
//	)
//	logger.SetAsDefault(log)
//
//	log.Debug("status fallback",
//	    logger.Status("UNKNOWN_LABEL"),
//	    logger.Fallback("INIT"),
//	)
//
// New defaults to JSON at info level on stdout. WithEnvironment switches to
// text at debug level for development. WithFormat panics on unknown formats so
// a misconfigured binary fails at startup.
//
// Error returns an empty Attr for nil errors, allowing
//
//	log.Info("dispatched", logger.Error(err))
//
// without an additional nil check.
package logger
