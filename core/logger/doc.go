// Package logger builds slog loggers with environment presets, context
// attribute extraction and helpers for common attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "obfuscation"),
//		logger.WithContextExtractors(middleware.RequestIDExtractor),
//	)
//	log.InfoContext(ctx, "server starting", logger.Component("server"), logger.Address(":8080"))
//
// Development output is text at debug level; production output is JSON at
// info level. Attribute helpers return empty attributes for zero values, so
// logger.Error(nil) adds nothing to the record.
package logger
