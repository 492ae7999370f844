// Package logger builds *slog.Logger instances for formulate services and
// tools, and keeps attribute naming consistent across packages.
//
// New takes functional options for format (text or json), level, static
// attributes and ContextExtractor callbacks. Extractors run on every record
// through LogHandlerDecorator, so values stored in a request context are
// attached without threading them through every call.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formulate"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "field validated",
//	    logger.Field("email"),
//	    logger.Rules("required|email"),
//	    logger.Failed(1),
//	)
//
// Discard returns a logger that drops everything; it is the default for
// library components that accept an optional logger.
package logger
