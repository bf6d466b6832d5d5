// Package logger provides structured JSON logging for the module's packages.
//
// It wraps Uber's Zap logger behind the small Logger surface the other
// packages accept: leveled methods taking a message, an optional error and
// optional structured field maps. Every entry carries the process ID and a
// configurable service name.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "task-scheduler",
//	})
//
//	log.Info("queue declared", nil, map[string]interface{}{
//		"queue": "q.task",
//	})
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// The fx module registers an OnStop hook that flushes buffered entries on
// shutdown.
//
// Configuration:
//
//	ZAP_LOGGER_LEVEL=debug              # Log level (debug, info, warning, error)
//	ZAP_LOGGER_SERVICE_NAME=my-service  # "service" field on every entry
//
// Thread Safety:
//
// All methods on Logger are safe for concurrent use by multiple goroutines.
package logger
