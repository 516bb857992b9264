// Package logger provides structured logging backed by zerolog.
//
// It supports JSON and console output, level configuration (including
// "disabled"), component-scoped loggers and structured fields. A nil
// *Logger is valid and discards everything, so code that treats logging
// as optional can hold a nil logger without checks.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.New(&cfg.Logging, cfg.Name).WithComponent("cloud")
//	log.Error("attach failed", logger.Fields(logger.FieldIncidentID, id))
package logger
