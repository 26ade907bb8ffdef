// Package logger provides the process-wide structured logger for finetype.
//
// Two output modes are supported: human-readable console output for
// interactive CLI use, and JSON output for machine consumption when piped.
// Both are backed by go.uber.org/zap.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names, used instead of raw strings so log lines stay
// greppable across packages.
const (
	FieldLabel     = "label"
	FieldDomain    = "domain"
	FieldCategory  = "category"
	FieldLocale    = "locale"
	FieldKey       = "key"
	FieldPath      = "path"
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldCount     = "count"
	FieldRowIndex  = "row_index"
	FieldRule      = "rule"
	FieldConfidence = "confidence"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)

// Logger is the global, process-wide sugared logger. It is safe to read
// from multiple goroutines once Initialize has returned.
var Logger = zap.NewNop().Sugar()

// Initialize configures the global logger. jsonOutput selects structured
// JSON (for the `--json` CLI path and machine pipelines) vs a
// human-readable console encoder (the interactive default).
func Initialize(jsonOutput bool) error {
	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		cfg.EncoderConfig.TimeKey = "ts"
		zapLogger, err = cfg.Build()
	} else {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		encoderCfg.TimeKey = ""
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderCfg),
			zapcore.AddSync(os.Stderr),
			zap.InfoLevel,
		)
		zapLogger = zap.New(core)
	}
	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries. Call before process exit.
func Sync() {
	_ = Logger.Sync()
}
