package logging

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with domain-specific methods
type Logger struct {
	*slog.Logger
}

// New creates a text-formatted logger
func New(debug bool) *Logger {
	return &Logger{slog.New(slog.NewTextHandler(os.Stderr, handlerOptions(debug)))}
}

// NewJSON creates a JSON-formatted logger
func NewJSON(debug bool) *Logger {
	return &Logger{slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions(debug)))}
}

func handlerOptions(debug bool) *slog.HandlerOptions {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}

// WithComponent adds a component field to the logger
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{l.With("component", component)}
}

// LogAnalysisRun logs the outcome of one analysis run
func (l *Logger) LogAnalysisRun(applianceCount, skippedRows int, totalMonthlyKWh float64) {
	l.Info("Analysis completed",
		"appliances", applianceCount,
		"skipped_rows", skippedRows,
		"total_monthly_kwh", totalMonthlyKWh,
	)
}

// LogBillExtraction logs bill field extraction results
func (l *Logger) LogBillExtraction(consumerNo string, meteredUnits float64) {
	l.Info("Bill extracted",
		"consumer_no", consumerNo,
		"metered_units", meteredUnits,
	)
}

// LogSkippedRow logs one rejected input row
func (l *Logger) LogSkippedRow(index int, reason, message string) {
	l.Warn("Row skipped",
		"index", index,
		"reason", reason,
		"message", message,
	)
}
