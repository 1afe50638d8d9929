// Package logging builds the zap logger used by the quadra command and
// adapts it to the engines' step hooks.
//
// Engines never log. Progress reaches the logger only through
// core.WithOnStep(StepLogger(...)).
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/quadra/core"
	"github.com/katalvlaran/quadra/internal/config"
)

// New creates a logger writing to w with the configured level and format.
func New(cfg config.LogConfig, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if cfg.Format != "json" && cfg.Format != "console" {
		return nil, fmt.Errorf("log format must be 'json' or 'console', got %q", cfg.Format)
	}

	c := zapcore.NewCore(newEncoder(cfg.Format), zapcore.AddSync(w), level)

	return zap.New(c), nil
}

// newEncoder creates JSON or console encoder.
func newEncoder(format string) zapcore.Encoder {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if format == "console" {
		return zapcore.NewConsoleEncoder(encoderCfg)
	}
	return zapcore.NewJSONEncoder(encoderCfg)
}

// StepLogger returns a core.Step hook that logs every refinement at info
// level. The first step of a run has no error estimate and logs none.
func StepLogger(logger *zap.Logger, method string) func(core.Step) {
	l := logger.With(zap.String("method", method))

	return func(s core.Step) {
		fields := []zap.Field{
			zap.Int("level", s.Level),
			zap.Int("slices", s.Slices),
			zap.Float64("estimate", s.Estimate),
		}
		if s.HasError {
			fields = append(fields, zap.Float64("error", s.ErrorEstimate))
		}
		l.Info("refinement step", fields...)
	}
}

// LogResult logs the outcome of an adaptive run. A run that hit its slice
// cap is logged as a warning.
func LogResult(logger *zap.Logger, method string, res core.Result) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.Float64("value", res.Value),
		zap.Stringer("status", res.Status),
		zap.Int("level", res.Level),
		zap.Int("slices", res.Slices),
		zap.Float64("error", res.ErrorEstimate),
		zap.Int("evaluations", res.Evaluations),
	}
	if !res.Converged() {
		logger.Warn("tolerance not met", fields...)
		return
	}
	logger.Debug("converged", fields...)
}
