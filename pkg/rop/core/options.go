package core

import (
	"context"

	"go.uber.org/zap"
)

type OptionKey string

const (
	LoggerOptionKey   OptionKey = "logger_options"
	PipelineOptionKey OptionKey = "pipeline_options"
)

type LoggerOptions struct {
	Logger *zap.Logger
}

type PipelineOptions struct {
	Name string
}

// WithLogger enables stage tracing through logger. Stages are traced at
// debug level.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func WithPipelineName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, PipelineOptionKey, PipelineOptions{Name: name})
}

// GetLogger returns the logger set by WithLogger, or a no-op logger.
func GetLogger(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return zap.NewNop()
}

func GetPipelineName(ctx context.Context, defaultName string) string {
	if ctx == nil {
		return defaultName
	}
	options, ok := ctx.Value(PipelineOptionKey).(PipelineOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return defaultName
}
