package core

import (
	"context"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/railway/pkg/rop"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
	OutcomeSkipped Outcome = "skipped"
)

const stageMessage = "pipeline stage"

// StageName returns name, or "stage-<index>" for an unnamed stage.
func StageName(name string, index int) string {
	if name != "" {
		return name
	}
	return "stage-" + strconv.Itoa(index)
}

// Trace logs the result a stage produced.
func Trace[V, E any](ctx context.Context, stage string, r rop.Outcome[V, E]) {
	ce := GetLogger(ctx).Check(zapcore.DebugLevel, stageMessage)
	if ce == nil {
		return
	}

	fields := stageFields(ctx, stage, r.Id())
	if r.IsSuccess() {
		fields = append(fields, zap.String("outcome", string(OutcomeSuccess)))
	} else {
		fields = append(fields,
			zap.String("outcome", string(OutcomeFailure)),
			zap.Any("error", r.Error()))
	}
	ce.Write(fields...)
}

// TraceSkipped logs a stage that did not run because the pipeline had
// already failed.
func TraceSkipped(ctx context.Context, stage string, id uuid.UUID) {
	ce := GetLogger(ctx).Check(zapcore.DebugLevel, stageMessage)
	if ce == nil {
		return
	}

	fields := stageFields(ctx, stage, id)
	ce.Write(append(fields, zap.String("outcome", string(OutcomeSkipped)))...)
}

func stageFields(ctx context.Context, stage string, id uuid.UUID) []zap.Field {
	fields := make([]zap.Field, 0, 5)
	if name := GetPipelineName(ctx, ""); name != "" {
		fields = append(fields, zap.String("pipeline", name))
	}
	return append(fields,
		zap.String("stage", stage),
		zap.Stringer("result_id", id))
}
