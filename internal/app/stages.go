package app

import (
	"context"
	"fmt"
	"log/slog"
)

// Stage names a step of the wallpaper cycle that can fail. Acquisition and
// rendering degrade to fallbacks instead and have no stage.
type Stage string

const (
	StageSave  Stage = "save"
	StageApply Stage = "apply"
)

// CycleError wraps a failure with the stage it happened in.
type CycleError struct {
	Stage Stage
	Cause error
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Stage, e.Cause)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *CycleError) Unwrap() error {
	return e.Cause
}

// runStage runs fn as stage, logging its start and failure.
func runStage[T any](ctx context.Context, logger *slog.Logger, stage Stage, fn func(context.Context) (T, error)) (T, error) {
	logger.DebugContext(ctx, "starting stage", slog.String("stage", string(stage)))

	result, err := fn(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "stage failed",
			slog.String("stage", string(stage)),
			slog.Any("error", err),
		)

		var zero T

		return zero, &CycleError{Stage: stage, Cause: err}
	}

	logger.DebugContext(ctx, "stage complete", slog.String("stage", string(stage)))

	return result, nil
}
