package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
)

// FinalizeEvent runs the FinalizeEvent activity with retries
func (w *workerCore) FinalizeEvent(ctx workflow.Context, eventID uint64) (*domain.FinalizeResult, error) {
	logger.InfoWf(ctx, "Starting event finalization", zap.Uint64("eventID", eventID))

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        time.Minute,
			MaximumAttempts:        5,
			NonRetryableErrorTypes: []string{ERROR_TYPE_EVENT_NOT_FOUND},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var result domain.FinalizeResult
	if err := workflow.ExecuteActivity(ctx, w.executor.FinalizeEvent, eventID).Get(ctx, &result); err != nil {
		logger.ErrorWf(ctx, fmt.Errorf("failed to finalize event %d", eventID), zap.Error(err))
		return nil, err
	}

	logger.InfoWf(ctx, "Event finalization completed",
		zap.Uint64("eventID", eventID),
		zap.Bool("alreadyFinalized", result.AlreadyFinalized),
		zap.Int("allocations", result.Allocations),
	)

	return &result, nil
}
