package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	temporalsdk "go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/providers/temporal"
)

// FinalizeWorkflowID returns the workflow ID shared by every finalization of an event
func FinalizeWorkflowID(eventID uint64) string {
	return fmt.Sprintf("finalize-event-%d", eventID)
}

// FinalizeTrigger starts event finalization workflows
//
//go:generate mockgen -source=trigger.go -destination=../mocks/finalize_trigger.go -package=mocks -mock_names=FinalizeTrigger=MockFinalizeTrigger
type FinalizeTrigger interface {
	// Start starts the finalization workflow of the event, or attaches to the running one
	Start(ctx context.Context, eventID uint64) (client.WorkflowRun, error)
	// Finalize starts the finalization workflow of the event and waits for its result
	Finalize(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error)
}

type finalizeTrigger struct {
	orchestrator temporal.TemporalOrchestrator
	taskQueue    string
}

// NewFinalizeTrigger creates a trigger that starts workflows on taskQueue
func NewFinalizeTrigger(orchestrator temporal.TemporalOrchestrator, taskQueue string) FinalizeTrigger {
	return &finalizeTrigger{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

func (t *finalizeTrigger) Start(ctx context.Context, eventID uint64) (client.WorkflowRun, error) {
	options := client.StartWorkflowOptions{
		ID:                       FinalizeWorkflowID(eventID),
		TaskQueue:                t.taskQueue,
		WorkflowExecutionTimeout: 30 * time.Minute,
		WorkflowIDConflictPolicy: enums.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING,
		WorkflowIDReusePolicy:    enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}

	// only the method value is needed to resolve the workflow name
	w := NewWorkerCore(nil)
	run, err := t.orchestrator.ExecuteWorkflow(ctx, options, w.FinalizeEvent, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to start finalize workflow: %w", err)
	}

	if run != nil {
		logger.InfoCtx(ctx, "Finalize workflow started",
			zap.Uint64("eventID", eventID),
			zap.String("workflow_id", run.GetID()),
			zap.String("run_id", run.GetRunID()),
		)
	}
	return run, nil
}

func (t *finalizeTrigger) Finalize(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error) {
	run, err := t.Start(ctx, eventID)
	if err != nil {
		return nil, err
	}

	var result domain.FinalizeResult
	if err := run.Get(ctx, &result); err != nil {
		var appErr *temporalsdk.ApplicationError
		if errors.As(err, &appErr) && appErr.Type() == ERROR_TYPE_EVENT_NOT_FOUND {
			return nil, fmt.Errorf("%w: %d", domain.ErrEventNotFound, eventID)
		}
		return nil, fmt.Errorf("finalize workflow failed: %w", err)
	}
	return &result, nil
}
