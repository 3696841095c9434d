package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/mocks"
	"github.com/solforge/fairmint/internal/workflows"
)

func TestFinalizeWorkflowID(t *testing.T) {
	assert.Equal(t, "finalize-event-42", workflows.FinalizeWorkflowID(42))
}

func TestFinalizeTrigger_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
	run := mocks.NewMockWorkflowRun(ctrl)
	run.EXPECT().GetID().Return("finalize-event-42").AnyTimes()
	run.EXPECT().GetRunID().Return("run-1").AnyTimes()

	orchestrator.EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), uint64(42)).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "finalize-event-42", options.ID)
			assert.Equal(t, "fairmint-finalizer", options.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_CONFLICT_POLICY_USE_EXISTING, options.WorkflowIDConflictPolicy)
			return run, nil
		})

	got, err := workflows.NewFinalizeTrigger(orchestrator, "fairmint-finalizer").Start(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "run-1", got.GetRunID())
}

func TestFinalizeTrigger_Finalize(t *testing.T) {
	ctx := context.Background()

	t.Run("waits for the result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
		run := mocks.NewMockWorkflowRun(ctrl)
		run.EXPECT().GetID().Return("finalize-event-1").AnyTimes()
		run.EXPECT().GetRunID().Return("run-1").AnyTimes()
		run.EXPECT().Get(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, valuePtr interface{}) error {
			*valuePtr.(*domain.FinalizeResult) = domain.FinalizeResult{EventID: 1, Allocations: 2}
			return nil
		})
		orchestrator.EXPECT().ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), uint64(1)).Return(run, nil)

		result, err := workflows.NewFinalizeTrigger(orchestrator, "q").Finalize(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, result.Allocations)
	})

	t.Run("unknown event maps to the domain error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orchestrator := mocks.NewMockTemporalOrchestrator(ctrl)
		run := mocks.NewMockWorkflowRun(ctrl)
		run.EXPECT().GetID().Return("finalize-event-9").AnyTimes()
		run.EXPECT().GetRunID().Return("run-9").AnyTimes()
		run.EXPECT().Get(ctx, gomock.Any()).Return(
			temporal.NewNonRetryableApplicationError("event not found", workflows.ERROR_TYPE_EVENT_NOT_FOUND, nil))
		orchestrator.EXPECT().ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), uint64(9)).Return(run, nil)

		_, err := workflows.NewFinalizeTrigger(orchestrator, "q").Finalize(ctx, 9)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("start failure", func(t *testing.T) {
		orchestrator := mocks.NewMockTemporalOrchestrator(gomock.NewController(t))
		orchestrator.EXPECT().ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), uint64(3)).
			Return(nil, errors.New("temporal unavailable"))

		_, err := workflows.NewFinalizeTrigger(orchestrator, "q").Finalize(ctx, 3)
		assert.Error(t, err)
	})
}
