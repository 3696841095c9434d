package workflows_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/temporal"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/mocks"
	"github.com/solforge/fairmint/internal/workflows"
)

func TestExecutor_FinalizeEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the finalizer result", func(t *testing.T) {
		finalizer := mocks.NewMockFinalizer(gomock.NewController(t))
		finalizer.EXPECT().Finalize(ctx, uint64(1)).Return(&domain.FinalizeResult{EventID: 1, Allocations: 3}, nil)

		result, err := workflows.NewExecutor(finalizer).FinalizeEvent(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, result.Allocations)
	})

	t.Run("unknown event is non retryable", func(t *testing.T) {
		finalizer := mocks.NewMockFinalizer(gomock.NewController(t))
		finalizer.EXPECT().Finalize(ctx, uint64(2)).Return(nil, fmt.Errorf("%w: 2", domain.ErrEventNotFound))

		_, err := workflows.NewExecutor(finalizer).FinalizeEvent(ctx, 2)
		var appErr *temporal.ApplicationError
		require.True(t, errors.As(err, &appErr))
		assert.True(t, appErr.NonRetryable())
		assert.Equal(t, workflows.ERROR_TYPE_EVENT_NOT_FOUND, appErr.Type())
	})

	t.Run("other errors pass through", func(t *testing.T) {
		finalizer := mocks.NewMockFinalizer(gomock.NewController(t))
		finalizer.EXPECT().Finalize(ctx, uint64(3)).Return(nil, assert.AnError)

		_, err := workflows.NewExecutor(finalizer).FinalizeEvent(ctx, 3)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
