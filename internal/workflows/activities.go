package workflows

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/solforge/fairmint/internal/domain"
	"github.com/solforge/fairmint/internal/finalizer"
)

// ERROR_TYPE_EVENT_NOT_FOUND is the application error type of a finalization for an unknown event
const ERROR_TYPE_EVENT_NOT_FOUND = "EventNotFound"

// Executor defines the activities run by the worker
//
//go:generate mockgen -source=activities.go -destination=../mocks/activities.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// FinalizeEvent computes the allocations of an event
	FinalizeEvent(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error)
}

// executor is the concrete implementation of Executor
type executor struct {
	finalizer finalizer.Finalizer
}

// NewExecutor creates a new executor instance
func NewExecutor(f finalizer.Finalizer) Executor {
	return &executor{finalizer: f}
}

func (e *executor) FinalizeEvent(ctx context.Context, eventID uint64) (*domain.FinalizeResult, error) {
	result, err := e.finalizer.Finalize(ctx, eventID)
	if errors.Is(err, domain.ErrEventNotFound) {
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ERROR_TYPE_EVENT_NOT_FOUND, err)
	}
	return result, err
}
