package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/solforge/fairmint/internal/domain"
)

// WorkerCore defines the workflows hosted by the worker
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// FinalizeEvent finalizes an event. It runs under the workflow ID finalize-event-<id>
	// so a single execution writes the allocations of an event.
	FinalizeEvent(ctx workflow.Context, eventID uint64) (*domain.FinalizeResult, error)
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor) WorkerCore {
	return &workerCore{executor: executor}
}
