package temporal

import (
	"context"
	"fmt"

	"go.temporal.io/sdk/client"

	"github.com/solforge/fairmint/internal/config"
	"github.com/solforge/fairmint/internal/logger"
)

//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
//go:generate mockgen -destination=../../mocks/workflow_run.go -package=mocks -mock_names=WorkflowRun=MockWorkflowRun go.temporal.io/sdk/client WorkflowRun

// TemporalOrchestrator starts workflows. client.Client satisfies it.
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}

// Dial connects to the Temporal frontend with logs routed through the global zap logger
func Dial(cfg config.TemporalConfig) (client.Client, error) {
	c, err := client.Dial(client.Options{
		HostPort:  cfg.HostPort,
		Namespace: cfg.Namespace,
		Logger:    NewZapLoggerAdapter(logger.Default().Named("temporal")),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to temporal at %s: %w", cfg.HostPort, err)
	}
	return c, nil
}
