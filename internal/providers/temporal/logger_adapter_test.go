package temporal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	adapter := NewZapLoggerAdapter(zap.New(core))

	adapter.Info("worker started", "TaskQueue", "fairmint-finalizer", "Attempt", 2)
	adapter.Warn("odd keyvals", "Namespace", "default", "dangling")
	adapter.Error("activity failed", "Error", errors.New("boom"), 42, "ignored")
	adapter.With("WorkflowID", "finalize-event-1").Debug("scoped")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "worker started", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"TaskQueue": "fairmint-finalizer", "Attempt": int64(2)}, entries[0].ContextMap())

	assert.Equal(t, map[string]interface{}{"Namespace": "default"}, entries[1].ContextMap())

	assert.Equal(t, map[string]interface{}{"Error": "boom"}, entries[2].ContextMap())

	assert.Equal(t, zap.DebugLevel, entries[3].Level)
	assert.Equal(t, "finalize-event-1", entries[3].ContextMap()["WorkflowID"])
}
