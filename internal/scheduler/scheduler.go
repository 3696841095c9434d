package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/solforge/fairmint/internal/adapter"
	"github.com/solforge/fairmint/internal/logger"
	"github.com/solforge/fairmint/internal/store"
	"github.com/solforge/fairmint/internal/workflows"
)

// CloseDetector periodically starts the finalization workflow of events whose window has ended
type CloseDetector struct {
	cron    *cron.Cron
	store   store.Store
	trigger workflows.FinalizeTrigger
	clock   adapter.Clock
	ctx     context.Context
}

// NewCloseDetector creates a detector running on the given cron spec (standard 5 field or @every)
func NewCloseDetector(ctx context.Context, spec string, st store.Store, trigger workflows.FinalizeTrigger, clock adapter.Clock) (*CloseDetector, error) {
	cronLogger := zapCronLogger{logger: logger.Default().Named("cron")}
	d := &CloseDetector{
		cron:    cron.New(cron.WithLogger(cronLogger), cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		store:   st,
		trigger: trigger,
		clock:   clock,
		ctx:     ctx,
	}
	if _, err := d.cron.AddFunc(spec, d.RunOnce); err != nil {
		return nil, fmt.Errorf("invalid scheduler spec %q: %w", spec, err)
	}
	return d, nil
}

// Start starts the cron scheduler in its own goroutine
func (d *CloseDetector) Start() {
	d.cron.Start()
	logger.InfoCtx(d.ctx, "Close detector started")
}

// Stop stops the scheduler and waits for a running detection to finish
func (d *CloseDetector) Stop() {
	<-d.cron.Stop().Done()
	logger.InfoCtx(d.ctx, "Close detector stopped")
}

// RunOnce starts a finalization workflow for every ended event that is not finalized
func (d *CloseDetector) RunOnce() {
	events, err := d.store.ListEventsPendingFinalization(d.ctx, d.clock.Now())
	if err != nil {
		logger.ErrorCtx(d.ctx, fmt.Errorf("failed to list events pending finalization: %w", err))
		return
	}

	for _, event := range events {
		if _, err := d.trigger.Start(d.ctx, event.ID); err != nil {
			logger.ErrorCtx(d.ctx, err, zap.Uint64("eventID", event.ID))
			continue
		}
		logger.InfoCtx(d.ctx, "Ended event queued for finalization",
			zap.Uint64("eventID", event.ID),
			zap.Time("endTime", event.EndTime))
	}
}

// zapCronLogger routes cron logs to zap
type zapCronLogger struct {
	logger *zap.Logger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, zap.Any("details", keysAndValues))
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, zap.Error(err), zap.Any("details", keysAndValues))
}
