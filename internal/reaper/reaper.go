package reaper

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type deviceCleaner interface {
	CleanupExpiredDevices(ctx context.Context) (int64, error)
}

// Reaper owns the periodic expired-device sweep. It is started once at
// process init and stopped at shutdown; the sweep itself is idempotent,
// so overlapping runs are harmless.
type Reaper struct {
	sched    *cron.Cron
	ctrl     deviceCleaner
	interval time.Duration
}

func New(ctrl deviceCleaner, interval time.Duration) *Reaper {
	return &Reaper{
		sched:    cron.New(),
		ctrl:     ctrl,
		interval: interval,
	}
}

func (r *Reaper) Start(ctx context.Context) error {
	_, err := r.sched.AddFunc(
		fmt.Sprintf("@every %s", r.interval), func() {
			if _, err := r.ctrl.CleanupExpiredDevices(ctx); err != nil {
				zap.L().Error("expired-device sweep failed", zap.Error(err))
			}
		},
	)
	if err != nil {
		return err
	}

	r.sched.Start()
	zap.L().Info("Reaper has been started", zap.Duration("interval", r.interval))
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (r *Reaper) Stop() {
	<-r.sched.Stop().Done()
	zap.L().Info("Reaper has been stopped")
}
