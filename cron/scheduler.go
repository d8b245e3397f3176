package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"coffeebar.GO/app"
)

// jobTimeout bounds a single scheduled run.
const jobTimeout = 2 * time.Minute

// ScheduleFor returns the schedule of a job, preferring the configured
// override.
func ScheduleFor(deps *app.Deps, name string, j Job) string {
	if s, ok := deps.Config.CronSchedules[name]; ok && s != "" {
		return s
	}
	return j.Schedule
}

// StartCron schedules every registered job and starts the scheduler.
func StartCron(deps *app.Deps) (*cron.Cron, error) {
	c := cron.New()
	for name, j := range Jobs() {
		name, run := name, j.Run
		sched := ScheduleFor(deps, name, j)
		_, err := c.AddFunc(sched, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			if err := run(ctx, deps); err != nil {
				deps.Log.Warn("cron job failed", zap.String("job", name), zap.Error(err))
			}
		})
		if err != nil {
			return nil, fmt.Errorf("register job %s: %w", name, err)
		}
		deps.Log.Info("cron job scheduled", zap.String("job", name), zap.String("schedule", sched))
	}
	c.Start()
	return c, nil
}

// RunJob runs a single registered job by name.
func RunJob(ctx context.Context, deps *app.Deps, name string, args ...string) error {
	j, ok := Jobs()[name]
	if !ok {
		return fmt.Errorf("unknown job: %s", name)
	}
	return j.Run(ctx, deps, args...)
}
