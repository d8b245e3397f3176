package cron

import (
	"context"
	"testing"

	"coffeebar.GO/app"
	"coffeebar.GO/config"
)

func TestRegistry_Register_Jobs(t *testing.T) {
	ran := false
	Register("testregistryjob", "@every 1h", func(ctx context.Context, deps *app.Deps, args ...string) error {
		ran = true
		return nil
	})
	defer Unregister("testregistryjob")

	jobs := Jobs()
	j, ok := jobs["testregistryjob"]
	if !ok {
		t.Fatal("testregistryjob not in Jobs()")
	}
	if j.Schedule != "@every 1h" {
		t.Errorf("Schedule = %q, want @every 1h", j.Schedule)
	}
	if err := RunJob(context.Background(), nil, "testregistryjob"); err != nil {
		t.Fatalf("RunJob: %v", err)
	}
	if !ran {
		t.Error("Run did not execute")
	}
}

func TestRegistry_Register_DuplicatePanics(t *testing.T) {
	noop := func(context.Context, *app.Deps, ...string) error { return nil }
	Register("dupjob", "@hourly", noop)
	defer Unregister("dupjob")
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate")
		}
	}()
	Register("dupjob", "@daily", noop)
}

func TestRunJob_Unknown(t *testing.T) {
	if err := RunJob(context.Background(), nil, "nonexistent"); err == nil {
		t.Fatal("want error for unknown job")
	}
}

func TestScheduleFor(t *testing.T) {
	deps := &app.Deps{Config: &config.Config{CronSchedules: map[string]string{"a": "@every 1m"}}}
	if got := ScheduleFor(deps, "a", Job{Schedule: "@hourly"}); got != "@every 1m" {
		t.Errorf("override: got %q", got)
	}
	if got := ScheduleFor(deps, "b", Job{Schedule: "@hourly"}); got != "@hourly" {
		t.Errorf("default: got %q", got)
	}
}
