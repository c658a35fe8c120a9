package daemon_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"mazecache/internal/daemon"
	"mazecache/internal/logging"
	"mazecache/internal/testsupport"
)

func TestDaemonStartStop(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	d, err := daemon.New(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() {
		d.Close()
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	status, err := d.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Running {
		t.Fatal("daemon should report running")
	}
	if status.PID != os.Getpid() {
		t.Fatalf("unexpected pid %d", status.PID)
	}
	if status.RunID == "" {
		t.Fatal("expected run id")
	}
	if status.StartedAt.IsZero() {
		t.Fatal("expected start timestamp")
	}

	if err := d.Start(ctx); err == nil {
		t.Fatal("second Start must fail")
	}

	d.Stop()
	status, err = d.Status(ctx)
	if err != nil {
		t.Fatalf("Status after stop: %v", err)
	}
	if status.Running {
		t.Fatal("daemon should be stopped")
	}
}

func TestDaemonLockPreventsSecondInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	logger := logging.NewNop()

	first, err := daemon.New(cfg, logger)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	t.Cleanup(func() { first.Close() })

	ctx := context.Background()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	second, err := daemon.New(cfg, logger)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}
	err = second.Start(ctx)
	if err == nil {
		second.Stop()
		t.Fatal("expected lock conflict")
	}
	if !strings.Contains(err.Error(), "already running") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDaemonRequiresConfigAndLogger(t *testing.T) {
	if _, err := daemon.New(nil, logging.NewNop()); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := daemon.New(testsupport.NewConfig(t), nil); err == nil {
		t.Fatal("expected error for nil logger")
	}
}
