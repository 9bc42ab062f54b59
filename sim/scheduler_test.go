package sim

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestFrameSchedulerRunsOnlyWhileStarted(t *testing.T) {
	fs := NewFrameScheduler()
	ticks := 0

	fs.Tick() // no task registered
	if ticks != 0 {
		t.Fatal("task ran before Start")
	}

	fs.Start(func() { ticks++ })
	fs.Tick()
	fs.Tick()
	if ticks != 2 {
		t.Fatalf("ticks = %d, want 2", ticks)
	}

	fs.Stop()
	fs.Tick()
	if ticks != 2 {
		t.Fatalf("task ran after Stop, ticks = %d", ticks)
	}
}

func TestFrameSchedulerStartReplacesTask(t *testing.T) {
	fs := NewFrameScheduler()
	ticks := 0

	fs.Start(func() { ticks++ })
	fs.Start(func() { ticks++ }) // must not stack

	fs.Tick()
	if ticks != 1 {
		t.Fatalf("ticks = %d after one frame with double Start, want 1", ticks)
	}
}

func TestTickerSchedulerStartStop(t *testing.T) {
	ts := NewTickerScheduler(time.Millisecond)
	var ticks atomic.Int64

	ts.Start(func() { ticks.Add(1) })
	ts.Start(func() { ticks.Add(1) }) // no-op while running

	time.Sleep(50 * time.Millisecond)
	ts.Stop()
	ts.Stop() // idempotent

	// Let any in-flight task finish before sampling
	time.Sleep(5 * time.Millisecond)
	got := ticks.Load()
	if got < 5 {
		t.Fatalf("ticks = %d after 50ms at 1ms interval, want at least 5", got)
	}

	time.Sleep(20 * time.Millisecond)
	if after := ticks.Load(); after != got {
		t.Fatalf("ticker fired after Stop: %d -> %d", got, after)
	}
}
