package core

import (
	"testing"
	"time"
)

type fakeClock struct {
	t     time.Time
	slept time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept += d
	c.t = c.t.Add(d)
}

func TestFixedStepPacing(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(10)
	fs.now, fs.sleep = clk.now, clk.sleep

	if !fs.ShouldStep() {
		t.Fatal("first tick must fire immediately")
	}
	if fs.ShouldStep() {
		t.Fatal("no time elapsed, no tick expected")
	}
	clk.t = clk.t.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a step must not tick")
	}
	clk.t = clk.t.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("full step must tick")
	}
}

func TestFixedStepWaitSleepsRemainder(t *testing.T) {
	clk := &fakeClock{t: time.Unix(0, 0)}
	fs := NewFixedStep(20)
	fs.now, fs.sleep = clk.now, clk.sleep

	fs.Wait()
	if clk.slept != 0 {
		t.Fatalf("first Wait should not sleep, slept %v", clk.slept)
	}
	fs.Wait()
	if clk.slept != fs.Step() {
		t.Fatalf("second Wait slept %v, expected %v", clk.slept, fs.Step())
	}
}

func TestSetTPSDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Step() != time.Second/60 {
		t.Fatalf("zero tps should fall back to 60, got %v", fs.Step())
	}
}
