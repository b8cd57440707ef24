package clock

import (
	"testing"
	"time"
)

func TestFakeAdvanceFiresDueTimers(t *testing.T) {
	f := NewFake()
	fired := []string{}

	f.AfterFunc(1*time.Second, func() { fired = append(fired, "a") })
	f.AfterFunc(3*time.Second, func() { fired = append(fired, "b") })

	f.Advance(2 * time.Second)
	if len(fired) != 1 || fired[0] != "a" {
		t.Fatalf("fired = %v", fired)
	}
	if f.Pending() != 1 {
		t.Fatalf("pending = %d", f.Pending())
	}

	f.Advance(1 * time.Second)
	if len(fired) != 2 || fired[1] != "b" {
		t.Fatalf("fired = %v", fired)
	}
	if f.Pending() != 0 {
		t.Fatalf("pending = %d", f.Pending())
	}
}

func TestFakeStop(t *testing.T) {
	f := NewFake()
	fired := false

	tm := f.AfterFunc(1*time.Second, func() { fired = true })
	if !tm.Stop() {
		t.Fatal("first stop must report true")
	}
	if tm.Stop() {
		t.Fatal("second stop must report false")
	}

	f.Advance(5 * time.Second)
	if fired {
		t.Error("stopped timer must not fire")
	}
}

func TestFakeTimerScheduledDuringAdvance(t *testing.T) {
	f := NewFake()
	var second bool

	f.AfterFunc(1*time.Second, func() {
		f.AfterFunc(1*time.Second, func() { second = true })
	})

	// the chained timer is relative to the advanced time, not the start
	f.Advance(1 * time.Second)
	if second {
		t.Fatal("chained timer fired too early")
	}
	f.Advance(1 * time.Second)
	if !second {
		t.Error("chained timer did not fire")
	}
}
