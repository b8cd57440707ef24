package verification

import (
	"testing"
	"time"

	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/models"
)

func TestSessionFullWalk(t *testing.T) {
	clk := clock.NewFake()
	var completed []models.DocumentName
	dismissed := 0

	sess := NewSession(Config{
		Clock:      clk,
		OnComplete: func(doc models.DocumentName) { completed = append(completed, doc) },
		OnDismiss:  func() { dismissed++ },
	})

	if !sess.Request(models.DocPANCard) {
		t.Fatal("request from idle refused")
	}
	if got := sess.Phase(); got != PhaseLoading {
		t.Fatalf("phase after request = %v", got)
	}
	if got := sess.Document(); got != models.DocPANCard {
		t.Fatalf("document = %v", got)
	}

	// locker round-trip takes 2s
	clk.Advance(1 * time.Second)
	if got := sess.Phase(); got != PhaseLoading {
		t.Fatalf("phase mid-connect = %v", got)
	}
	clk.Advance(1 * time.Second)
	if got := sess.Phase(); got != PhaseCompleted {
		t.Fatalf("phase after connect = %v", got)
	}
	if len(completed) != 0 {
		t.Fatal("completion must not be emitted before the success display")
	}

	// success shown for 1.5s, then the event fires and the dialog dismisses
	clk.Advance(1500 * time.Millisecond)
	if len(completed) != 1 || completed[0] != models.DocPANCard {
		t.Fatalf("completed = %v", completed)
	}
	if dismissed != 1 {
		t.Fatalf("dismissed = %d", dismissed)
	}

	// display resets to idle shortly after
	clk.Advance(500 * time.Millisecond)
	if got := sess.Phase(); got != PhaseIdle {
		t.Fatalf("phase after reset = %v", got)
	}
	if got := sess.Document(); got != "" {
		t.Fatalf("document after reset = %q", got)
	}

	// session is reusable for the next document
	if !sess.Request(models.DocDrivingLicence) {
		t.Fatal("request after reset refused")
	}
}

func TestSessionRequestOnlyFromIdle(t *testing.T) {
	clk := clock.NewFake()
	sess := NewSession(Config{Clock: clk})

	if !sess.Request(models.DocAadhaarCard) {
		t.Fatal("first request refused")
	}
	if sess.Request(models.DocPANCard) {
		t.Error("request during loading must be refused")
	}
	if got := sess.Document(); got != models.DocAadhaarCard {
		t.Errorf("document overwritten: %v", got)
	}

	clk.Advance(2 * time.Second)
	if sess.Request(models.DocPANCard) {
		t.Error("request during completed must be refused")
	}
}

func TestSessionRejectsUnknownDocument(t *testing.T) {
	sess := NewSession(Config{Clock: clock.NewFake()})
	if sess.Request(models.DocumentName("Passport")) {
		t.Error("unknown document must be refused")
	}
	if got := sess.Phase(); got != PhaseIdle {
		t.Errorf("phase = %v", got)
	}
}

func TestSessionDeny(t *testing.T) {
	clk := clock.NewFake()
	completed := 0
	dismissed := 0
	sess := NewSession(Config{
		Clock:      clk,
		OnComplete: func(models.DocumentName) { completed++ },
		OnDismiss:  func() { dismissed++ },
	})

	if !sess.CanDismiss() {
		t.Fatal("idle session must be dismissable")
	}
	if !sess.Deny() {
		t.Fatal("deny from idle refused")
	}
	if dismissed != 1 {
		t.Fatalf("dismissed = %d", dismissed)
	}
	if completed != 0 {
		t.Error("deny must not emit a completion")
	}

	// deny is unavailable while a request is in flight
	sess.Request(models.DocPANCard)
	if sess.CanDismiss() {
		t.Error("loading session must not be dismissable")
	}
	if sess.Deny() {
		t.Error("deny during loading must be refused")
	}

	clk.Advance(2 * time.Second)
	if sess.Deny() {
		t.Error("deny during completed must be refused")
	}
}

func TestSessionCloseCancelsPendingTransitions(t *testing.T) {
	clk := clock.NewFake()
	completed := 0
	sess := NewSession(Config{
		Clock:      clk,
		OnComplete: func(models.DocumentName) { completed++ },
	})

	sess.Request(models.DocAadhaarCard)
	sess.Close()

	clk.Advance(10 * time.Second)

	if completed != 0 {
		t.Error("closed session must never emit a completion")
	}
	if got := sess.Phase(); got != PhaseIdle {
		t.Errorf("phase after close = %v", got)
	}
	if clk.Pending() != 0 {
		t.Errorf("pending timers after close = %d", clk.Pending())
	}
}

func TestSessionCloseDuringSuccessDisplay(t *testing.T) {
	clk := clock.NewFake()
	completed := 0
	sess := NewSession(Config{
		Clock:      clk,
		OnComplete: func(models.DocumentName) { completed++ },
	})

	sess.Request(models.DocAadhaarCard)
	clk.Advance(2 * time.Second)
	if got := sess.Phase(); got != PhaseCompleted {
		t.Fatalf("phase = %v", got)
	}

	sess.Close()
	clk.Advance(10 * time.Second)

	if completed != 0 {
		t.Error("close during success display must suppress the event")
	}
}

func TestSessionPhaseObserver(t *testing.T) {
	clk := clock.NewFake()
	var seen []Phase
	sess := NewSession(Config{
		Clock:   clk,
		OnPhase: func(p Phase) { seen = append(seen, p) },
	})

	sess.Request(models.DocPANCard)
	clk.Advance(2 * time.Second)
	clk.Advance(1500 * time.Millisecond)
	clk.Advance(500 * time.Millisecond)

	want := []Phase{PhaseLoading, PhaseCompleted, PhaseIdle}
	if len(seen) != len(want) {
		t.Fatalf("phases = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("phases = %v, want %v", seen, want)
		}
	}
}
