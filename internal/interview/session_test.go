package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/notify"
)

type fakeSource struct {
	questions []string
	err       error

	// when set, GenerateQuestions blocks until released
	block   chan struct{}
	started chan struct{}
}

func (f *fakeSource) GenerateQuestions(context.Context, string, string) ([]string, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.questions, f.err
}

func newTestSession(src *fakeSource, clk *clock.Fake, rec *notify.Recorder, onAdvance func()) *Session {
	return NewSession(Config{
		Source:             src,
		Clock:              clk,
		Notifier:           rec,
		OnAdvanceCandidate: onAdvance,
	})
}

func questions(n int) []string {
	qs := make([]string, n)
	for i := range qs {
		qs[i] = "question"
	}
	return qs
}

func TestSessionFullRunAllAnswered(t *testing.T) {
	clk := clock.NewFake()
	sess := newTestSession(&fakeSource{questions: questions(5)}, clk, &notify.Recorder{}, nil)

	sess.Start(context.Background(), "resume", "role")
	if got := sess.State(); got != StateInProgress {
		t.Fatalf("state after start = %v", got)
	}
	if len(sess.Questions()) != 5 {
		t.Fatalf("questions = %d", len(sess.Questions()))
	}

	for i := 0; i < 5; i++ {
		sess.Advance(true)
	}
	if got := sess.State(); got != StateAnalyzing {
		t.Fatalf("state after last advance = %v", got)
	}

	// analysis holds until the delay elapses
	clk.Advance(1 * time.Second)
	if got := sess.State(); got != StateAnalyzing {
		t.Fatalf("state mid-analysis = %v", got)
	}
	clk.Advance(1 * time.Second)
	if got := sess.State(); got != StateComplete {
		t.Fatalf("state after analysis = %v", got)
	}

	if !sess.Passed() {
		t.Error("5/5 answered must pass")
	}
	if !sess.CanAdvanceCandidate() {
		t.Error("advance must be enabled for a passing candidate")
	}
}

func TestSessionFailsBelowThreshold(t *testing.T) {
	clk := clock.NewFake()
	advanced := false
	sess := newTestSession(&fakeSource{questions: questions(5)}, clk, &notify.Recorder{}, func() { advanced = true })

	sess.Start(context.Background(), "resume", "role")
	// 3 of 5 answered: 0.6 < 0.7
	for i := 0; i < 5; i++ {
		sess.Advance(i < 3)
	}
	clk.Advance(2 * time.Second)

	if got := sess.State(); got != StateComplete {
		t.Fatalf("state = %v", got)
	}
	if sess.Passed() {
		t.Error("3/5 answered must not pass")
	}
	if sess.CanAdvanceCandidate() {
		t.Error("advance must be disabled for a failing candidate")
	}
	if sess.AdvanceCandidate() {
		t.Error("AdvanceCandidate must refuse a failing candidate")
	}
	if advanced {
		t.Error("owner callback must not fire for a failing candidate")
	}
}

func TestSessionPassBoundary(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		answered int
		want     bool
	}{
		{"exactly 70 percent", 10, 7, true},
		{"just below", 10, 6, false},
		{"4 of 5", 5, 4, true},
		{"3 of 5", 5, 3, false},
		{"none answered", 5, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clk := clock.NewFake()
			sess := newTestSession(&fakeSource{questions: questions(tt.total)}, clk, &notify.Recorder{}, nil)

			sess.Start(context.Background(), "resume", "role")
			for i := 0; i < tt.total; i++ {
				sess.Advance(i < tt.answered)
			}
			clk.Advance(2 * time.Second)

			if got := sess.Passed(); got != tt.want {
				t.Errorf("Passed() with %d/%d = %v, want %v", tt.answered, tt.total, got, tt.want)
			}
		})
	}
}

func TestSessionAdvanceCandidateFiresOwnerCallback(t *testing.T) {
	clk := clock.NewFake()
	advanced := false
	sess := newTestSession(&fakeSource{questions: questions(5)}, clk, &notify.Recorder{}, func() { advanced = true })

	sess.Start(context.Background(), "resume", "role")
	for i := 0; i < 5; i++ {
		sess.Advance(true)
	}
	clk.Advance(2 * time.Second)

	if !sess.AdvanceCandidate() {
		t.Fatal("AdvanceCandidate refused a passing candidate")
	}
	if !advanced {
		t.Error("owner callback did not fire")
	}
}

func TestSessionGenerationFailure(t *testing.T) {
	tests := []struct {
		name string
		src  *fakeSource
	}{
		{"source error", &fakeSource{err: errors.New("model unavailable")}},
		{"empty list", &fakeSource{questions: nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &notify.Recorder{}
			sess := newTestSession(tt.src, clock.NewFake(), rec, nil)

			sess.Start(context.Background(), "resume", "role")

			if got := sess.State(); got != StateWelcome {
				t.Fatalf("failed generation must return to welcome, got %v", got)
			}
			if len(rec.Messages) != 1 {
				t.Fatalf("want one notification, got %d", len(rec.Messages))
			}
			m := rec.Messages[0]
			if m.Severity != notify.SeverityError {
				t.Errorf("severity = %v", m.Severity)
			}
			if m.Text != "Could not generate interview questions. Please try again." {
				t.Errorf("message = %q", m.Text)
			}
		})
	}
}

func TestSessionCloseDuringGenerationDiscardsResult(t *testing.T) {
	src := &fakeSource{
		questions: questions(5),
		block:     make(chan struct{}),
		started:   make(chan struct{}),
	}
	rec := &notify.Recorder{}
	sess := newTestSession(src, clock.NewFake(), rec, nil)

	done := make(chan struct{})
	go func() {
		sess.Start(context.Background(), "resume", "role")
		close(done)
	}()

	<-src.started
	if got := sess.State(); got != StateGenerating {
		t.Fatalf("state while blocked = %v", got)
	}

	sess.Close()
	close(src.block)
	<-done

	if got := sess.State(); got != StateWelcome {
		t.Errorf("state after discarded generation = %v", got)
	}
	if len(sess.Questions()) != 0 {
		t.Error("discarded generation must not install questions")
	}
	if len(rec.Messages) != 0 {
		t.Error("discarded generation must not notify")
	}
}

func TestSessionCloseDuringAnalysisCancelsTimer(t *testing.T) {
	clk := clock.NewFake()
	sess := newTestSession(&fakeSource{questions: questions(5)}, clk, &notify.Recorder{}, nil)

	sess.Start(context.Background(), "resume", "role")
	for i := 0; i < 5; i++ {
		sess.Advance(true)
	}
	if got := sess.State(); got != StateAnalyzing {
		t.Fatalf("state = %v", got)
	}

	sess.Close()
	clk.Advance(5 * time.Second)

	if got := sess.State(); got != StateWelcome {
		t.Errorf("state after close = %v", got)
	}
	if clk.Pending() != 0 {
		t.Errorf("pending timers after close = %d", clk.Pending())
	}
}

func TestSessionResetClearsProgress(t *testing.T) {
	clk := clock.NewFake()
	sess := newTestSession(&fakeSource{questions: questions(5)}, clk, &notify.Recorder{}, nil)

	sess.Start(context.Background(), "resume", "role")
	sess.Advance(true)
	sess.Advance(true)

	sess.Reset()

	if got := sess.State(); got != StateWelcome {
		t.Errorf("state after reset = %v", got)
	}
	if sess.AnsweredCount() != 0 || sess.CurrentIndex() != 0 || len(sess.Questions()) != 0 {
		t.Error("reset must clear all progress")
	}

	// a reopened session runs from scratch
	sess.Start(context.Background(), "resume", "role")
	if got := sess.State(); got != StateInProgress {
		t.Errorf("state after restart = %v", got)
	}
	if sess.AnsweredCount() != 0 {
		t.Error("restart must not inherit answers")
	}
}

func TestSessionStartOnlyFromWelcome(t *testing.T) {
	clk := clock.NewFake()
	src := &fakeSource{questions: questions(5)}
	sess := newTestSession(src, clk, &notify.Recorder{}, nil)

	sess.Start(context.Background(), "resume", "role")
	sess.Advance(true)

	// second start must be ignored, not restart the interview
	sess.Start(context.Background(), "resume", "role")
	if sess.CurrentIndex() != 1 {
		t.Errorf("current = %d after ignored start", sess.CurrentIndex())
	}
}

func TestSessionAdvanceIgnoredOutsideInProgress(t *testing.T) {
	sess := newTestSession(&fakeSource{questions: questions(5)}, clock.NewFake(), &notify.Recorder{}, nil)

	sess.Advance(true)
	if sess.AnsweredCount() != 0 {
		t.Error("advance in welcome must be a no-op")
	}
}

func TestSessionProgress(t *testing.T) {
	clk := clock.NewFake()
	sess := newTestSession(&fakeSource{questions: questions(4)}, clk, &notify.Recorder{}, nil)

	sess.Start(context.Background(), "resume", "role")
	if got := sess.Progress(); got != 0.25 {
		t.Errorf("initial progress = %v", got)
	}
	sess.Advance(true)
	if got := sess.Progress(); got != 0.5 {
		t.Errorf("progress after one advance = %v", got)
	}
}

func TestSessionTransitionsObserved(t *testing.T) {
	clk := clock.NewFake()
	var seen []State
	sess := NewSession(Config{
		Source:       &fakeSource{questions: questions(2)},
		Clock:        clk,
		Notifier:     &notify.Recorder{},
		OnTransition: func(s State) { seen = append(seen, s) },
	})

	sess.Start(context.Background(), "resume", "role")
	sess.Advance(true)
	sess.Advance(true)
	clk.Advance(2 * time.Second)

	want := []State{StateGenerating, StateInProgress, StateInProgress, StateAnalyzing, StateComplete}
	if len(seen) != len(want) {
		t.Fatalf("transitions = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("transitions = %v, want %v", seen, want)
		}
	}
}
