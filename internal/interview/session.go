package interview

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/notify"
)

type State string

const (
	StateWelcome    State = "welcome"
	StateGenerating State = "generating"
	StateInProgress State = "in-progress"
	StateAnalyzing  State = "analyzing"
	StateComplete   State = "complete"
)

const (
	analyzeDelay  = 2 * time.Second
	passThreshold = 0.7
)

// QuestionSource supplies the generated interview questions. Satisfied by
// services.QuestionService.
type QuestionSource interface {
	GenerateQuestions(ctx context.Context, resume, role string) ([]string, error)
}

type Config struct {
	Source   QuestionSource
	Clock    clock.Clock
	Notifier notify.Notifier
	Log      *logrus.Logger

	// OnAdvanceCandidate fires when the recruiter advances a passing
	// candidate out of a completed interview. The owner applies the stage
	// change; the session itself never touches the candidate record.
	OnAdvanceCandidate func()

	// OnTransition fires after every state change, outside the session
	// lock. Transports use it to push fresh snapshots.
	OnTransition func(State)
}

// Session is the AI screening interview workflow owned by one dialog. It is
// constructed fresh (or Reset) on every open; nothing persists across opens.
type Session struct {
	mu  sync.Mutex
	cfg Config

	state     State
	questions []string
	current   int
	answered  int

	// epoch invalidates in-flight generation results and pending timers
	// once the session is reset or closed.
	epoch uint64
	timer clock.Timer
}

func NewSession(cfg Config) *Session {
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = &notify.LogNotifier{Log: cfg.Log}
	}
	return &Session{cfg: cfg, state: StateWelcome}
}

// Reset returns the session to the welcome state with all progress cleared
// and any pending transition discarded. Owners call this on every reopen.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.state = StateWelcome
}

// Close discards the session. Pending timers and in-flight generation
// results can no longer mutate state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
	s.state = StateWelcome
}

func (s *Session) teardownLocked() {
	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.questions = nil
	s.current = 0
	s.answered = 0
}

// Start requests generated questions and moves the session into the
// interview. The generation call blocks, so owners invoke Start from the
// goroutine servicing the dialog, never while holding UI state; a Reset or
// Close during the call discards its result.
func (s *Session) Start(ctx context.Context, resume, role string) {
	s.mu.Lock()
	if s.state != StateWelcome {
		s.mu.Unlock()
		return
	}
	s.state = StateGenerating
	epoch := s.epoch
	s.mu.Unlock()

	s.transition(StateGenerating)

	questions, err := s.cfg.Source.GenerateQuestions(ctx, resume, role)

	s.mu.Lock()
	if s.epoch != epoch {
		// Session was reset or closed while generating; drop the result.
		s.mu.Unlock()
		return
	}

	if err != nil || len(questions) == 0 {
		s.state = StateWelcome
		s.mu.Unlock()
		if err != nil {
			s.cfg.Log.WithError(err).Warn("interview question generation failed")
		}
		s.notify(notify.SeverityError, "Could not generate interview questions. Please try again.")
		s.transition(StateWelcome)
		return
	}

	s.questions = questions
	s.current = 0
	s.answered = 0
	s.state = StateInProgress
	s.mu.Unlock()
	s.transition(StateInProgress)
}

// Advance records whether the current question was answered and steps to the
// next one, or into analysis after the last.
func (s *Session) Advance(answered bool) {
	s.mu.Lock()
	if s.state != StateInProgress {
		s.mu.Unlock()
		return
	}

	if answered {
		s.answered++
	}

	if s.current < len(s.questions)-1 {
		s.current++
		s.mu.Unlock()
		s.transition(StateInProgress)
		return
	}

	s.state = StateAnalyzing
	epoch := s.epoch
	s.timer = s.cfg.Clock.AfterFunc(analyzeDelay, func() {
		s.finishAnalysis(epoch)
	})
	s.mu.Unlock()
	s.transition(StateAnalyzing)
}

func (s *Session) finishAnalysis(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.state != StateAnalyzing {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.state = StateComplete
	s.mu.Unlock()
	s.transition(StateComplete)
}

func (s *Session) transition(state State) {
	if s.cfg.OnTransition != nil {
		s.cfg.OnTransition(state)
	}
}

// AdvanceCandidate emits the completion event to the owner. Only available
// in the complete state for a passing candidate.
func (s *Session) AdvanceCandidate() bool {
	s.mu.Lock()
	ok := s.state == StateComplete && s.passedLocked()
	cb := s.cfg.OnAdvanceCandidate
	s.mu.Unlock()

	if !ok {
		return false
	}
	if cb != nil {
		cb()
	}
	return true
}

func (s *Session) notify(severity notify.Severity, msg string) {
	if s.cfg.Notifier != nil {
		s.cfg.Notifier.Notify(severity, msg)
	}
}

func (s *Session) passedLocked() bool {
	if len(s.questions) == 0 {
		return false
	}
	return float64(s.answered)/float64(len(s.questions)) >= passThreshold
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Questions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.questions))
	copy(out, s.questions)
	return out
}

func (s *Session) CurrentIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// CurrentQuestion returns the question under the cursor, or "" outside the
// in-progress state.
func (s *Session) CurrentQuestion() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateInProgress || s.current >= len(s.questions) {
		return ""
	}
	return s.questions[s.current]
}

func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answered
}

// Passed reports the qualification outcome: answered/total >= 0.7.
func (s *Session) Passed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.passedLocked()
}

// CanAdvanceCandidate reports whether the "advance candidate" exit action is
// enabled.
func (s *Session) CanAdvanceCandidate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == StateComplete && s.passedLocked()
}

// Progress is the fraction of questions presented so far, for the dialog's
// progress bar.
func (s *Session) Progress() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.questions) == 0 {
		return 0
	}
	return float64(s.current+1) / float64(len(s.questions))
}
