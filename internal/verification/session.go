package verification

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/models"
)

type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseLoading   Phase = "loading"
	PhaseCompleted Phase = "completed"
)

const (
	connectDelay = 2 * time.Second
	successDelay = 1500 * time.Millisecond
	resetDelay   = 500 * time.Millisecond
)

type Config struct {
	Clock clock.Clock
	Log   *logrus.Logger

	// OnComplete receives the verified document's name once the simulated
	// locker round-trip finishes. The owner upserts the document status to
	// Pending; the session never touches the candidate record.
	OnComplete func(doc models.DocumentName)

	// OnDismiss fires when the dialog should close, either on Deny or
	// after completion is shown.
	OnDismiss func()

	// OnPhase fires after every phase change, outside the session lock.
	// Transports use it to push fresh snapshots.
	OnPhase func(Phase)
}

// Session is the simulated document-locker consent workflow owned by one
// dialog. Timer-driven phases model the external service latency; a closed
// session can never mutate state late.
type Session struct {
	mu  sync.Mutex
	cfg Config

	phase    Phase
	document models.DocumentName

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
	return &Session{cfg: cfg, phase: PhaseIdle}
}

// Request begins verification for the named document. Only valid from idle.
func (s *Session) Request(doc models.DocumentName) bool {
	s.mu.Lock()
	if s.phase != PhaseIdle || !doc.Valid() {
		s.mu.Unlock()
		return false
	}

	s.document = doc
	s.phase = PhaseLoading
	epoch := s.epoch
	s.timer = s.cfg.Clock.AfterFunc(connectDelay, func() {
		s.finishConnect(epoch)
	})
	s.mu.Unlock()
	s.phaseChanged(PhaseLoading)
	return true
}

func (s *Session) finishConnect(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.phase != PhaseLoading {
		s.mu.Unlock()
		return
	}

	s.phase = PhaseCompleted
	s.timer = s.cfg.Clock.AfterFunc(successDelay, func() {
		s.emitCompletion(epoch)
	})
	s.mu.Unlock()
	s.phaseChanged(PhaseCompleted)
}

func (s *Session) emitCompletion(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch || s.phase != PhaseCompleted {
		s.mu.Unlock()
		return
	}
	doc := s.document
	onComplete := s.cfg.OnComplete
	onDismiss := s.cfg.OnDismiss
	s.timer = s.cfg.Clock.AfterFunc(resetDelay, func() {
		s.resetDisplay(epoch)
	})
	s.mu.Unlock()

	if onComplete != nil {
		onComplete(doc)
	}
	if onDismiss != nil {
		onDismiss()
	}
}

func (s *Session) resetDisplay(epoch uint64) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.phase = PhaseIdle
	s.document = ""
	s.mu.Unlock()
	s.phaseChanged(PhaseIdle)
}

func (s *Session) phaseChanged(p Phase) {
	if s.cfg.OnPhase != nil {
		s.cfg.OnPhase(p)
	}
}

// Deny closes the dialog without emitting any event. Only available from
// idle; a request in flight cannot be abandoned through the UI.
func (s *Session) Deny() bool {
	s.mu.Lock()
	if s.phase != PhaseIdle {
		s.mu.Unlock()
		return false
	}
	onDismiss := s.cfg.OnDismiss
	s.mu.Unlock()

	if onDismiss != nil {
		onDismiss()
	}
	return true
}

// CanDismiss reports whether the deny/close action is enabled.
func (s *Session) CanDismiss() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseIdle
}

// Close tears the session down. Any pending phase transition is discarded,
// so a completion callback can never fire after the dialog is gone.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.phase = PhaseIdle
	s.document = ""
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Session) Document() models.DocumentName {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document
}
