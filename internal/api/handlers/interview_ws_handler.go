package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/interview"
	"github.com/hirelogic/hirelogic/internal/notify"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
)

// InterviewWSHandler drives one AI screening interview session per websocket
// connection. The connection is the dialog: closing it closes the session,
// and a fresh connection always starts from the welcome screen.
type InterviewWSHandler struct {
	questions  services.QuestionService
	candidates services.CandidateService
	schedules  services.ScheduleService
	clk        clock.Clock
	log        *logrus.Logger
	upgrader   websocket.Upgrader
}

func NewInterviewWSHandler(
	questions services.QuestionService,
	candidates services.CandidateService,
	schedules services.ScheduleService,
	clk clock.Clock,
	log *logrus.Logger,
) *InterviewWSHandler {
	return &InterviewWSHandler{
		questions:  questions,
		candidates: candidates,
		schedules:  schedules,
		clk:        clk,
		log:        log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type interviewClientMsg struct {
	Type     string `json:"type"` // start|advance|advance_candidate|reset
	Answered bool   `json:"answered"`
}

type interviewStateMsg struct {
	Type       string   `json:"type"` // state
	State      string   `json:"state"`
	Questions  []string `json:"questions"`
	Current    int      `json:"current"`
	Question   string   `json:"question,omitempty"`
	Answered   int      `json:"answered"`
	Progress   float64  `json:"progress"`
	Passed     bool     `json:"passed"`
	CanAdvance bool     `json:"can_advance"`
}

type noticeMsg struct {
	Type     string `json:"type"` // notice
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// wsPusher serializes writes and drops the connection on the first failed
// one. gorilla/websocket allows a single writer at a time.
type wsPusher struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *wsPusher) push(v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	_ = p.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := p.conn.WriteMessage(websocket.TextMessage, b); err != nil {
		_ = p.conn.Close()
	}
}

func (p *wsPusher) Notify(severity notify.Severity, message string) {
	p.push(noticeMsg{Type: "notice", Severity: string(severity), Message: message})
}

func (h *InterviewWSHandler) Serve(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	candidateID := c.Param("candidate_id")
	candidate, err := h.candidates.Get(c.Request.Context(), candidateID)
	if err != nil {
		writeError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// upgrade already wrote the response in most cases
		return
	}
	defer conn.Close()

	pusher := &wsPusher{conn: conn}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	var sess *interview.Session
	sess = interview.NewSession(interview.Config{
		Source:   h.questions,
		Clock:    h.clk,
		Notifier: pusher,
		Log:      h.log,
		OnAdvanceCandidate: func() {
			if _, err := h.candidates.AdvanceStage(ctx, candidateID); err != nil {
				h.log.WithError(err).WithField("candidate_id", candidateID).Warn("advance stage failed")
				pusher.Notify(notify.SeverityError, "Could not advance the candidate. Please try again.")
				return
			}
			if err := h.schedules.MarkAIScreeningDone(ctx, candidateID); err != nil {
				h.log.WithError(err).WithField("candidate_id", candidateID).Warn("mark screening done failed")
			}
			pusher.Notify(notify.SeveritySuccess, "Candidate moved to the next stage.")
		},
		OnTransition: func(interview.State) {
			pusher.push(snapshotOf(sess))
		},
	})
	defer sess.Close()

	// initial welcome snapshot
	pusher.push(snapshotOf(sess))

	for {
		_, data, rerr := conn.ReadMessage()
		if rerr != nil {
			return
		}

		var msg interviewClientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			pusher.push(APIError{Code: utils.CodeInvalidArgument, Message: "invalid json"})
			continue
		}

		switch msg.Type {
		case "start":
			// Generation blocks; run it off the read loop so a close or
			// reset during generating is still seen.
			go sess.Start(ctx, candidate.Resume, candidate.Role)
		case "advance":
			sess.Advance(msg.Answered)
		case "advance_candidate":
			if !sess.AdvanceCandidate() {
				pusher.push(APIError{Code: utils.CodeConflict, Message: "candidate cannot be advanced"})
			}
		case "reset":
			sess.Reset()
			pusher.push(snapshotOf(sess))
		default:
			pusher.push(APIError{Code: utils.CodeInvalidArgument, Message: "unknown message type"})
		}
	}
}

func snapshotOf(s *interview.Session) interviewStateMsg {
	return interviewStateMsg{
		Type:       "state",
		State:      string(s.State()),
		Questions:  s.Questions(),
		Current:    s.CurrentIndex(),
		Question:   s.CurrentQuestion(),
		Answered:   s.AnsweredCount(),
		Progress:   s.Progress(),
		Passed:     s.Passed(),
		CanAdvance: s.CanAdvanceCandidate(),
	}
}
