package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/notify"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
	"github.com/hirelogic/hirelogic/internal/verification"
)

// VerificationWSHandler drives one document verification dialog per
// websocket connection.
type VerificationWSHandler struct {
	candidates services.CandidateService
	clk        clock.Clock
	log        *logrus.Logger
	upgrader   websocket.Upgrader
}

func NewVerificationWSHandler(candidates services.CandidateService, clk clock.Clock, log *logrus.Logger) *VerificationWSHandler {
	return &VerificationWSHandler{
		candidates: candidates,
		clk:        clk,
		log:        log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

type verificationClientMsg struct {
	Type     string `json:"type"` // request|deny
	Document string `json:"document"`
}

type verificationStateMsg struct {
	Type       string `json:"type"` // state
	Phase      string `json:"phase"`
	Document   string `json:"document,omitempty"`
	CanDismiss bool   `json:"can_dismiss"`
}

func (h *VerificationWSHandler) Serve(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	candidateID := c.Param("candidate_id")
	if _, err := h.candidates.Get(c.Request.Context(), candidateID); err != nil {
		writeError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	pusher := &wsPusher{conn: conn}
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	var sess *verification.Session
	sess = verification.NewSession(verification.Config{
		Clock: h.clk,
		Log:   h.log,
		OnComplete: func(doc models.DocumentName) {
			if err := h.candidates.ApplyVerification(ctx, candidateID, doc); err != nil {
				h.log.WithError(err).WithFields(logrus.Fields{
					"candidate_id": candidateID,
					"document":     doc,
				}).Warn("apply verification failed")
				pusher.Notify(notify.SeverityError, "Could not record the verification request.")
				return
			}
			pusher.Notify(notify.SeveritySuccess, "Verification requested for "+string(doc)+".")
		},
		OnDismiss: func() {
			pusher.push(map[string]string{"type": "dismiss"})
		},
		OnPhase: func(verification.Phase) {
			pusher.push(verificationSnapshot(sess))
		},
	})
	defer sess.Close()

	pusher.push(verificationSnapshot(sess))

	for {
		_, data, rerr := conn.ReadMessage()
		if rerr != nil {
			return
		}

		var msg verificationClientMsg
		if err := json.Unmarshal(data, &msg); err != nil {
			pusher.push(APIError{Code: utils.CodeInvalidArgument, Message: "invalid json"})
			continue
		}

		switch msg.Type {
		case "request":
			if !sess.Request(models.DocumentName(msg.Document)) {
				pusher.push(APIError{Code: utils.CodeConflict, Message: "verification already in progress or unknown document"})
			}
		case "deny":
			if !sess.Deny() {
				pusher.push(APIError{Code: utils.CodeConflict, Message: "cannot deny while a request is in flight"})
			}
		default:
			pusher.push(APIError{Code: utils.CodeInvalidArgument, Message: "unknown message type"})
		}
	}
}

func verificationSnapshot(s *verification.Session) verificationStateMsg {
	return verificationStateMsg{
		Type:       "state",
		Phase:      string(s.Phase()),
		Document:   string(s.Document()),
		CanDismiss: s.CanDismiss(),
	}
}
