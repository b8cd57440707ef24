package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type ScheduleHandler struct {
	svc services.ScheduleService
}

func NewScheduleHandler(svc services.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

type ScheduleRequest struct {
	Date string `json:"date" binding:"required"` // 2026-09-01
	Time string `json:"time" binding:"required"` // 10:30 AM
	Type string `json:"type" binding:"required"` // AI Screening|Technical|HR Round
}

func (h *ScheduleHandler) Schedule(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ScheduleHandler.Schedule", "invalid request body", err))
		return
	}

	interview, err := h.svc.Schedule(c.Request.Context(), c.Param("candidate_id"), req.Date, req.Time, models.InterviewType(req.Type))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *ScheduleHandler) ListByCandidate(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	interviews, err := h.svc.ListByCandidate(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}

func (h *ScheduleHandler) ListAll(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ScheduleHandler.ListAll", "limit must be 1-100", err))
			return
		}
		limit = n
	}

	interviews, err := h.svc.ListAll(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interviews": interviews})
}
