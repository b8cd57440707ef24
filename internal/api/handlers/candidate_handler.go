package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirelogic/hirelogic/internal/forms"
	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
)

type CandidateHandler struct {
	svc     services.CandidateService
	resumes services.ResumeService
	forms   *forms.Controller
}

func NewCandidateHandler(svc services.CandidateService, resumes services.ResumeService, f *forms.Controller) *CandidateHandler {
	return &CandidateHandler{svc: svc, resumes: resumes, forms: f}
}

func (h *CandidateHandler) List(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	candidates, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

func (h *CandidateHandler) Get(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	candidate, err := h.svc.Get(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, candidate)
}

type ApplicationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Apply is the public application form: no auth, form-result semantics.
func (h *CandidateHandler) Apply(c *gin.Context) {
	var req ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.Apply", "invalid request body", err))
		return
	}

	res := h.forms.SubmitApplication(c.Request.Context(), forms.ApplicationInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})

	status := http.StatusOK
	if res.Message == forms.MessageSuccess {
		status = http.StatusCreated
	}
	c.JSON(status, res)
}

func (h *CandidateHandler) AdvanceStage(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	stage, err := h.svc.AdvanceStage(c.Request.Context(), c.Param("candidate_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stage": stage})
}

func (h *CandidateHandler) Similar(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit := 5
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 50 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "CandidateHandler.Similar", "limit must be 1-50", err))
			return
		}
		limit = n
	}

	candidates, err := h.resumes.SimilarCandidates(c.Request.Context(), c.Param("candidate_id"), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// PipelineStats aggregates the candidate list into per-stage counts for the
// dashboard chart.
func (h *CandidateHandler) PipelineStats(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	candidates, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	counts := map[models.Stage]int{}
	for _, cand := range candidates {
		counts[cand.Stage]++
	}

	stages := []models.Stage{
		models.StageScreening,
		models.StageInterview,
		models.StageOffer,
		models.StageHired,
		models.StageRejected,
	}
	stats := make([]models.PipelineStat, 0, len(stages))
	for _, st := range stages {
		stats = append(stats, models.PipelineStat{Stage: string(st), Value: counts[st]})
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
