package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirelogic/hirelogic/internal/forms"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/utils"
)

// AIHandler fronts the generation endpoints. The questionnaire endpoint goes
// through the form controller so validation failures come back as form
// results rather than HTTP errors; the other two are plain service calls.
type AIHandler struct {
	forms     *forms.Controller
	questions services.QuestionService
	summaries services.SummaryService
}

func NewAIHandler(f *forms.Controller, questions services.QuestionService, summaries services.SummaryService) *AIHandler {
	return &AIHandler{forms: f, questions: questions, summaries: summaries}
}

type QuestionnaireRequest struct {
	JobDescription string `json:"job_description"`
}

func (h *AIHandler) GenerateQuestionnaire(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req QuestionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AIHandler.GenerateQuestionnaire", "invalid request body", err))
		return
	}

	res := h.forms.SubmitQuestionnaire(c.Request.Context(), forms.QuestionnaireInput{
		JobDescription: req.JobDescription,
	})
	c.JSON(http.StatusOK, res)
}

type InterviewQuestionsRequest struct {
	Resume string `json:"resume" binding:"required"`
	Role   string `json:"role" binding:"required"`
}

type InterviewQuestionsResponse struct {
	Questions []string `json:"questions"`
}

func (h *AIHandler) GenerateInterviewQuestions(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req InterviewQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AIHandler.GenerateInterviewQuestions", "invalid request body", err))
		return
	}

	questions, err := h.questions.GenerateQuestions(c.Request.Context(), req.Resume, req.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, InterviewQuestionsResponse{Questions: questions})
}

type SummarizeRequest struct {
	CandidateResponse string `json:"candidate_response" binding:"required"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}

func (h *AIHandler) SummarizeResponse(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var req SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AIHandler.SummarizeResponse", "invalid request body", err))
		return
	}

	summary, err := h.summaries.Summarize(c.Request.Context(), req.CandidateResponse)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, SummarizeResponse{Summary: summary})
}
