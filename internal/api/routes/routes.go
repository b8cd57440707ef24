package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/hirelogic/hirelogic/internal/api/handlers"
	"github.com/hirelogic/hirelogic/internal/api/middleware"
)

type Deps struct {
	AI             *handlers.AIHandler
	Account        *handlers.AccountHandler
	Candidate      *handlers.CandidateHandler
	Schedule       *handlers.ScheduleHandler
	Resume         *handlers.ResumeHandler
	InterviewWS    *handlers.InterviewWSHandler
	VerificationWS *handlers.VerificationWSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Public forms
	r.POST("/auth/signup", d.Account.Signup)
	r.POST("/candidates/apply", d.Candidate.Apply)

	// Protected routes (JWT)
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.POST("/ai/questionnaire", d.AI.GenerateQuestionnaire)
	auth.POST("/ai/interview-questions", d.AI.GenerateInterviewQuestions)
	auth.POST("/ai/summarize", d.AI.SummarizeResponse)

	auth.GET("/candidates", d.Candidate.List)
	auth.GET("/candidates/:candidate_id", d.Candidate.Get)
	auth.POST("/candidates/:candidate_id/advance", d.Candidate.AdvanceStage)
	auth.GET("/candidates/:candidate_id/similar", d.Candidate.Similar)
	auth.GET("/dashboard/pipeline", d.Candidate.PipelineStats)

	auth.POST("/candidates/:candidate_id/interviews", d.Schedule.Schedule)
	auth.GET("/candidates/:candidate_id/interviews", d.Schedule.ListByCandidate)
	auth.GET("/interviews", d.Schedule.ListAll)

	auth.POST("/candidates/:candidate_id/resume/file", d.Resume.UploadFile)
	auth.GET("/candidates/:candidate_id/resume/files", d.Resume.ListFiles)
	auth.PUT("/candidates/:candidate_id/resume", d.Resume.SetText)

	// WebSocket dialogs
	auth.GET("/ws/candidates/:candidate_id/interview", d.InterviewWS.Serve)
	auth.GET("/ws/candidates/:candidate_id/verification", d.VerificationWS.Serve)
}
