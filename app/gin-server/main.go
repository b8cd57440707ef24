package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/hirelogic/hirelogic/config"
	"github.com/hirelogic/hirelogic/internal/api/handlers"
	"github.com/hirelogic/hirelogic/internal/api/middleware"
	"github.com/hirelogic/hirelogic/internal/api/routes"
	"github.com/hirelogic/hirelogic/internal/cache"
	"github.com/hirelogic/hirelogic/internal/clock"
	"github.com/hirelogic/hirelogic/internal/forms"
	"github.com/hirelogic/hirelogic/internal/logger"
	"github.com/hirelogic/hirelogic/internal/models"
	"github.com/hirelogic/hirelogic/internal/prompt"
	"github.com/hirelogic/hirelogic/internal/providers/llm"
	mongorepo "github.com/hirelogic/hirelogic/internal/repositories/mongo"
	pgrepo "github.com/hirelogic/hirelogic/internal/repositories/postgres"
	"github.com/hirelogic/hirelogic/internal/seed"
	"github.com/hirelogic/hirelogic/internal/services"
	"github.com/hirelogic/hirelogic/internal/storage"
)

func main() {
	_ = godotenv.Load()

	lg := logger.New()
	ctx := context.Background()

	// Init PostgreSQL
	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	lg.Info("PostgreSQL connected")

	if err := config.PostgresDB.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Fatalf("pgvector extension error: %v", err)
	}
	if err := config.PostgresDB.AutoMigrate(&models.Candidate{}, &models.Account{}); err != nil {
		log.Fatalf("PostgreSQL migrate error: %v", err)
	}

	// Init MongoDB
	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	lg.Info("MongoDB connected")

	// Init Redis
	if err := config.InitRedis(); err != nil {
		log.Fatalf("Redis init error: %v", err)
	}
	lg.Info("Redis connected")

	// Vertex AI provider
	provider, err := llm.NewVertexGemini(ctx,
		os.Getenv("GCP_PROJECT_ID"),
		os.Getenv("GCP_LOCATION"),
		os.Getenv("GEMINI_MODEL"),
		os.Getenv("GEMINI_EMBED_MODEL"),
	)
	if err != nil {
		log.Fatalf("Vertex AI init error: %v", err)
	}
	defer provider.Close()

	// Resume bucket
	bucket := os.Getenv("GCS_RESUME_BUCKET")
	if bucket == "" {
		log.Fatalf("GCS_RESUME_BUCKET environment variable is not set")
	}
	resumeStore, err := storage.NewGCSResumeStore(ctx, bucket)
	if err != nil {
		log.Fatalf("GCS init error: %v", err)
	}

	// Repositories
	candidateRepo := pgrepo.NewCandidateRepo(config.PostgresDB)
	accountRepo := pgrepo.NewAccountRepo(config.PostgresDB)
	interviewRepo := mongorepo.NewInterviewRepo(config.MongoDatabase())

	if err := seed.Run(ctx, candidateRepo, interviewRepo, lg); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	// Services
	executor := prompt.NewExecutor(provider, lg)
	questionnaireSvc := services.NewQuestionnaireService(executor, cache.NewRedisCache(config.RedisClient), lg)
	questionSvc := services.NewQuestionService(executor, lg)
	summarySvc := services.NewSummaryService(executor)
	candidateSvc := services.NewCandidateService(candidateRepo)
	accountSvc := services.NewAccountService(accountRepo)
	scheduleSvc := services.NewScheduleService(interviewRepo)
	resumeSvc := services.NewResumeService(candidateRepo, resumeStore, provider, lg)

	formCtl := forms.NewController(questionnaireSvc, accountSvc, candidateSvc, lg)
	clk := clock.New()

	// Handlers
	deps := routes.Deps{
		AI:             handlers.NewAIHandler(formCtl, questionSvc, summarySvc),
		Account:        handlers.NewAccountHandler(formCtl),
		Candidate:      handlers.NewCandidateHandler(candidateSvc, resumeSvc, formCtl),
		Schedule:       handlers.NewScheduleHandler(scheduleSvc),
		Resume:         handlers.NewResumeHandler(resumeSvc),
		InterviewWS:    handlers.NewInterviewWSHandler(questionSvc, candidateSvc, scheduleSvc, clk, lg),
		VerificationWS: handlers.NewVerificationWSHandler(candidateSvc, clk, lg),
	}

	// Start Gin server
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(lg))
	routes.RegisterRoutes(r, deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
