package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-cv-backend/config"
	v1 "go-cv-backend/internal/delivery/http/v1"
	"go-cv-backend/internal/pdf"
	"go-cv-backend/internal/queue"
	"go-cv-backend/internal/repository/postgres"
	"go-cv-backend/internal/translation"
	"go-cv-backend/internal/usecase"
	"go-cv-backend/pkg/auth"
	"go-cv-backend/pkg/database"
	"go-cv-backend/pkg/logger"
	"go-cv-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting CV backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	bioRepo := postgres.NewBioItemRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)
	candidateSkillRepo := postgres.NewCandidateSkillRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	candidateProjectRepo := postgres.NewCandidateProjectRepository(dbPool)
	contactRepo := postgres.NewContactRepository(dbPool)
	contactTypeRepo := postgres.NewContactTypeRepository(dbPool)
	requestLogRepo := postgres.NewRequestLogRepository(dbPool)
	summaryRepo := postgres.NewSummaryRepository(dbPool)

	// 5. Setup external collaborators
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)

	var translator usecase.ContextTranslator
	if cfg.GeminiAPIKey != "" {
		gen, err := translation.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.TranslationModel)
		if err != nil {
			logger.Log.Error("Failed to create translation client", "error", err)
			os.Exit(1)
		}
		defer gen.Close()
		translator = translation.NewTranslator(gen, translation.Options{
			Timeout: cfg.TranslationTimeout,
		})
	} else {
		logger.Log.Warn("GEMINI_API_KEY not set - CV translation will be unavailable")
	}

	renderer := pdf.NewChromeRenderer(30 * time.Second)

	publisher, err := queue.NewTaskPublisher(cfg.AMQPUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to task broker", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, tokens, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, bioRepo, summaryRepo, validate)
	bioUC := usecase.NewBioItemUsecase(bioRepo, candidateRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, validate)
	candidateSkillUC := usecase.NewCandidateSkillUsecase(candidateSkillRepo, candidateRepo, skillRepo, validate)
	projectUC := usecase.NewProjectUsecase(projectRepo, validate)
	candidateProjectUC := usecase.NewCandidateProjectUsecase(candidateProjectRepo, candidateRepo, projectRepo, validate)
	contactUC := usecase.NewContactUsecase(contactRepo, contactTypeRepo, candidateRepo, validate)
	contactTypeUC := usecase.NewContactTypeUsecase(contactTypeRepo, validate)
	auditUC := usecase.NewRequestLogUsecase(requestLogRepo)
	cvUC := usecase.NewCVUsecase(candidateUC, translator, renderer, publisher, validate, cfg.TranslatingLanguages)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		CandidateUC:        candidateUC,
		BioItemUC:          bioUC,
		SkillUC:            skillUC,
		CandidateSkillUC:   candidateSkillUC,
		ProjectUC:          projectUC,
		CandidateProjectUC: candidateProjectUC,
		ContactUC:          contactUC,
		ContactTypeUC:      contactTypeUC,
		CVUC:               cvUC,
		AuditUC:            auditUC,
		Tokens:             tokens,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
