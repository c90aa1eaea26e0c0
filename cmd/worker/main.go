package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-cv-backend/config"
	"go-cv-backend/internal/queue"
	"go-cv-backend/pkg/email"
	"go-cv-backend/pkg/logger"
)

// The worker drains the email task queue and delivers rendered CVs over
// SMTP. It runs as a separate process so slow deliveries never block the
// API.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Log.Info("Starting CV email worker")

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Error("SMTP is not configured - the worker cannot deliver email")
		os.Exit(1)
	}

	consumer, err := queue.NewTaskConsumer(cfg.AMQPUrl, func(ctx context.Context, task queue.EmailCVTask) error {
		return emailService.SendCandidatePDF(email.CandidatePDFEmail{
			FirstName: task.FirstName,
			LastName:  task.LastName,
			Recipient: task.Recipient,
			PDF:       task.PDF,
		})
	})
	if err != nil {
		logger.Log.Error("Failed to connect to task broker", "error", err)
		os.Exit(1)
	}

	if err := consumer.Start(); err != nil {
		logger.Log.Error("Failed to start consumer", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down worker...")
	if err := consumer.Close(); err != nil {
		logger.Log.Error("Consumer shutdown failed", "error", err)
	}
	logger.Log.Info("Worker exiting")
}
