package main

import (
	"context"
	"lab-recruitment-backend/config"
	_ "lab-recruitment-backend/docs" // Important for Swagger
	v1 "lab-recruitment-backend/internal/delivery/http/v1"
	"lab-recruitment-backend/internal/notifier"
	"lab-recruitment-backend/internal/repository/postgres"
	"lab-recruitment-backend/internal/usecase"
	"lab-recruitment-backend/pkg/database"
	"lab-recruitment-backend/pkg/logger"
	"lab-recruitment-backend/pkg/mailer"
	"lab-recruitment-backend/pkg/redis"
	"lab-recruitment-backend/pkg/sms"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
)

// @title           Lab Recruitment Backend API
// @version         1.0
// @description     Backend for a student lab recruitment system with interview slot booking.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting lab recruitment backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting falls back to in-memory when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	recruitRepo := postgres.NewRecruitRepository(dbPool)
	roomRepo := postgres.NewRoomRepository(dbPool)
	slotRepo := postgres.NewSlotRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	interviewRepo := postgres.NewInterviewRepository(dbPool)
	txManager := postgres.NewTxManager(dbPool)

	// 6. Setup Notification Channels
	mailService := mailer.NewMailer(cfg)
	if !mailService.IsConfigured() {
		logger.Log.Warn("Mailer not fully configured - notification mail will be dropped")
	}
	smsClient := sms.NewClient(cfg.SMSUsername, cfg.SMSPassword)
	if smsClient == nil {
		logger.Log.Warn("SMS gateway not configured - status SMS will be skipped")
	}
	notify := notifier.New(userRepo, mailService, smsClient, cfg.MailSignature)

	// 7. Setup UseCases
	validate := validator.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	recruitUC := usecase.NewRecruitUsecase(recruitRepo, validate)
	bookingUC := usecase.NewBookingUsecase(applicationRepo, slotRepo, roomRepo, interviewRepo, recruitRepo, txManager, notify)
	scheduleUC := usecase.NewScheduleUsecase(roomRepo, slotRepo, recruitRepo, txManager, validate)
	interviewAdminUC := usecase.NewInterviewAdminUsecase(interviewRepo)
	applicationAdminUC := usecase.NewApplicationAdminUsecase(applicationRepo, recruitRepo, notify)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		RecruitUC:          recruitUC,
		BookingUC:          bookingUC,
		ScheduleUC:         scheduleUC,
		InterviewAdminUC:   interviewAdminUC,
		ApplicationAdminUC: applicationAdminUC,
		Config:             cfg,
	})

	// 9. Start Server
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
