package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"fastqr.backend/internal/config"
	"fastqr.backend/internal/infrastructure/datasources/postgres"
	"fastqr.backend/internal/infrastructure/jobs"
	"fastqr.backend/internal/infrastructure/models"
	"fastqr.backend/internal/infrastructure/repositories"
	"fastqr.backend/internal/interfaces/http/handlers"
	"fastqr.backend/internal/interfaces/http/middleware"
	"fastqr.backend/internal/usecases"
	"fastqr.backend/pkg/jwt"
	"fastqr.backend/pkg/logger"
	"fastqr.backend/pkg/mailer"
	"fastqr.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.NewConnection
	runServer  = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(ctx, "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()
	logger.Info(ctx, "Connected to PostgreSQL", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))

	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(models.All()...); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		logger.Info(ctx, "Database schema migrated")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)
	blocklist := redis.NewTokenBlocklist()

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	otpRepo := repositories.NewOTPRepository(db)
	intentRepo := repositories.NewPaymentIntentRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Usecases
	mail := mailer.New(mailer.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})
	otpUsecase := usecases.NewOTPUsecase(otpRepo, mail, cfg.Mail.OTPTTL)
	authUsecase := usecases.NewAuthUsecase(userRepo, walletRepo, uow, otpUsecase, jwtService, blocklist)
	walletUsecase := usecases.NewWalletUsecase(userRepo, walletRepo)
	transactionUsecase := usecases.NewTransactionUsecase(userRepo, walletRepo, txRepo, intentRepo, uow, cfg.Payment.IntentTTL)

	// Background jobs
	expiryJob := jobs.NewPaymentIntentExpiryJob(intentRepo, cfg.Payment.IntentExpiryInterval)
	go expiryJob.Start(ctx)
	defer expiryJob.Stop()

	r := newRouter(routeDeps{
		authHandler:        handlers.NewAuthHandler(authUsecase, cfg.Server.CookieSecure),
		walletHandler:      handlers.NewWalletHandler(walletUsecase),
		transactionHandler: handlers.NewTransactionHandler(transactionUsecase),
		authMiddleware:     middleware.AuthMiddleware(jwtService, blocklist),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-quit:
		case <-ctx.Done():
			return
		}
		logger.Info(ctx, "Shutting down server")
		expiryJob.Stop()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "FASTQR backend starting", zap.String("port", cfg.Server.Port))
	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func newRouter(d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, d)
	return r
}
