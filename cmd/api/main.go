package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmarket-backend/config"
	"go-jobmarket-backend/internal/delivery/http/api"
	"go-jobmarket-backend/internal/repository/postgres"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/database"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/openai"
	"go-jobmarket-backend/pkg/redis"
)

// @title           Job Market Backend API
// @version         1.0
// @description     Backend for the Bolivian job marketplace using Clean Architecture.
// @host            localhost:3000
// @BasePath        /api
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
	logger.Init(cfg.Env)
	logger.Log.Info("Starting job market backend", "port", cfg.Port, "env", cfg.Env)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	redisClient, err := redis.New(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobPostRepository(dbPool)
	oppRepo := postgres.NewJobOpportunityRepository(dbPool)
	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	empRepo := postgres.NewEmprendimientoRepository(dbPool)

	// 6. Setup outbound services
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	aiClient := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel)

	// 7. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	userUC := usecase.NewUserUsecase(userRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobPostUsecase(jobRepo)
	oppUC := usecase.NewJobOpportunityUsecase(oppRepo)
	employeeUC := usecase.NewEmployeeUsecase(employeeRepo)
	empUC := usecase.NewEmprendimientoUsecase(empRepo)
	chatUC := usecase.NewChatUsecase(aiClient, cfg.Env)

	// 8. Setup Router
	router := api.NewRouter(api.RouterDeps{
		AuthUC:           authUC,
		UserUC:           userUC,
		CompanyUC:        companyUC,
		JobUC:            jobUC,
		OpportunityUC:    oppUC,
		EmployeeUC:       employeeUC,
		EmprendimientoUC: empUC,
		ChatUC:           chatUC,
		Tokens:           tokens,
		Redis:            redisClient,
		DB:               dbPool,
		FrontendURL:      cfg.FrontendURL,
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
