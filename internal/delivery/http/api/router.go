package api

import (
	"context"
	"net/http"
	"time"

	"go-jobmarket-backend/internal/delivery/http/middleware"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/validation"

	_ "go-jobmarket-backend/docs"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps bundles everything the HTTP layer needs. Redis may be nil;
// the rate limiter then falls back to its in-process counter.
type RouterDeps struct {
	AuthUC           domain.AuthUsecase
	UserUC           domain.UserUsecase
	CompanyUC        domain.CompanyUsecase
	JobUC            domain.JobPostUsecase
	OpportunityUC    domain.JobOpportunityUsecase
	EmployeeUC       domain.EmployeeUsecase
	EmprendimientoUC domain.EmprendimientoUsecase
	ChatUC           domain.ChatUsecase

	Tokens      *auth.TokenManager
	Redis       *goredis.Client
	DB          *pgxpool.Pool
	FrontendURL string
}

// NewRouter assembles the gin engine: global middleware, the public and
// protected /api groups, and the operational endpoints.
func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()
	r.Use(middleware.CORS(deps.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Next()
	})
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimit(deps.Redis, middleware.DefaultRateLimitConfig()))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "API de empleos funcionando",
			"version": "1.0.0",
		})
	})

	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := deps.DB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "Error",
				"database": "Disconnected",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"database": "Connected",
		})
	})

	r.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(middleware.Auth(deps.Tokens))

	loginLimiter := middleware.RateLimit(deps.Redis, middleware.LoginRateLimitConfig())

	NewAuthHandler(public, protected, deps.AuthUC, loginLimiter)
	NewUserHandler(public, protected, deps.UserUC)
	NewCompanyHandler(public, protected, deps.CompanyUC)
	NewJobHandler(public, protected, deps.JobUC, deps.OpportunityUC)
	NewEmployeeHandler(protected, deps.EmployeeUC)
	NewEmprendimientoHandler(public, protected, deps.EmprendimientoUC)
	NewChatHandler(public, deps.ChatUC)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint no encontrado"})
	})

	return r
}
