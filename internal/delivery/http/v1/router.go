package v1

import (
	"net/http"
	"time"

	"lab-recruitment-backend/config"
	"lab-recruitment-backend/internal/delivery/http/middleware"
	"lab-recruitment-backend/internal/delivery/http/response"
	"lab-recruitment-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	RecruitUC          domain.RecruitUsecase
	BookingUC          domain.BookingUsecase
	ScheduleUC         domain.ScheduleUsecase
	InterviewAdminUC   domain.InterviewAdminUsecase
	ApplicationAdminUC domain.ApplicationAdminUsecase
	Config             *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))

	// Admin routes
	admin := protected.Group("/admin")
	admin.Use(middleware.AdminOnly())

	bookRL := middleware.RateLimitMiddleware(
		middleware.BookRateLimitConfig(deps.Config.RateLimitBookThreshold, window))

	NewRecruitHandler(protected, admin, deps.RecruitUC)
	NewBookingHandler(protected, bookRL, deps.BookingUC)
	NewApplicationAdminHandler(protected, admin, deps.ApplicationAdminUC)
	NewScheduleAdminHandler(admin, deps.ScheduleUC)
	NewInterviewAdminHandler(admin, deps.InterviewAdminUC, deps.BookingUC)

	return r
}
