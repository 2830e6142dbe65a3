package v1

import (
	"net/http"

	"go-hiring-backend/config"
	"go-hiring-backend/internal/delivery/http/middleware"
	"go-hiring-backend/internal/delivery/http/response"
	"go-hiring-backend/internal/domain"
	"go-hiring-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps carries everything the HTTP layer needs.
type RouterDeps struct {
	Config        *config.Config
	AuthUC        domain.AuthUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	SavedJobUC    domain.SavedJobUsecase
	BlobUC        domain.BlobUsecase
	StatsUC       domain.StatsUsecase
	HealthUC      *usecase.HealthUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		if err := deps.HealthUC.Check(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "Database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := v1.Group("")
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config.JWTSecret))

	NewAuthHandler(public, protected, deps.AuthUC)
	NewProfileHandler(protected, deps.ProfileUC)
	NewJobHandler(public, protected, deps.JobUC)
	NewApplicationHandler(protected, deps.ApplicationUC)
	NewSavedJobHandler(protected, deps.SavedJobUC)
	NewUploadHandler(protected, deps.BlobUC)
	NewStatsHandler(protected, deps.StatsUC)

	return r
}
