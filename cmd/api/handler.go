package api

import (
	authUsecase "gecawings-backend/internal/auth/usecase"
	intakeUsecase "gecawings-backend/internal/intake/usecase"
	recoUsecase "gecawings-backend/internal/recommendation/usecase"
	"gecawings-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase   authUsecase.AuthUsecase
	intakeUsecase intakeUsecase.IntakeUsecase
	recoUsecase   recoUsecase.RecommendationUsecase
	config        *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, intakeUc intakeUsecase.IntakeUsecase, recoUc recoUsecase.RecommendationUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:   authUc,
		intakeUsecase: intakeUc,
		recoUsecase:   recoUc,
		config:        cfg,
	}
}

func (h *Handler) Start(addr string) error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS restricted to the configured frontend origin, credentials enabled
	origin := h.config.FrontendOrigin
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.intakeUsecase, h.recoUsecase)

	return r.Run(addr)
}
