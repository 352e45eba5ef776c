package api

import (
	"net/http"

	"gecawings-backend/internal/auth/delivery"
	authdomain "gecawings-backend/internal/auth/domain"
	authUsecase "gecawings-backend/internal/auth/usecase"
	intakeDelivery "gecawings-backend/internal/intake/delivery"
	intakeUsecase "gecawings-backend/internal/intake/usecase"
	recoDelivery "gecawings-backend/internal/recommendation/delivery"
	recoUsecase "gecawings-backend/internal/recommendation/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, intakeUc intakeUsecase.IntakeUsecase, recoUc recoUsecase.RecommendationUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	intakeHandler := intakeDelivery.NewIntakeHandler(intakeUc)
	recoHandler := recoDelivery.NewRecommendationHandler(recoUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Admin auth routes
		admin := api.Group("/admin")
		{
			admin.POST("/signup", authHandler.Signup(authdomain.RoleAdmin))
			admin.POST("/login", authHandler.Login(authdomain.RoleAdmin))
			admin.GET("/profile", delivery.AuthMiddleware(authUc), authHandler.Profile(authdomain.RoleAdmin))
			admin.POST("/logout", authHandler.Logout(authdomain.RoleAdmin))
		}

		// User auth routes
		api.POST("/signup", authHandler.Signup(authdomain.RoleUser))
		api.POST("/login", authHandler.Login(authdomain.RoleUser))
		api.GET("/profile", delivery.AuthMiddleware(authUc), authHandler.Profile(authdomain.RoleUser))
		api.POST("/logout", authHandler.Logout(authdomain.RoleUser))

		// Form intake routes
		api.POST("/saveHealthProfile", intakeHandler.SaveHealthProfile)
		api.POST("/saveLifestyle", intakeHandler.SaveLifestyle)
		api.POST("/saveLabRecord", intakeHandler.SaveLabRecord)

		// Recommendation routes
		api.POST("/generateRecommendation", recoHandler.GenerateRecommendation)
		api.POST("/saveRecommendation", recoHandler.SaveRecommendation)
	}
}
