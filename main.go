package main

import (
	"log"

	api "gecawings-backend/cmd/api"
	authdomain "gecawings-backend/internal/auth/domain"
	authRepo "gecawings-backend/internal/auth/repository"
	authUsecase "gecawings-backend/internal/auth/usecase"
	intakedomain "gecawings-backend/internal/intake/domain"
	intakeRepo "gecawings-backend/internal/intake/repository"
	intakeUsecase "gecawings-backend/internal/intake/usecase"
	recodomain "gecawings-backend/internal/recommendation/domain"
	recoRepo "gecawings-backend/internal/recommendation/repository"
	recoUsecase "gecawings-backend/internal/recommendation/usecase"
	"gecawings-backend/pkg/config"
	"gecawings-backend/pkg/database"
	"gecawings-backend/pkg/groq"
)

func main() {
	// Load configuration; refuse to start without the secrets
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.Account{}, &intakedomain.HealthProfile{}, &intakedomain.LifestyleEntry{}, &intakedomain.LabRecord{}, &recodomain.Recommendation{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	accountRepository := authRepo.NewAccountRepository(db)
	intakeRepository := intakeRepo.NewIntakeRepository(db)
	recoRepository := recoRepo.NewRecommendationRepository(db)

	// Initialize Groq client for recommendation generation
	groqClient := groq.NewClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)

	// Initialize use cases (dependency injection)
	authUsecaseInstance := authUsecase.NewAuthUsecase(accountRepository, cfg)
	intakeUsecaseInstance := intakeUsecase.NewIntakeUsecase(intakeRepository)
	recoUsecaseInstance := recoUsecase.NewRecommendationUsecase(recoRepository, groqClient)

	// Initialize HTTP handler
	handler := api.NewHandler(authUsecaseInstance, intakeUsecaseInstance, recoUsecaseInstance, cfg)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
