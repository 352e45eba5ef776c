package usecase

import (
	"context"
	"fmt"

	recodomain "gecawings-backend/internal/recommendation/domain"
	recodto "gecawings-backend/internal/recommendation/dto"
	"gecawings-backend/internal/recommendation/repository"
)

// Cap on the completion length relayed to the client.
const recommendationMaxTokens = 1024

// CompletionClient is the interface an LLM provider client must satisfy.
// Implement this to swap providers without touching the use case.
type CompletionClient interface {
	ChatCompletion(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// RecommendationUsecase defines the interface for recommendation use cases
type RecommendationUsecase interface {
	Generate(ctx context.Context, data *recodto.HealthData) (string, error)
	Save(text string) (*recodomain.Recommendation, error)
}

// recommendationUsecase implements RecommendationUsecase interface
type recommendationUsecase struct {
	recoRepo repository.RecommendationRepository
	client   CompletionClient
}

// NewRecommendationUsecase creates a new instance of recommendationUsecase
func NewRecommendationUsecase(recoRepo repository.RecommendationRepository, client CompletionClient) RecommendationUsecase {
	return &recommendationUsecase{
		recoRepo: recoRepo,
		client:   client,
	}
}

// Generate interpolates the submitted health data into the plan-selection
// prompt and relays the provider's trimmed response verbatim. A failed or
// empty completion is terminal for the request.
func (u *recommendationUsecase) Generate(ctx context.Context, data *recodto.HealthData) (string, error) {
	prompt := buildPrompt(data)

	text, err := u.client.ChatCompletion(ctx, prompt, recommendationMaxTokens)
	if err != nil {
		return "", fmt.Errorf("%w: %v", recodomain.ErrUpstream, err)
	}

	return text, nil
}

func (u *recommendationUsecase) Save(text string) (*recodomain.Recommendation, error) {
	rec := &recodomain.Recommendation{Recommendation: text}
	if err := u.recoRepo.Save(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func buildPrompt(data *recodto.HealthData) string {
	return fmt.Sprintf(`Based on the following health data, recommend a suitable health insurance plan for the user:
Age: %d
Weight: %g
Height: %g
Blood Pressure: %s
Medical Conditions: %s
Medications: %s

Please recommend insurance according to the data above, describe it properly and generate 5-6 plans:
`, data.Age, data.Weight, data.Height, data.BloodPressure, data.Conditions, data.Medications)
}
