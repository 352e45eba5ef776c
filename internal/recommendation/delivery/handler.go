package delivery

import (
	"net/http"

	recodto "gecawings-backend/internal/recommendation/dto"
	"gecawings-backend/internal/recommendation/usecase"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recoUsecase usecase.RecommendationUsecase
}

// NewRecommendationHandler creates a new instance of RecommendationHandler
func NewRecommendationHandler(recoUsecase usecase.RecommendationUsecase) *RecommendationHandler {
	return &RecommendationHandler{
		recoUsecase: recoUsecase,
	}
}

func (h *RecommendationHandler) GenerateRecommendation(c *gin.Context) {
	var data recodto.HealthData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	recommendation, err := h.recoUsecase.Generate(c.Request.Context(), &data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate recommendation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendation": recommendation})
}

func (h *RecommendationHandler) SaveRecommendation(c *gin.Context) {
	var req recodto.SaveRecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	rec, err := h.recoUsecase.Save(req.Recommendation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save recommendation"})
		return
	}

	c.JSON(http.StatusOK, rec)
}
