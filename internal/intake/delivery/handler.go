package delivery

import (
	"net/http"

	intakedomain "gecawings-backend/internal/intake/domain"
	"gecawings-backend/internal/intake/usecase"

	"github.com/gin-gonic/gin"
)

type IntakeHandler struct {
	intakeUsecase usecase.IntakeUsecase
}

// NewIntakeHandler creates a new instance of IntakeHandler
func NewIntakeHandler(intakeUsecase usecase.IntakeUsecase) *IntakeHandler {
	return &IntakeHandler{
		intakeUsecase: intakeUsecase,
	}
}

func (h *IntakeHandler) SaveHealthProfile(c *gin.Context) {
	var profile intakedomain.HealthProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.intakeUsecase.SaveHealthProfile(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save health profile"})
		return
	}

	// Echo the row back with its generated id, fields unchanged
	c.JSON(http.StatusOK, profile)
}

func (h *IntakeHandler) SaveLifestyle(c *gin.Context) {
	var entry intakedomain.LifestyleEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.intakeUsecase.SaveLifestyleEntry(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save lifestyle data"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *IntakeHandler) SaveLabRecord(c *gin.Context) {
	var record intakedomain.LabRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if err := h.intakeUsecase.SaveLabRecord(&record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save lab record"})
		return
	}

	c.JSON(http.StatusOK, record)
}
