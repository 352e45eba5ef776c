package repository

import (
	recodomain "gecawings-backend/internal/recommendation/domain"

	"gorm.io/gorm"
)

// RecommendationRepository defines the interface for recommendation storage
type RecommendationRepository interface {
	Save(rec *recodomain.Recommendation) error
}

// recommendationRepository implements RecommendationRepository interface
type recommendationRepository struct {
	db *gorm.DB
}

// NewRecommendationRepository creates a new instance of recommendationRepository
func NewRecommendationRepository(db *gorm.DB) RecommendationRepository {
	return &recommendationRepository{
		db: db,
	}
}

func (r *recommendationRepository) Save(rec *recodomain.Recommendation) error {
	return r.db.Create(rec).Error
}
