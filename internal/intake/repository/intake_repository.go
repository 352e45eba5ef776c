package repository

import (
	intakedomain "gecawings-backend/internal/intake/domain"

	"gorm.io/gorm"
)

// IntakeRepository defines the interface for form-intake storage
type IntakeRepository interface {
	SaveHealthProfile(profile *intakedomain.HealthProfile) error
	SaveLifestyleEntry(entry *intakedomain.LifestyleEntry) error
	SaveLabRecord(record *intakedomain.LabRecord) error
}

// intakeRepository implements IntakeRepository interface
type intakeRepository struct {
	db *gorm.DB
}

// NewIntakeRepository creates a new instance of intakeRepository
func NewIntakeRepository(db *gorm.DB) IntakeRepository {
	return &intakeRepository{
		db: db,
	}
}

func (r *intakeRepository) SaveHealthProfile(profile *intakedomain.HealthProfile) error {
	return r.db.Create(profile).Error
}

func (r *intakeRepository) SaveLifestyleEntry(entry *intakedomain.LifestyleEntry) error {
	return r.db.Create(entry).Error
}

func (r *intakeRepository) SaveLabRecord(record *intakedomain.LabRecord) error {
	return r.db.Create(record).Error
}
