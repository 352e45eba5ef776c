package usecase

import (
	intakedomain "gecawings-backend/internal/intake/domain"
	"gecawings-backend/internal/intake/repository"
)

// IntakeUsecase defines the interface for form-intake use cases. Each
// operation inserts one row; the caller echoes it back with its new id.
type IntakeUsecase interface {
	SaveHealthProfile(profile *intakedomain.HealthProfile) error
	SaveLifestyleEntry(entry *intakedomain.LifestyleEntry) error
	SaveLabRecord(record *intakedomain.LabRecord) error
}

// intakeUsecase implements IntakeUsecase interface
type intakeUsecase struct {
	intakeRepo repository.IntakeRepository
}

// NewIntakeUsecase creates a new instance of intakeUsecase
func NewIntakeUsecase(intakeRepo repository.IntakeRepository) IntakeUsecase {
	return &intakeUsecase{
		intakeRepo: intakeRepo,
	}
}

func (u *intakeUsecase) SaveHealthProfile(profile *intakedomain.HealthProfile) error {
	return u.intakeRepo.SaveHealthProfile(profile)
}

func (u *intakeUsecase) SaveLifestyleEntry(entry *intakedomain.LifestyleEntry) error {
	return u.intakeRepo.SaveLifestyleEntry(entry)
}

func (u *intakeUsecase) SaveLabRecord(record *intakedomain.LabRecord) error {
	return u.intakeRepo.SaveLabRecord(record)
}
