package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gecawings-backend/pkg/config"
)

// NewPostgresConnection opens the shared database handle for the process.
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
}
