package repository

import (
	"errors"
	"time"

	authdomain "gecawings-backend/internal/auth/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AccountRepository defines the interface for account storage
type AccountRepository interface {
	Create(account *authdomain.Account) error
	FindByEmail(role authdomain.Role, email string) (*authdomain.Account, error)
	FindByID(id uint) (*authdomain.Account, error)
}

// accountRepository implements AccountRepository interface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new instance of accountRepository
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create inserts the account. The (email, role) unique index is the
// authoritative guard against duplicate signups; a violation is mapped to
// ErrConflict so racing requests cannot both succeed.
func (r *accountRepository) Create(account *authdomain.Account) error {
	account.CreatedAt = time.Now()
	account.UpdatedAt = time.Now()
	if err := r.db.Create(account).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return authdomain.ErrConflict
		}
		return err
	}
	return nil
}

func (r *accountRepository) FindByEmail(role authdomain.Role, email string) (*authdomain.Account, error) {
	var account authdomain.Account
	err := r.db.Where("email = ? AND role = ?", email, role).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) FindByID(id uint) (*authdomain.Account, error) {
	var account authdomain.Account
	err := r.db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
