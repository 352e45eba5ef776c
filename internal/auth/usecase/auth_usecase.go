package usecase

import (
	"time"

	authdomain "gecawings-backend/internal/auth/domain"
	"gecawings-backend/internal/auth/repository"
	"gecawings-backend/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	accountRepo repository.AccountRepository
	config      *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(accountRepo repository.AccountRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		accountRepo: accountRepo,
		config:      cfg,
	}
}

func (u *authUsecase) Register(role authdomain.Role, name, email, password string) (*authdomain.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", authdomain.ErrValidation
	}

	existing, err := u.accountRepo.FindByEmail(role, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", authdomain.ErrConflict
	}

	hashedPassword, err := repository.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	account := &authdomain.Account{
		Email:    email,
		Role:     role,
		Password: hashedPassword,
		Name:     name,
	}

	// The unique index backs up the check above: a concurrent signup for
	// the same email loses with ErrConflict instead of a duplicate row.
	if err := u.accountRepo.Create(account); err != nil {
		return nil, "", err
	}

	token, err := u.generateToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (u *authUsecase) Login(role authdomain.Role, email, password string) (*authdomain.Account, string, error) {
	account, err := u.accountRepo.FindByEmail(role, email)
	if err != nil {
		return nil, "", err
	}

	if account == nil {
		return nil, "", authdomain.ErrInvalidCredentials
	}

	if !repository.CheckPasswordHash(password, account.Password) {
		return nil, "", authdomain.ErrInvalidCredentials
	}

	// Fresh token, independent of any earlier one for this account.
	token, err := u.generateToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (u *authUsecase) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		return 0, authdomain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, authdomain.ErrInvalidToken
	}

	// JSON numbers decode as float64
	id, ok := claims["id"].(float64)
	if !ok || id <= 0 {
		return 0, authdomain.ErrInvalidToken
	}

	return uint(id), nil
}

func (u *authUsecase) Profile(id uint) (*authdomain.Account, string, error) {
	account, err := u.accountRepo.FindByID(id)
	if err != nil {
		return nil, "", err
	}

	if account == nil {
		return nil, "", authdomain.ErrNotFound
	}

	token, err := u.generateToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

func (u *authUsecase) generateToken(accountID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":  accountID,
		"jti": uuid.New().String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(u.config.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}
