package usecase

import (
	authdomain "gecawings-backend/internal/auth/domain"
)

// AuthUsecase defines the interface for authentication use cases
type AuthUsecase interface {
	// Register creates an account and returns it with a fresh token.
	Register(role authdomain.Role, name, email, password string) (*authdomain.Account, string, error)
	// Login checks credentials and returns the account with a fresh token.
	Login(role authdomain.Role, email, password string) (*authdomain.Account, string, error)
	// VerifyToken returns the account id embedded in a valid token. The id
	// is not re-checked against the store; it is the sole trusted input of
	// downstream handlers.
	VerifyToken(token string) (uint, error)
	// Profile returns current account data with a re-minted token
	// (sliding expiry).
	Profile(id uint) (*authdomain.Account, string, error)
}
