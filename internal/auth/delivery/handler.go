package delivery

import (
	"errors"
	"net/http"

	authdomain "gecawings-backend/internal/auth/domain"
	authdto "gecawings-backend/internal/auth/dto"
	"gecawings-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves both the admin and the user route groups; the role
// parameter selects the table scope and the response envelope.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new instance of AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

func (h *AuthHandler) Signup(role authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authdto.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
			return
		}

		name := req.Name
		if role == authdomain.RoleAdmin {
			name = req.AdminName
		}

		account, token, err := h.authUsecase.Register(role, name, req.Email, req.Password)
		if err != nil {
			respondError(c, role, err, "Error creating "+roleLabel(role)+" account")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":         roleTitle(role) + " account created successfully",
			"token":           token,
			envelopeKey(role): accountBody(role, account, true),
		})
	}
}

func (h *AuthHandler) Login(role authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req authdto.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}

		account, token, err := h.authUsecase.Login(role, req.Email, req.Password)
		if err != nil {
			respondError(c, role, err, "Database error")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":         "Login successful",
			"token":           token,
			envelopeKey(role): accountBody(role, account, true),
		})
	}
}

func (h *AuthHandler) Profile(role authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetUint("accountID")

		account, token, err := h.authUsecase.Profile(accountID)
		if err != nil {
			respondError(c, role, err, "Error retrieving "+roleLabel(role)+" data")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":         roleTitle(role) + " authenticated",
			envelopeKey(role): accountBody(role, account, false),
			"token":           token,
		})
	}
}

// Logout performs no server-side state change: tokens are stateless and
// remain valid until expiry, the client just drops its copy.
func (h *AuthHandler) Logout(role authdomain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": roleTitle(role) + " logged out successfully",
		})
	}
}

func envelopeKey(role authdomain.Role) string {
	return string(role)
}

func roleLabel(role authdomain.Role) string {
	if role == authdomain.RoleAdmin {
		return "admin"
	}
	return "user"
}

func roleTitle(role authdomain.Role) string {
	if role == authdomain.RoleAdmin {
		return "Admin"
	}
	return "User"
}

func nameKey(role authdomain.Role) string {
	if role == authdomain.RoleAdmin {
		return "adminName"
	}
	return "name"
}

func accountBody(role authdomain.Role, account *authdomain.Account, includeID bool) gin.H {
	body := gin.H{
		nameKey(role): account.Name,
		"email":       account.Email,
	}
	if includeID {
		body["id"] = account.ID
	}
	return body
}

func respondError(c *gin.Context, role authdomain.Role, err error, fallback string) {
	switch {
	case errors.Is(err, authdomain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
	case errors.Is(err, authdomain.ErrConflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": roleTitle(role) + " already exists"})
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, authdomain.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid token"})
	case errors.Is(err, authdomain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": roleTitle(role) + " not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": fallback})
	}
}
