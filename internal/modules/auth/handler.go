package auth

import (
	"errors"
	"net/http"

	"talentbook/internal/domain"
	"talentbook/internal/pkg/response"
	"talentbook/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.POST("/login", h.Login)
	r.POST("/register", h.Register)
	r.POST("/verify-email", h.VerifyEmail)
}

func (h *Handler) RegisterProtectedRoutes(r *gin.RouterGroup) {
	r.POST("/logout", h.Logout)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.ValidationErrors(c, map[string]string{"email": "unique"})
			return
		}
		if errors.Is(err, ErrInvalidRole) {
			response.ValidationErrors(c, map[string]string{"type": "oneof"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	response.JSON(c, http.StatusCreated, gin.H{
		"user": toUserPublic(user),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(err, ErrEmailNotVerified):
			response.Error(c, http.StatusForbidden, "Your email address is not verified.")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to login")
		}
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"user":  toUserPublic(result.User),
		"token": result.Token,
	})
}

func (h *Handler) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationErrors(c, map[string]string{"body": "invalid"})
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.ValidationErrors(c, errs)
		return
	}

	already, err := h.service.VerifyEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			// Mirrors the exists-rule wording: unknown email is a validation
			// failure, not a 404.
			response.ValidationErrors(c, map[string]string{"email": "exists"})
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to verify email")
		return
	}

	if already {
		response.JSON(c, http.StatusOK, gin.H{"message": "Email is already verified."})
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Email verified successfully."})
}

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "You are not logged in.")
		return
	}

	if err := h.service.Logout(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"status":  true,
		"message": "Logged out successfully.",
	})
}

func toUserPublic(u *domain.User) UserPublic {
	return UserPublic{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		StageName: u.StageName,
		Email:     u.Email,
		Role:      string(u.Role),
	}
}
