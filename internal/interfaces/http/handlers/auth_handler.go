package handlers

import (
	"context"
	"net/http"
	"time"

	"fastqr.backend/internal/domain/entities"
	"fastqr.backend/internal/interfaces/http/middleware"
	"fastqr.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.UserResponse, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error)
	Logout(ctx context.Context, token string)
	VerifyAccount(ctx context.Context, input *entities.VerifyAccountInput) (*entities.UserResponse, error)
	ResendVerification(ctx context.Context, input *entities.EmailInput) error
	ResetPassword(ctx context.Context, input *entities.EmailInput) error
	UpdatePassword(ctx context.Context, input *entities.UpdatePasswordInput) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase  AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler. cookieSecure is off only for plain-http local development.
func NewAuthHandler(authUsecase AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieSecure: cookieSecure,
	}
}

// Register handles user registration
// POST /api/v1/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "User registered successfully. Check your email for the verification OTP", user)
}

// Login handles user login and sets the session cookie
// POST /api/v1/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	authResponse, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := int(time.Until(authResponse.ExpiresAt).Seconds())
	h.setTokenCookie(c, authResponse.Token, maxAge)

	response.Success(c, http.StatusOK, "Login successful", authResponse)
}

// Logout revokes the session token and clears the cookie
// POST /api/v1/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authUsecase.Logout(c.Request.Context(), middleware.TokenFromRequest(c))
	h.setTokenCookie(c, "", -1)

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// VerifyAccount handles OTP account verification
// POST /api/v1/verify-account
func (h *AuthHandler) VerifyAccount(c *gin.Context) {
	var input entities.VerifyAccountInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	user, err := h.authUsecase.VerifyAccount(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Account verified successfully", user)
}

// ResendVerification sends a fresh verification OTP
// POST /api/v1/resend-verification
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	var input entities.EmailInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authUsecase.ResendVerification(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Verification OTP sent", nil)
}

// ResetPassword emails a password reset OTP
// POST /api/v1/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.EmailInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authUsecase.ResetPassword(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password reset OTP sent", nil)
}

// UpdatePassword completes a password reset
// POST /api/v1/update-password
func (h *AuthHandler) UpdatePassword(c *gin.Context) {
	var input entities.UpdatePasswordInput
	if err := bindJSON(c, &input); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authUsecase.UpdatePassword(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password updated successfully", nil)
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookie, token, maxAge, "/", "", h.cookieSecure, true)
}
