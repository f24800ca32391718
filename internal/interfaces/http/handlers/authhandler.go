package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edifai-io/edifai/internal/application/auth/usecases"
	"github.com/edifai-io/edifai/internal/shared/errors"
	"github.com/edifai-io/edifai/internal/shared/logger"
	"github.com/edifai-io/edifai/internal/shared/utils"
)

// TokenRefresher exchanges a valid refresh token for a new token pair.
type TokenRefresher interface {
	Refresh(refreshToken string) (accessToken, newRefreshToken string, err error)
	AccessExpSeconds() int64
}

// AuthHandler serves login and token refresh.
type AuthHandler struct {
	loginUC   *usecases.LoginUseCase
	refresher TokenRefresher
	logger    logger.Interface
}

func NewAuthHandler(loginUC *usecases.LoginUseCase, refresher TokenRefresher) *AuthHandler {
	return &AuthHandler{
		loginUC:   loginUC,
		refresher: refresher,
		logger:    logger.NewLogger(),
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse carries an issued token pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	cmd := usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.loginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"user": toUserResponse(result.User),
		"tokens": TokenResponse{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			TokenType:    "Bearer",
			ExpiresIn:    h.refresher.AccessExpSeconds(),
		},
	})
}

func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for refresh token", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Invalid request body"))
		return
	}

	accessToken, refreshToken, err := h.refresher.Refresh(req.RefreshToken)
	if err != nil {
		h.logger.Warnw("refresh token rejected", "error", err)
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("Invalid refresh token"))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Token refreshed successfully", TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    h.refresher.AccessExpSeconds(),
	})
}
