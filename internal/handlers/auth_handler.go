package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "skillmart/internal/errors"
	"skillmart/internal/middleware"
	"skillmart/internal/models"
)

// AuthHandler issues principal tokens. It is a stand-in for the calling
// environment's own identity system: whoever holds the issuer API key can
// mint a token for any principal.
type AuthHandler struct{}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// TokenRequest represents the request payload for issuing a principal token.
type TokenRequest struct {
	Principal string `json:"principal" binding:"required,principal"`
}

// TokenResponse represents an issued token.
type TokenResponse struct {
	Token     string `json:"token"`
	Principal string `json:"principal"`
}

// IssueToken exchanges a principal identifier for a signed bearer token.
// @Summary     Issue a principal token
// @Description Issue a signed bearer token for the given principal. Requires the issuer API key.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       X-API-Key header string true "Issuer API key"
// @Param       request body TokenRequest true "Principal to issue a token for"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid API key"
// @Router      /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	token, err := middleware.GeneratePrincipalToken(models.Principal(req.Principal))
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token, Principal: req.Principal})
}
