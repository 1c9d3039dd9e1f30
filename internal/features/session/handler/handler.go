package handler

import (
	"strings"

	"dispatch-store/internal/core/auth"
	"dispatch-store/internal/core/logger"
	resourcehandler "dispatch-store/internal/features/resource/handler"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Resetter drops every cached resource.
type Resetter interface {
	ResetAll()
}

// SessionHandler lets the auth collaborator hand over or revoke the token
// attached to backend calls.
type SessionHandler struct {
	tokens auth.TokenStore
	stores Resetter
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(tokens auth.TokenStore, stores Resetter) *SessionHandler {
	return &SessionHandler{
		tokens: tokens,
		stores: stores,
	}
}

// TokenRequest represents the request body for storing a token.
type TokenRequest struct {
	Token string `json:"token"`
}

// SaveToken godoc
// @Summary Store the authentication token
// @Description Replaces the token attached to every backend call. Persistent token backends keep it across restarts.
// @Tags session
// @Accept json
// @Param token body TokenRequest true "Token issued by the auth service"
// @Success 204
// @Failure 400 {object} resourcehandler.ErrorResponse
// @Failure 500 {object} resourcehandler.ErrorResponse
// @Router /session/token [put]
func (h *SessionHandler) SaveToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return resourcehandler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	token := strings.TrimSpace(req.Token)
	if token == "" {
		return resourcehandler.Fail(c, fiber.StatusBadRequest, "token is required")
	}

	if err := h.tokens.SaveToken(c.UserContext(), token); err != nil {
		logger.For("session").Error("Failed to store token", zap.String("ray_id", resourcehandler.RayID(c)), zap.Error(err))
		return resourcehandler.Fail(c, fiber.StatusInternalServerError, "failed to store token")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Logout godoc
// @Summary Forget the token and drop cached data
// @Description Clears the stored token and resets every resource store.
// @Tags session
// @Success 204
// @Failure 500 {object} resourcehandler.ErrorResponse
// @Router /session/token [delete]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.tokens.ClearToken(c.UserContext()); err != nil {
		logger.For("session").Error("Failed to clear token", zap.String("ray_id", resourcehandler.RayID(c)), zap.Error(err))
		return resourcehandler.Fail(c, fiber.StatusInternalServerError, "failed to clear token")
	}
	h.stores.ResetAll()
	logger.For("session").Info("Logged out, resource stores reset")
	return c.SendStatus(fiber.StatusNoContent)
}
