package handler

import (
	"errors"

	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/features/resource/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// Kind is validation, invalid_transition or transport when the error came
	// from a store operation.
	Kind domain.ErrorKind `json:"kind,omitempty"`
	// Fields lists the offending fields, if any.
	Fields []string `json:"fields,omitempty"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

// Fail writes a plain error response.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}

// FailOperation maps a store operation error to a status code and writes it.
func FailOperation(c *fiber.Ctx, err error) error {
	info := domain.Describe(err)
	status := fiber.StatusBadGateway

	var xerr *domain.TransportError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidTransition):
		status = fiber.StatusConflict
	case errors.As(err, &xerr) && xerr.StatusCode >= 400 && xerr.StatusCode < 500:
		status = xerr.StatusCode
	default:
		logger.Get().Error("Store operation failed", zap.String("ray_id", RayID(c)), zap.Error(err))
	}

	return c.Status(status).JSON(ErrorResponse{
		Message: info.Message,
		Kind:    info.Kind,
		Fields:  info.Fields,
		RayID:   RayID(c),
	})
}
