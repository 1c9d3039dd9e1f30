package handler

import (
	"dispatch-store/internal/features/pickups/domain"
	"dispatch-store/internal/features/pickups/ports"
	resource "dispatch-store/internal/features/resource/domain"
	resourcehandler "dispatch-store/internal/features/resource/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// PickupHandler handles HTTP requests for the pickup lifecycle.
type PickupHandler struct {
	service ports.PickupService
}

// NewPickupHandler creates a new PickupHandler.
func NewPickupHandler(service ports.PickupService) *PickupHandler {
	return &PickupHandler{
		service: service,
	}
}

// TransitionRequest represents the request body for a status change.
type TransitionRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// TransitionsResponse lists where a cached pickup may move next.
type TransitionsResponse struct {
	Current domain.Status   `json:"current"`
	Targets []domain.Status `json:"targets"`
}

// Transition godoc
// @Summary Change the status of a pickup
// @Description Moves a pickup through PENDING, BERANGKAT, SELESAI and CANCELLED. Cancelling requires notes.
// @Tags pickups
// @Accept json
// @Produce json
// @Param id path string true "Pickup id"
// @Param transition body TransitionRequest true "Target status and notes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} resourcehandler.ErrorResponse "Unknown status"
// @Failure 409 {object} resourcehandler.ErrorResponse
// @Failure 502 {object} resourcehandler.ErrorResponse
// @Router /pickups/{id}/transition [post]
func (h *PickupHandler) Transition(c *fiber.Ctx) error {
	var req TransitionRequest
	if err := c.BodyParser(&req); err != nil {
		return resourcehandler.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	target, ok := domain.ParseStatus(req.Status)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(resourcehandler.ErrorResponse{
			Message: "unknown status " + req.Status,
			Kind:    resource.KindValidation,
			Fields:  []string{domain.StatusField},
			RayID:   resourcehandler.RayID(c),
		})
	}

	id := resource.ID(utils.CopyString(c.Params("id")))
	r, err := h.service.Transition(c.UserContext(), id, target, req.Notes)
	if err != nil {
		return resourcehandler.FailOperation(c, err)
	}
	return c.JSON(r)
}

// Transitions godoc
// @Summary List the statuses a cached pickup may move to
// @Tags pickups
// @Produce json
// @Param id path string true "Pickup id"
// @Success 200 {object} TransitionsResponse
// @Failure 404 {object} resourcehandler.ErrorResponse
// @Router /pickups/{id}/transitions [get]
func (h *PickupHandler) Transitions(c *fiber.Ctx) error {
	current, targets, ok := h.service.AllowedTargets(resource.ID(utils.CopyString(c.Params("id"))))
	if !ok {
		return resourcehandler.Fail(c, fiber.StatusNotFound, "pickup not cached")
	}
	if targets == nil {
		targets = []domain.Status{}
	}
	return c.JSON(TransitionsResponse{Current: current, Targets: targets})
}
