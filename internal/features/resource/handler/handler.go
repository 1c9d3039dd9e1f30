package handler

import (
	"net/url"

	"dispatch-store/internal/features/resource/domain"
	"dispatch-store/internal/features/resource/ports"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// Registry resolves a resource name to its service.
type Registry interface {
	Resource(name string) (ports.ResourceService, bool)
}

// ResourceHandler handles HTTP requests for every registered resource.
type ResourceHandler struct {
	registry Registry
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(registry Registry) *ResourceHandler {
	return &ResourceHandler{
		registry: registry,
	}
}

func (h *ResourceHandler) service(c *fiber.Ctx) (ports.ResourceService, bool) {
	return h.registry.Resource(c.Params("resource"))
}

// param copies a route parameter out of the request buffer, which fasthttp
// reuses once the handler returns.
func param(c *fiber.Ctx, name string) string {
	return utils.CopyString(c.Params(name))
}

func unknownResource(c *fiber.Ctx) error {
	return Fail(c, fiber.StatusNotFound, "unknown resource "+c.Params("resource"))
}

// GetCollection godoc
// @Summary Get the cached collection
// @Description Returns the collection cache of a resource without calling the backend.
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name (pickups, shipments, vehicles, employees, cash-ledgers)"
// @Success 200 {object} domain.Collection
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource} [get]
func (h *ResourceHandler) GetCollection(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	return c.JSON(svc.Collection())
}

// GetDetail godoc
// @Summary Get the cached detail record
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource}/detail [get]
func (h *ResourceHandler) GetDetail(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	detail, ok := svc.Detail()
	if !ok {
		return Fail(c, fiber.StatusNotFound, "no detail record cached")
	}
	return c.JSON(detail)
}

// GetStatus godoc
// @Summary Get an operation status
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param kind path string true "Operation kind (fetch-list, fetch-one, create, update, delete, transition-status, fetch-by-key)"
// @Success 200 {object} domain.OperationStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource}/status/{kind} [get]
func (h *ResourceHandler) GetStatus(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	kind, err := domain.ParseOperationKind(c.Params("kind"))
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(svc.OperationStatus(kind))
}

// Acknowledge godoc
// @Summary Acknowledge an operation status
// @Description Clears the error and success flags of an operation kind.
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param kind path string true "Operation kind"
// @Success 200 {object} domain.OperationStatus
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource}/status/{kind}/ack [post]
func (h *ResourceHandler) Acknowledge(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	kind, err := domain.ParseOperationKind(c.Params("kind"))
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, err.Error())
	}
	svc.Acknowledge(kind)
	return c.JSON(svc.OperationStatus(kind))
}

// GetSubCache godoc
// @Summary Get a keyed sub-cache
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param key path string true "Key name"
// @Param value path string true "Key value"
// @Success 200 {object} domain.Collection
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource}/keys/{key}/{value} [get]
func (h *ResourceHandler) GetSubCache(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	col, ok := svc.SubCache(param(c, "key"), param(c, "value"))
	if !ok {
		return Fail(c, fiber.StatusNotFound, "sub-cache not loaded")
	}
	return c.JSON(col)
}

// InvalidateSubCache godoc
// @Summary Drop every sub-cache under a key
// @Tags resources
// @Param resource path string true "Resource name"
// @Param key path string true "Key name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource}/keys/{key} [delete]
func (h *ResourceHandler) InvalidateSubCache(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	svc.InvalidateSubCache(param(c, "key"))
	return c.SendStatus(fiber.StatusNoContent)
}

// Refresh godoc
// @Summary Fetch a page from the backend
// @Description Replaces the collection cache. Query parameters are forwarded to the backend.
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Success 200 {object} domain.Collection
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /resources/{resource}/refresh [post]
func (h *ResourceHandler) Refresh(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	params, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return Fail(c, fiber.StatusBadRequest, "invalid query string")
	}
	col, err := svc.List(c.UserContext(), params)
	if err != nil {
		return FailOperation(c, err)
	}
	return c.JSON(col)
}

// RefreshByKey godoc
// @Summary Fetch records by key from the backend
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param key path string true "Key name"
// @Param value path string true "Key value"
// @Success 200 {object} domain.Collection
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /resources/{resource}/keys/{key}/{value}/refresh [post]
func (h *ResourceHandler) RefreshByKey(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	col, err := svc.FetchByKey(c.UserContext(), param(c, "key"), param(c, "value"))
	if err != nil {
		return FailOperation(c, err)
	}
	return c.JSON(col)
}

// GetOne godoc
// @Summary Fetch one record from the backend
// @Tags resources
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /resources/{resource}/{id} [get]
func (h *ResourceHandler) GetOne(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	r, err := svc.GetByID(c.UserContext(), domain.ID(param(c, "id")))
	if err != nil {
		return FailOperation(c, err)
	}
	return c.JSON(r)
}

// Create godoc
// @Summary Create a record
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param record body map[string]interface{} true "Record fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /resources/{resource} [post]
func (h *ResourceHandler) Create(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	var payload domain.Record
	if err := c.BodyParser(&payload); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	r, err := svc.Create(c.UserContext(), payload)
	if err != nil {
		return FailOperation(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// Update godoc
// @Summary Replace a record
// @Tags resources
// @Accept json
// @Produce json
// @Param resource path string true "Resource name"
// @Param id path string true "Record id"
// @Param record body map[string]interface{} true "Record fields"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /resources/{resource}/{id} [put]
func (h *ResourceHandler) Update(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	var payload domain.Record
	if err := c.BodyParser(&payload); err != nil {
		return Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	r, err := svc.Update(c.UserContext(), domain.ID(param(c, "id")), payload)
	if err != nil {
		return FailOperation(c, err)
	}
	return c.JSON(r)
}

// Remove godoc
// @Summary Delete a record
// @Tags resources
// @Param resource path string true "Resource name"
// @Param id path string true "Record id"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /resources/{resource}/{id} [delete]
func (h *ResourceHandler) Remove(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	if err := svc.Remove(c.UserContext(), domain.ID(param(c, "id"))); err != nil {
		return FailOperation(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Reset godoc
// @Summary Reset a resource store
// @Tags resources
// @Param resource path string true "Resource name"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /resources/{resource}/reset [post]
func (h *ResourceHandler) Reset(c *fiber.Ctx) error {
	svc, ok := h.service(c)
	if !ok {
		return unknownResource(c)
	}
	svc.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

// Register mounts every resource route on router. Fixed segments are
// registered before the :id routes they would otherwise collide with.
func (h *ResourceHandler) Register(router fiber.Router) {
	r := router.Group("/resources/:resource")

	r.Get("/", h.GetCollection)
	r.Post("/", h.Create)
	r.Get("/detail", h.GetDetail)
	r.Post("/refresh", h.Refresh)
	r.Post("/reset", h.Reset)
	r.Get("/status/:kind", h.GetStatus)
	r.Post("/status/:kind/ack", h.Acknowledge)
	r.Get("/keys/:key/:value", h.GetSubCache)
	r.Post("/keys/:key/:value/refresh", h.RefreshByKey)
	r.Delete("/keys/:key", h.InvalidateSubCache)
	r.Get("/:id", h.GetOne)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Remove)
}
