package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dispatch-store/internal/features/pickups/domain"
	resource "dispatch-store/internal/features/resource/domain"
	resourcehandler "dispatch-store/internal/features/resource/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPickupService is a mock implementation of ports.PickupService
type MockPickupService struct {
	mock.Mock
}

func (m *MockPickupService) Transition(ctx context.Context, id resource.ID, target domain.Status, notes string) (resource.Record, error) {
	args := m.Called(ctx, id, target, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(resource.Record), args.Error(1)
}

func (m *MockPickupService) AllowedTargets(id resource.ID) (domain.Status, []domain.Status, bool) {
	args := m.Called(id)
	var targets []domain.Status
	if args.Get(1) != nil {
		targets = args.Get(1).([]domain.Status)
	}
	return args.Get(0).(domain.Status), targets, args.Bool(2)
}

func setupApp(service *MockPickupService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h := NewPickupHandler(service)
	app.Post("/pickups/:id/transition", h.Transition)
	app.Get("/pickups/:id/transitions", h.Transitions)
	return app
}

func postTransition(t *testing.T, app *fiber.App, id string, req TransitionRequest) *http.Response {
	t.Helper()
	body, _ := json.Marshal(req)
	r := httptest.NewRequest("POST", "/pickups/"+id+"/transition", bytes.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(r)
	require.NoError(t, err)
	return resp
}

func TestPickupHandler_Transition(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockPickupService)
		app := setupApp(svc)
		svc.On("Transition", mock.Anything, resource.ID("1"), domain.StatusCancelled, "customer refused").
			Return(resource.Record{"id": "1", "status": "CANCELLED"}, nil).Once()

		resp := postTransition(t, app, "1", TransitionRequest{Status: "cancelled", Notes: "customer refused"})

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("NotesRequired", func(t *testing.T) {
		svc := new(MockPickupService)
		app := setupApp(svc)
		svc.On("Transition", mock.Anything, resource.ID("1"), domain.StatusCancelled, "").
			Return(nil, &resource.InvalidTransitionError{From: "PENDING", To: "CANCELLED", Reason: resource.ReasonNotesRequired}).Once()

		resp := postTransition(t, app, "1", TransitionRequest{Status: "CANCELLED"})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		var body resourcehandler.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, resource.KindInvalidTransition, body.Kind)
		assert.Equal(t, []string{"notes"}, body.Fields)
		assert.Equal(t, "test-ray-id", body.RayID)
	})

	t.Run("UnknownStatus", func(t *testing.T) {
		svc := new(MockPickupService)
		app := setupApp(svc)

		resp := postTransition(t, app, "1", TransitionRequest{Status: "lost"})

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		raw, _ := io.ReadAll(resp.Body)
		var body resourcehandler.ErrorResponse
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, resource.KindValidation, body.Kind)
		assert.Equal(t, []string{"status"}, body.Fields)
		svc.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		svc := new(MockPickupService)
		app := setupApp(svc)

		r := httptest.NewRequest("POST", "/pickups/1/transition", bytes.NewReader([]byte("{")))
		r.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(r)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPickupHandler_Transitions(t *testing.T) {
	svc := new(MockPickupService)
	app := setupApp(svc)
	svc.On("AllowedTargets", resource.ID("1")).
		Return(domain.StatusPending, []domain.Status{domain.StatusDeparted, domain.StatusCancelled}, true).Once()
	svc.On("AllowedTargets", resource.ID("2")).Return(domain.Status(""), nil, false).Once()

	resp, err := app.Test(httptest.NewRequest("GET", "/pickups/1/transitions", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body TransitionsResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, domain.StatusPending, body.Current)
	assert.Equal(t, []domain.Status{domain.StatusDeparted, domain.StatusCancelled}, body.Targets)

	resp, err = app.Test(httptest.NewRequest("GET", "/pickups/2/transitions", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
