package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"dispatch-store/internal/features/resource/domain"
	"dispatch-store/internal/features/resource/ports"
	"dispatch-store/internal/features/resource/service"
	"dispatch-store/internal/features/resource/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway is a canned implementation of ports.Gateway for testing.
type stubGateway struct {
	list      domain.Collection
	record    domain.Record
	err       error
	lastQuery url.Values
	lastBody  domain.Record
}

func (g *stubGateway) List(_ context.Context, params url.Values) (domain.Collection, error) {
	g.lastQuery = params
	return g.list, g.err
}

func (g *stubGateway) Get(_ context.Context, id domain.ID) (domain.Record, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.record, nil
}

func (g *stubGateway) Create(_ context.Context, payload domain.Record) (domain.Record, error) {
	g.lastBody = payload
	if g.err != nil {
		return nil, g.err
	}
	return g.record, nil
}

func (g *stubGateway) Update(_ context.Context, id domain.ID, payload domain.Record) (domain.Record, error) {
	g.lastBody = payload
	if g.err != nil {
		return nil, g.err
	}
	return g.record, nil
}

func (g *stubGateway) Delete(context.Context, domain.ID) error {
	return g.err
}

func (g *stubGateway) ListByKey(_ context.Context, key, value string) (domain.Collection, error) {
	return g.list, g.err
}

type stubRegistry map[string]ports.ResourceService

func (r stubRegistry) Resource(name string) (ports.ResourceService, bool) {
	svc, ok := r[name]
	return svc, ok
}

func setupApp(gw *stubGateway) *fiber.App {
	svc := service.NewResourceService(gw, store.New(domain.Definition{Name: "vehicles", Path: "/vehicles"}))
	h := NewResourceHandler(stubRegistry{"vehicles": svc})

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	h.Register(app)
	return app
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func TestResourceHandler_RefreshAndRead(t *testing.T) {
	gw := &stubGateway{list: domain.Collection{
		Records:    []domain.Record{{"id": "1", "plate_number": "B 1"}},
		Pagination: domain.Pagination{CurrentPage: 1, TotalPages: 3, Total: 21},
	}}
	app := setupApp(gw)

	resp, err := app.Test(httptest.NewRequest("POST", "/resources/vehicles/refresh?page=1&branch_id=7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "7", gw.lastQuery.Get("branch_id"))

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	col := decode[struct {
		Data       []map[string]any  `json:"data"`
		Pagination domain.Pagination `json:"pagination"`
	}](t, resp)
	require.Len(t, col.Data, 1)
	assert.Equal(t, "1", col.Data[0]["id"])
	assert.Equal(t, 3, col.Pagination.TotalPages)

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/status/fetch-list", nil))
	require.NoError(t, err)
	status := decode[map[string]any](t, resp)
	assert.Equal(t, true, status["succeeded"])
	assert.Equal(t, false, status["inFlight"])
	assert.Nil(t, status["error"])
}

func TestResourceHandler_UnknownResource(t *testing.T) {
	app := setupApp(&stubGateway{})

	resp, err := app.Test(httptest.NewRequest("GET", "/resources/invoices", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decode[ErrorResponse](t, resp)
	assert.Equal(t, "test-ray-id", body.RayID)
}

func TestResourceHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gw := &stubGateway{record: domain.Record{"id": "9", "plate_number": "B 9"}}
		app := setupApp(gw)

		body, _ := json.Marshal(map[string]any{"plate_number": "B 9", "vehicle_type": "van"})
		req := httptest.NewRequest("POST", "/resources/vehicles", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, "van", gw.lastBody["vehicle_type"])

		resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/detail", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "9", decode[map[string]any](t, resp)["id"])
	})

	t.Run("ValidationError", func(t *testing.T) {
		gw := &stubGateway{err: domain.NewValidationError("plate_number")}
		app := setupApp(gw)

		req := httptest.NewRequest("POST", "/resources/vehicles", bytes.NewReader([]byte(`{"vehicle_type":"van"}`)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		errBody := decode[ErrorResponse](t, resp)
		assert.Equal(t, domain.KindValidation, errBody.Kind)
		assert.Equal(t, []string{"plate_number"}, errBody.Fields)
		assert.Equal(t, "test-ray-id", errBody.RayID)

		resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/status/create", nil))
		require.NoError(t, err)
		status := decode[domain.OperationStatus](t, resp)
		require.NotNil(t, status.Error)
		assert.Equal(t, domain.KindValidation, status.Error.Kind)

		resp, err = app.Test(httptest.NewRequest("POST", "/resources/vehicles/status/create/ack", nil))
		require.NoError(t, err)
		assert.Equal(t, domain.OperationStatus{}, decode[domain.OperationStatus](t, resp))
	})

	t.Run("InvalidBody", func(t *testing.T) {
		app := setupApp(&stubGateway{})

		req := httptest.NewRequest("POST", "/resources/vehicles", bytes.NewReader([]byte(`{`)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestResourceHandler_TransportErrors(t *testing.T) {
	t.Run("ClientErrorPassesThrough", func(t *testing.T) {
		app := setupApp(&stubGateway{err: &domain.TransportError{StatusCode: 404, Message: "Vehicle not found"}})

		resp, err := app.Test(httptest.NewRequest("GET", "/resources/vehicles/42", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "Vehicle not found", decode[ErrorResponse](t, resp).Message)
	})

	t.Run("ServerErrorIsBadGateway", func(t *testing.T) {
		app := setupApp(&stubGateway{err: &domain.TransportError{StatusCode: 500, Message: domain.GenericErrorMessage}})

		resp, err := app.Test(httptest.NewRequest("DELETE", "/resources/vehicles/42", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, domain.KindTransport, decode[ErrorResponse](t, resp).Kind)
	})
}

func TestResourceHandler_UpdateRemoveReset(t *testing.T) {
	gw := &stubGateway{
		list:   domain.Collection{Records: []domain.Record{{"id": "1", "plate_number": "B 1"}}},
		record: domain.Record{"id": "1", "plate_number": "B 2"},
	}
	app := setupApp(gw)

	_, err := app.Test(httptest.NewRequest("POST", "/resources/vehicles/refresh", nil))
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/resources/vehicles/1", bytes.NewReader([]byte(`{"plate_number":"B 2"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles", nil))
	require.NoError(t, err)
	col := decode[map[string]any](t, resp)
	first := col["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "B 2", first["plate_number"])

	resp, err = app.Test(httptest.NewRequest("DELETE", "/resources/vehicles/1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/detail", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/resources/vehicles/reset", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestResourceHandler_SubCaches(t *testing.T) {
	gw := &stubGateway{list: domain.Collection{Records: []domain.Record{{"id": "5", "branch_id": "7"}}}}
	app := setupApp(gw)

	resp, err := app.Test(httptest.NewRequest("GET", "/resources/vehicles/keys/branch_id/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("POST", "/resources/vehicles/keys/branch_id/7/refresh", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/keys/branch_id/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/resources/vehicles/keys/branch_id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/keys/branch_id/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResourceHandler_SubCacheSurvivesLaterRequests(t *testing.T) {
	gw := &stubGateway{list: domain.Collection{Records: []domain.Record{{"id": "5", "branch_id": "AAAA"}}}}
	app := setupApp(gw)

	resp, err := app.Test(httptest.NewRequest("POST", "/resources/vehicles/keys/branch_id/AAAA/refresh", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for i := 0; i < 20; i++ {
		_, err := app.Test(httptest.NewRequest("GET", "/resources/vehicles/keys/zzzzzzzz/ZZZZ", nil))
		require.NoError(t, err)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/resources/vehicles/keys/branch_id/AAAA", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResourceHandler_UnknownKind(t *testing.T) {
	app := setupApp(&stubGateway{})

	resp, err := app.Test(httptest.NewRequest("GET", "/resources/vehicles/status/explode", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
