package adapters

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"dispatch-store/internal/features/pickups/domain"
	"dispatch-store/internal/features/pickups/ports"
	resource "dispatch-store/internal/features/resource/domain"
	resourceadapters "dispatch-store/internal/features/resource/adapters"
)

// StatusGateway implements ports.StatusGateway over the shared backend client.
type StatusGateway struct {
	client *resourceadapters.Client
	path   string
}

var _ ports.StatusGateway = (*StatusGateway)(nil)

// NewStatusGateway creates a new StatusGateway for the pickup collection path.
func NewStatusGateway(client *resourceadapters.Client) *StatusGateway {
	return &StatusGateway{
		client: client,
		path:   domain.Definition.Path,
	}
}

type statusRequest struct {
	Status domain.Status `json:"status"`
	Notes  string        `json:"notes,omitempty"`
}

// UpdateStatus sends PATCH /pickups/:id/status and returns the server's record.
func (g *StatusGateway) UpdateStatus(ctx context.Context, id resource.ID, status domain.Status, notes string) (resource.Record, error) {
	if strings.TrimSpace(string(id)) == "" {
		return nil, resource.NewValidationError(resource.IDField)
	}
	path := g.path + "/" + url.PathEscape(string(id)) + "/status"
	return g.client.FetchRecord(ctx, http.MethodPatch, path, statusRequest{
		Status: status,
		Notes:  strings.TrimSpace(notes),
	})
}
