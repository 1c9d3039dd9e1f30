package adapters

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"dispatch-store/internal/core/logger"
	"dispatch-store/internal/features/resource/domain"
	"dispatch-store/internal/features/resource/ports"

	"go.uber.org/zap"
)

// RESTGateway implements ports.Gateway for one resource definition.
type RESTGateway struct {
	client *Client
	def    domain.Definition
	log    *zap.Logger
}

var _ ports.Gateway = (*RESTGateway)(nil)

// NewRESTGateway creates a gateway for def on top of client.
func NewRESTGateway(client *Client, def domain.Definition) *RESTGateway {
	return &RESTGateway{
		client: client,
		def:    def,
		log:    logger.ForResource("gateway", def.Name),
	}
}

// List fetches one page of the collection.
func (g *RESTGateway) List(ctx context.Context, params url.Values) (domain.Collection, error) {
	return g.client.FetchCollection(ctx, g.def.Path, params)
}

// Get fetches a single record.
func (g *RESTGateway) Get(ctx context.Context, id domain.ID) (domain.Record, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return g.client.FetchRecord(ctx, http.MethodGet, g.itemPath(id), nil)
}

// Create validates and posts a new record.
func (g *RESTGateway) Create(ctx context.Context, payload domain.Record) (domain.Record, error) {
	body, err := g.prepareCreate(payload)
	if err != nil {
		g.log.Debug("Create rejected before sending", zap.Error(err))
		return nil, err
	}
	return g.client.FetchRecord(ctx, http.MethodPost, g.def.Path, body)
}

// Update validates and sends a full replacement of the record.
func (g *RESTGateway) Update(ctx context.Context, id domain.ID, payload domain.Record) (domain.Record, error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	body, err := g.prepareUpdate(id, payload)
	if err != nil {
		g.log.Debug("Update rejected before sending", zap.Error(err))
		return nil, err
	}
	return g.client.FetchRecord(ctx, http.MethodPut, g.itemPath(id), body)
}

// Delete removes a record.
func (g *RESTGateway) Delete(ctx context.Context, id domain.ID) error {
	if err := requireID(id); err != nil {
		return err
	}
	return g.client.Send(ctx, http.MethodDelete, g.itemPath(id))
}

// ListByKey fetches the records whose key equals value.
func (g *RESTGateway) ListByKey(ctx context.Context, key, value string) (domain.Collection, error) {
	if !g.def.AllowsKey(key) {
		return domain.Collection{}, &domain.ValidationError{
			Fields:  []string{key},
			Message: fmt.Sprintf("%s cannot be queried by %s", g.def.Name, key),
		}
	}
	if strings.TrimSpace(value) == "" {
		return domain.Collection{}, domain.NewValidationError(key)
	}
	return g.client.FetchCollection(ctx, g.def.Path, url.Values{key: {value}})
}

func (g *RESTGateway) itemPath(id domain.ID) string {
	return g.def.Path + "/" + url.PathEscape(string(id))
}

func (g *RESTGateway) prepareCreate(payload domain.Record) (domain.Record, error) {
	body := payload.Clone()
	if body == nil {
		body = domain.Record{}
	}

	var missing []string
	for _, field := range g.def.Required {
		if domain.IsBlank(body[field]) {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return nil, domain.NewValidationError(missing...)
	}

	if lc := g.def.Lifecycle; lc != nil {
		if status := body.String(lc.StatusField); status != "" && status != lc.InitialStatus {
			return nil, &domain.ValidationError{
				Fields:  []string{lc.StatusField},
				Message: fmt.Sprintf("new %s start in %s", g.def.Name, lc.InitialStatus),
			}
		}
		body[lc.StatusField] = lc.InitialStatus
	}

	g.nullSentinels(body)
	return body, nil
}

func (g *RESTGateway) prepareUpdate(id domain.ID, payload domain.Record) (domain.Record, error) {
	body := payload.Clone()
	if body == nil {
		body = domain.Record{}
	}

	var invalid []string
	if raw, ok := body[domain.IDField]; ok && domain.FormatID(raw) != string(id) {
		invalid = append(invalid, domain.IDField)
	}
	for _, field := range g.def.Required {
		if v, ok := body[field]; ok && domain.IsBlank(v) {
			invalid = append(invalid, field)
		}
	}
	if len(invalid) > 0 {
		return nil, domain.NewValidationError(invalid...)
	}

	if lc := g.def.Lifecycle; lc != nil {
		if _, ok := body[lc.StatusField]; ok {
			return nil, &domain.ValidationError{
				Fields:  []string{lc.StatusField},
				Message: fmt.Sprintf("%s of %s changes only through a status transition", lc.StatusField, g.def.Name),
			}
		}
	}

	g.nullSentinels(body)
	return body, nil
}

// nullSentinels turns the "no selection" values forms send for optional
// relations into explicit nulls. Absent relations stay absent.
func (g *RESTGateway) nullSentinels(body domain.Record) {
	for _, field := range g.def.NullableRelations {
		if v, ok := body[field]; ok && domain.IsNoSelection(v) {
			body[field] = nil
		}
	}
}

func requireID(id domain.ID) error {
	if strings.TrimSpace(string(id)) == "" {
		return domain.NewValidationError(domain.IDField)
	}
	return nil
}
