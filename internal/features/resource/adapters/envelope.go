package adapters

import (
	"errors"
	"fmt"
	"strings"

	"dispatch-store/internal/features/resource/domain"

	"github.com/goccy/go-json"
)

// The backend answers with { data, pagination?, total? } or { message }. Some
// endpoints wrap the whole envelope in one more "data" object; both shapes are
// unwrapped the same way.

var errMissingID = errors.New("record without id")

func decodeBody(body []byte) (any, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, errors.New("empty body")
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// unwrap returns the envelope holding the payload, descending into a
// double-nested "data" object. An inner object with an id is a record, even if
// it has a field named data. Pagination and total found on the outer level are
// carried down when the inner level has none.
func unwrap(v any) (map[string]any, bool) {
	env, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	inner, ok := env["data"].(map[string]any)
	if !ok || !isEnvelope(inner) {
		return env, true
	}
	for _, k := range []string{"pagination", "total"} {
		if _, has := inner[k]; !has {
			if outer, ok := env[k]; ok {
				inner[k] = outer
			}
		}
	}
	return inner, true
}

// isEnvelope reports whether m wraps a payload rather than being a record.
func isEnvelope(m map[string]any) bool {
	if _, isRecord := m[domain.IDField]; isRecord {
		return false
	}
	switch m["data"].(type) {
	case []any, map[string]any:
		return true
	}
	return false
}

func decodeCollection(body []byte) (domain.Collection, error) {
	v, err := decodeBody(body)
	if err != nil {
		return domain.Collection{}, err
	}

	var (
		items []any
		env   map[string]any
	)
	if list, ok := v.([]any); ok {
		items = list
	} else {
		var ok bool
		if env, ok = unwrap(v); !ok {
			return domain.Collection{}, fmt.Errorf("unexpected list payload %T", v)
		}
		switch data := env["data"].(type) {
		case []any:
			items = data
		case nil:
			items = nil
		default:
			return domain.Collection{}, fmt.Errorf("unexpected list data %T", data)
		}
	}

	col := domain.Collection{Records: make([]domain.Record, 0, len(items))}
	for _, item := range items {
		r, err := toRecord(item)
		if err != nil {
			return domain.Collection{}, err
		}
		col.Records = append(col.Records, r)
	}
	col.Pagination = pagination(env, len(col.Records))
	return col, nil
}

func decodeRecord(body []byte) (domain.Record, error) {
	v, err := decodeBody(body)
	if err != nil {
		return nil, err
	}
	env, ok := unwrap(v)
	if !ok {
		return nil, fmt.Errorf("unexpected record payload %T", v)
	}
	if data, ok := env["data"]; ok {
		return toRecord(data)
	}
	return toRecord(env)
}

func toRecord(v any) (domain.Record, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected record %T", v)
	}
	r := domain.Record(m)
	id := domain.FormatID(r[domain.IDField])
	if id == "" {
		return nil, errMissingID
	}
	r[domain.IDField] = id
	return r, nil
}

// pagination reads { page, totalPages } plus total from the envelope. A list
// without pagination is one complete page.
func pagination(env map[string]any, count int) domain.Pagination {
	p := domain.Pagination{CurrentPage: 1, TotalPages: 1, Total: count}
	if env == nil {
		return p
	}

	raw, _ := env["pagination"].(map[string]any)
	if n, ok := intField(raw, "page", "currentPage", "current_page"); ok {
		p.CurrentPage = n
	}
	if n, ok := intField(raw, "totalPages", "total_pages", "lastPage", "last_page"); ok {
		p.TotalPages = n
	}
	if n, ok := intField(env, "total"); ok {
		p.Total = n
	} else if n, ok := intField(raw, "total"); ok {
		p.Total = n
	}
	return p
}

func intField(m map[string]any, names ...string) (int, bool) {
	for _, name := range names {
		switch v := m[name].(type) {
		case float64:
			return int(v), true
		case string:
			var n int
			if _, err := fmt.Sscan(v, &n); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

// serverMessage extracts the backend's human readable message, falling back to
// the generic one.
func serverMessage(body []byte) string {
	v, err := decodeBody(body)
	if err != nil {
		return domain.GenericErrorMessage
	}
	env, ok := v.(map[string]any)
	if !ok {
		return domain.GenericErrorMessage
	}
	if msg, ok := env["message"].(string); ok && strings.TrimSpace(msg) != "" {
		return msg
	}
	if inner, ok := env["data"].(map[string]any); ok {
		if msg, ok := inner["message"].(string); ok && strings.TrimSpace(msg) != "" {
			return msg
		}
	}
	return domain.GenericErrorMessage
}
