package domain

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/tiendc/go-deepcopy"
)

// IDField is the record field carrying the resource identifier.
const IDField = "id"

// ID is the backend-assigned identifier of a resource instance. Opaque, stable,
// never reused.
type ID string

// Record is a server-owned entity: a field map that always contains IDField.
// Fields other than the identifier (and the status of lifecycle-bearing
// resources) are opaque to the store.
type Record map[string]any

// ID returns the record identifier in its canonical string form.
func (r Record) ID() ID {
	return ID(FormatID(r[IDField]))
}

// String returns a field as text, or "" when absent.
func (r Record) String(field string) string {
	v, ok := r[field]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Clone returns a deep copy so cached records never share nested maps or
// slices with callers.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	var out Record
	if err := deepcopy.Copy(&out, r); err != nil {
		out = make(Record, len(r))
		maps.Copy(out, r)
	}
	return out
}

// FormatID renders a wire identifier (string or JSON number) as an ID string.
func FormatID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case ID:
		return string(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}

// Pagination is the cursor returned with a list.
type Pagination struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	Total       int `json:"total"`
}

// Collection is an ordered list of records of one resource with its pagination.
// It is both the normalized list payload and the collection cache content.
type Collection struct {
	Records    []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Clone deep-copies every record.
func (c Collection) Clone() Collection {
	out := Collection{Pagination: c.Pagination}
	if c.Records != nil {
		out.Records = make([]Record, len(c.Records))
		for i, r := range c.Records {
			out.Records[i] = r.Clone()
		}
	}
	return out
}

// IndexOf returns the position of the record with id, or -1.
func (c Collection) IndexOf(id ID) int {
	for i, r := range c.Records {
		if r.ID() == id {
			return i
		}
	}
	return -1
}
