package domain

import (
	"slices"
	"strings"
)

// ResetPolicy says what survives Reset for a resource.
type ResetPolicy struct {
	KeepSubCaches  bool
	KeepPagination bool
}

// Lifecycle marks a resource whose status field is driven by a state machine
// instead of generic updates.
type Lifecycle struct {
	// StatusField is the record field holding the status.
	StatusField string
	// InitialStatus is the status every new record starts in.
	InitialStatus string
}

// Definition describes one resource type: where it lives on the backend and
// which request shapes are acceptable.
type Definition struct {
	// Name is the resource name used in routes, logs and metrics (e.g. "pickups").
	Name string
	// Path is the backend collection path (e.g. "/pickups").
	Path string
	// Required lists fields that must be present and non-empty on create.
	Required []string
	// NullableRelations lists optional relation fields whose "no selection"
	// sentinel is sent as an explicit null.
	NullableRelations []string
	// KeyNames lists the keys FetchByKey accepts.
	KeyNames []string
	// Reset is applied by Store.Reset.
	Reset ResetPolicy
	// Lifecycle is non-nil for lifecycle-bearing resources.
	Lifecycle *Lifecycle
}

// AllowsKey reports whether name is a keyed query of this resource.
func (d Definition) AllowsKey(name string) bool {
	return slices.Contains(d.KeyNames, name)
}

// IsNoSelection reports whether v is one of the sentinels forms use for an
// unset optional relation.
func IsNoSelection(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "0", "-", "-1", "none", "null":
			return true
		}
	case float64:
		return s == 0 || s == -1
	case int:
		return s == 0 || s == -1
	}
	return false
}

// IsBlank reports whether a required field value counts as missing.
func IsBlank(v any) bool {
	switch s := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(s) == ""
	}
	return false
}
