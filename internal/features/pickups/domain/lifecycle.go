package domain

import (
	"context"
	"slices"
	"strings"

	resource "dispatch-store/internal/features/resource/domain"

	"github.com/looplab/fsm"
)

// Status is the lifecycle state of a pickup.
type Status string

const (
	// StatusPending is the initial state of every pickup.
	StatusPending Status = "PENDING"
	// StatusDeparted means the courier has left for the pickup ("berangkat").
	StatusDeparted Status = "BERANGKAT"
	// StatusCompleted means the pickup is done ("selesai").
	StatusCompleted Status = "SELESAI"
	// StatusCancelled can be reopened back to PENDING.
	StatusCancelled Status = "CANCELLED"
)

// StatusField is the record field carrying the status.
const StatusField = "status"

// NotesField is the record field carrying the transition note.
const NotesField = "notes"

// Statuses lists every status.
func Statuses() []Status {
	return []Status{StatusPending, StatusDeparted, StatusCompleted, StatusCancelled}
}

// ParseStatus accepts a status in any letter case.
func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	return st, slices.Contains(Statuses(), st)
}

// Lifecycle events.
const (
	EventDepart   = "depart"
	EventComplete = "complete"
	EventCancel   = "cancel"
	EventReopen   = "reopen"
)

var transitions = fsm.Events{
	{Name: EventDepart, Src: []string{string(StatusPending)}, Dst: string(StatusDeparted)},
	{Name: EventComplete, Src: []string{string(StatusDeparted)}, Dst: string(StatusCompleted)},
	{Name: EventCancel, Src: []string{string(StatusPending), string(StatusDeparted)}, Dst: string(StatusCancelled)},
	{Name: EventReopen, Src: []string{string(StatusCancelled)}, Dst: string(StatusPending)},
}

// eventTo returns the event whose destination is to.
func eventTo(to Status) string {
	for _, e := range transitions {
		if e.Dst == string(to) {
			return e.Name
		}
	}
	return ""
}

// CheckTransition validates moving a pickup from one status to another before
// any request is sent. An empty from means the current status is not cached;
// only constraints of the target itself are checked then.
func CheckTransition(from, to Status, notes string) error {
	if !slices.Contains(Statuses(), to) {
		return &resource.InvalidTransitionError{From: string(from), To: string(to), Reason: resource.ReasonUnknownStatus}
	}

	needsNotes := func() error {
		if to == StatusCancelled && strings.TrimSpace(notes) == "" {
			return &resource.InvalidTransitionError{From: string(from), To: string(to), Reason: resource.ReasonNotesRequired}
		}
		return nil
	}

	if from == "" {
		return needsNotes()
	}

	var rejected error
	machine := fsm.NewFSM(
		string(from),
		transitions,
		fsm.Callbacks{
			"before_" + EventCancel: func(_ context.Context, e *fsm.Event) {
				if err := needsNotes(); err != nil {
					rejected = err
					e.Cancel(err)
				}
			},
		},
	)

	event := eventTo(to)
	if !machine.Can(event) {
		return &resource.InvalidTransitionError{From: string(from), To: string(to), Reason: resource.ReasonNotAllowed}
	}
	if err := machine.Event(context.Background(), event); err != nil {
		if rejected != nil {
			return rejected
		}
		return &resource.InvalidTransitionError{From: string(from), To: string(to), Reason: resource.ReasonNotAllowed}
	}
	return nil
}

// AllowedTargets lists the statuses reachable from from, in table order.
func AllowedTargets(from Status) []Status {
	machine := fsm.NewFSM(string(from), transitions, fsm.Callbacks{})

	var out []Status
	for _, e := range transitions {
		if machine.Can(e.Name) {
			out = append(out, Status(e.Dst))
		}
	}
	return out
}

// Definition is the pickup resource as the store and gateway see it.
var Definition = resource.Definition{
	Name:              "pickups",
	Path:              "/pickups",
	Required:          []string{"branch_id", "customer_name", "pickup_address"},
	NullableRelations: []string{"vehicle_id", "driver_id"},
	KeyNames:          []string{"branch_id", "driver_id", StatusField},
	Reset:             resource.ResetPolicy{KeepSubCaches: true, KeepPagination: true},
	Lifecycle:         &resource.Lifecycle{StatusField: StatusField, InitialStatus: string(StatusPending)},
}
