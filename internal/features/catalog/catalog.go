// Package catalog lists the resources the store manages and wires a gateway,
// store and service for each of them.
package catalog

import (
	"slices"

	pickupadapters "dispatch-store/internal/features/pickups/adapters"
	pickupdomain "dispatch-store/internal/features/pickups/domain"
	pickupports "dispatch-store/internal/features/pickups/ports"
	pickupservice "dispatch-store/internal/features/pickups/service"
	"dispatch-store/internal/features/resource/adapters"
	"dispatch-store/internal/features/resource/domain"
	"dispatch-store/internal/features/resource/ports"
	"dispatch-store/internal/features/resource/service"
	"dispatch-store/internal/features/resource/store"
)

// Shipments are STTs (surat tanda terima), the consignment notes.
var Shipments = domain.Definition{
	Name:              "shipments",
	Path:              "/stts",
	Required:          []string{"branch_id", "sender_name", "receiver_name", "destination"},
	NullableRelations: []string{"pickup_id"},
	KeyNames:          []string{"branch_id", "status"},
}

// Vehicles are the fleet. Availability is kept per branch.
var Vehicles = domain.Definition{
	Name:              "vehicles",
	Path:              "/vehicles",
	Required:          []string{"plate_number", "vehicle_type"},
	NullableRelations: []string{"branch_id"},
	KeyNames:          []string{"branch_id", "availability"},
}

// Employees are couriers, drivers and branch staff, keyed by branch and role.
var Employees = domain.Definition{
	Name:              "employees",
	Path:              "/employees",
	Required:          []string{"name", "role"},
	NullableRelations: []string{"branch_id"},
	KeyNames:          []string{"branch_id", "role"},
}

// CashLedgers are branch cash book entries. Balances are computed by the backend.
var CashLedgers = domain.Definition{
	Name:              "cash-ledgers",
	Path:              "/cash-ledgers",
	Required:          []string{"branch_id", "amount", "entry_type"},
	NullableRelations: []string{"employee_id"},
	KeyNames:          []string{"branch_id"},
}

// Definitions returns every managed resource.
func Definitions() []domain.Definition {
	return []domain.Definition{pickupdomain.Definition, Shipments, Vehicles, Employees, CashLedgers}
}

// Registry holds one service per resource plus the pickup lifecycle service.
type Registry struct {
	services map[string]*service.ResourceServiceImpl
	names    []string
	pickups  *pickupservice.TransitionServiceImpl
}

// Build wires every resource in Definitions against client.
func Build(client *adapters.Client, opts ...store.Option) *Registry {
	r := &Registry{services: make(map[string]*service.ResourceServiceImpl)}

	for _, def := range Definitions() {
		svc := service.NewResourceService(adapters.NewRESTGateway(client, def), store.New(def, opts...))
		r.services[def.Name] = svc
		r.names = append(r.names, def.Name)
	}

	r.pickups = pickupservice.NewTransitionService(
		pickupadapters.NewStatusGateway(client),
		r.services[pickupdomain.Definition.Name].Store(),
	)
	return r
}

// Resource returns the service managing name.
func (r *Registry) Resource(name string) (ports.ResourceService, bool) {
	svc, ok := r.services[name]
	if !ok {
		return nil, false
	}
	return svc, true
}

// Names lists the managed resources in catalog order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Pickups returns the pickup lifecycle service.
func (r *Registry) Pickups() pickupports.PickupService {
	return r.pickups
}

// ResetAll resets every resource store in catalog order.
func (r *Registry) ResetAll() {
	for _, name := range r.names {
		r.services[name].Reset()
	}
}
