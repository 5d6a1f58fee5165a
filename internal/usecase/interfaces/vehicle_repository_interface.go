package interfaces

import (
	"context"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
)

// IVehicleRepository abstracts DynamoDB persistence for Vehicle.
//
// Create and Delete are transactional across the vehicles table and the
// vehicle_numbers claim table, so the plate-number uniqueness rule (unique
// among non-sold, non-deleted vehicles) is enforced at write time and not
// only by the advisory pre-flight check.
//
// Conditional operations return applied=false when the store-side condition
// did not hold at write time (lost race, number already claimed, open sale
// on the row). A zero-value entity with a nil error means "not found".

type IVehicleRepository interface {
	// Create writes the vehicle and claims its number in one transaction.
	// applied=false means the number is already claimed by an active vehicle.
	Create(ctx context.Context, v entities.Vehicle) (applied bool, err error)

	GetByID(ctx context.Context, id string) (entities.Vehicle, error)

	// ListByNumber returns every vehicle row carrying the (normalized)
	// number, regardless of status. Used by the advisory duplicate check.
	ListByNumber(ctx context.Context, number string) ([]entities.Vehicle, error)

	List(ctx context.Context, status entities.VehicleStatus, limit int, cursor string) ([]entities.Vehicle, string, error)

	// AddImageKey appends an object-storage key to the vehicle's image list.
	AddImageKey(ctx context.Context, id, key string) (entities.Vehicle, error)

	// Delete removes the vehicle row, conditioned on its status not being
	// PENDING, and releases the number claim (owner-checked) in the same
	// transaction when releaseNumber is set. applied=false means a condition
	// failed, i.e. the vehicle gained an open sale or changed hands since it
	// was read.
	Delete(ctx context.Context, id, number string, releaseNumber bool) (applied bool, err error)
}
