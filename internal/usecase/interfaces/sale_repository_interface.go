package interfaces

import (
	"context"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
)

// ISaleRepository abstracts read-side DynamoDB access for Sale.
//
// All writes that change a sale's status go through ITransitionWriter so the
// paired vehicle update happens in the same transaction; this interface only
// reads. A zero-value entity with a nil error means "not found".

type ISaleRepository interface {
	GetByID(ctx context.Context, id string) (entities.Sale, error)

	ListByVehicleID(ctx context.Context, vehicleID string) ([]entities.Sale, error)

	// GetOpenByVehicleID returns the open (PENDING or ADVANCE_PAID) sale for
	// the vehicle, if any. At most one exists.
	GetOpenByVehicleID(ctx context.Context, vehicleID string) (entities.Sale, error)

	List(ctx context.Context, status entities.SaleStatus, limit int, cursor string) ([]entities.Sale, string, error)
}
