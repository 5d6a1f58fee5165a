package interfaces

import (
	"context"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
)

// INotifier is the best-effort notification side-channel (SNS).
//
// Publish failures are logged by callers and never roll back a committed
// state transition.
type INotifier interface {
	PublishVehicleAdded(ctx context.Context, v entities.Vehicle) error
	PublishSaleOpened(ctx context.Context, s entities.Sale) error
}
