package interfaces

import (
	"context"
	"time"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
)

// PairedTransition describes one atomic lifecycle write spanning a sale row,
// its vehicle row, and (optionally) the number claim. Either every write
// lands or none does.
type PairedTransition struct {
	SaleID   string
	SaleFrom entities.SaleStatus
	SaleTo   entities.SaleStatus
	Reason   string

	VehicleID   string
	VehicleFrom entities.VehicleStatus
	VehicleTo   entities.VehicleStatus

	// ReleaseNumber, when non-empty, deletes the claim for this number in
	// the same transaction (owner-checked against VehicleID). Set when the
	// vehicle becomes SOLD and its number returns to the reusable pool.
	ReleaseNumber string

	Now time.Time
}

// ITransitionWriter issues the conditional, transactional writes behind every
// sale lifecycle event. Each method is a single compare-and-set unit:
// applied=false means a store-side condition did not match at write time
// (a concurrent transition won the race) and the caller must report a
// conflict, never retry blindly.

type ITransitionWriter interface {
	// OpenSale flips the vehicle AVAILABLE -> PENDING and inserts the new
	// PENDING sale row (with its frozen snapshot) in one transaction.
	OpenSale(ctx context.Context, s entities.Sale) (applied bool, err error)

	// RecordAdvance flips the sale PENDING -> ADVANCE_PAID and stores the
	// advance amount plus payment metadata. The vehicle row is untouched.
	RecordAdvance(ctx context.Context, s entities.Sale) (applied bool, err error)

	// ApplyPaired executes a row of the transition table: Complete, Cancel
	// or Return.
	ApplyPaired(ctx context.Context, t PairedTransition) (applied bool, err error)
}
