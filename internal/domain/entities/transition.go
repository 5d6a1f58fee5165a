package entities

import "fmt"

// SaleEvent is a lifecycle event applied to an open sale.
type SaleEvent string

const (
	EventRecordAdvance SaleEvent = "RECORD_ADVANCE"
	EventComplete      SaleEvent = "COMPLETE"
	EventCancel        SaleEvent = "CANCEL"
	EventReturn        SaleEvent = "RETURN"
)

// SaleTransition is one row of the lifecycle state table: the sale statuses
// the event may fire from, the sale status it lands on, and the paired
// vehicle status change (if any) that must be applied in the same atomic
// write.
type SaleTransition struct {
	From []SaleStatus
	To   SaleStatus

	TouchesVehicle bool
	VehicleFrom    VehicleStatus
	VehicleTo      VehicleStatus
}

// saleTransitions is the closed transition table. Opening a sale is not an
// event on an existing sale and is handled separately (AVAILABLE -> PENDING
// plus a new PENDING sale row).
var saleTransitions = map[SaleEvent]SaleTransition{
	EventRecordAdvance: {
		From: []SaleStatus{SaleStatusPending},
		To:   SaleStatusAdvancePaid,
	},
	EventComplete: {
		From:           []SaleStatus{SaleStatusPending, SaleStatusAdvancePaid},
		To:             SaleStatusCompleted,
		TouchesVehicle: true,
		VehicleFrom:    VehicleStatusPending,
		VehicleTo:      VehicleStatusSold,
	},
	EventCancel: {
		From:           []SaleStatus{SaleStatusPending, SaleStatusAdvancePaid},
		To:             SaleStatusCancelled,
		TouchesVehicle: true,
		VehicleFrom:    VehicleStatusPending,
		VehicleTo:      VehicleStatusAvailable,
	},
	EventReturn: {
		From:           []SaleStatus{SaleStatusPending, SaleStatusAdvancePaid},
		To:             SaleStatusReturned,
		TouchesVehicle: true,
		VehicleFrom:    VehicleStatusPending,
		VehicleTo:      VehicleStatusAvailable,
	},
}

// TransitionFor resolves the state-table row for an event.
func TransitionFor(event SaleEvent) (SaleTransition, error) {
	t, ok := saleTransitions[event]
	if !ok {
		return SaleTransition{}, fmt.Errorf("unknown sale event: %s", event)
	}
	return t, nil
}

// AllowsFrom reports whether the transition may fire from the given status.
func (t SaleTransition) AllowsFrom(s SaleStatus) bool {
	for _, f := range t.From {
		if f == s {
			return true
		}
	}
	return false
}
