package entities

import (
	"encoding/json"
	"time"
)

// SaleStatus is the negotiation state of a sale.
//
// PENDING and ADVANCE_PAID are "open" states; COMPLETED, CANCELLED and
// RETURNED are terminal.

type SaleStatus string

const (
	SaleStatusPending     SaleStatus = "PENDING"
	SaleStatusAdvancePaid SaleStatus = "ADVANCE_PAID"
	SaleStatusCompleted   SaleStatus = "COMPLETED"
	SaleStatusCancelled   SaleStatus = "CANCELLED"
	SaleStatusReturned    SaleStatus = "RETURNED"
)

// IsOpen reports whether the sale is still in progress one way or the other.
func (s SaleStatus) IsOpen() bool {
	return s == SaleStatusPending || s == SaleStatusAdvancePaid
}

// VehicleSnapshot is the point-in-time copy of vehicle attributes frozen onto
// a sale when it opens. It is written exactly once and never re-read from the
// vehicle, so sale history survives vehicle deletion and number reuse.
type VehicleSnapshot struct {
	Number          string  `json:"number"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	ManufactureYear int     `json:"manufacture_year"`
	ListedPrice     float64 `json:"listed_price"`
}

// SnapshotOf captures the preserved subset of vehicle fields.
func SnapshotOf(v Vehicle) VehicleSnapshot {
	return VehicleSnapshot{
		Number:          v.Number,
		Brand:           v.Brand,
		Model:           v.Model,
		ManufactureYear: v.ManufactureYear,
		ListedPrice:     v.Price,
	}
}

// Customer holds the counterpart details recorded on a sale.
type Customer struct {
	Name    string `json:"name"`
	NIC     string `json:"nic"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Sale is the sale-in-progress entity persisted by the back-office.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (vehicle_id-index): vehicle_id
//
// VehicleID is a weak reference kept for navigation only; all display and
// reporting reads come from Snapshot.
//
// UpdatedAt doubles as "status last changed at".

type Sale struct {
	ID        string     `json:"id"`
	VehicleID string     `json:"vehicle_id"`
	Status    SaleStatus `json:"status"`

	Snapshot VehicleSnapshot `json:"snapshot"`

	SellingPrice  float64  `json:"selling_price"`
	AdvanceAmount float64  `json:"advance_amount,omitempty"`
	Customer      Customer `json:"customer"`
	Reason        string   `json:"reason,omitempty"`

	// Deposit gateway traceability: raw provider response plus key fields.
	PaymentProviderID     string          `json:"payment_provider_id,omitempty"`
	PaymentProviderStatus string          `json:"payment_provider_status,omitempty"`
	PaymentPayloadRaw     json.RawMessage `json:"payment_payload_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
