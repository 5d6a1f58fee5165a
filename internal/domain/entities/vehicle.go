package entities

import (
	"strings"
	"time"
)

// VehicleStatus is the availability state of a vehicle in inventory.
//
// PENDING and SOLD are driven exclusively by the sale lifecycle; RESERVED and
// TAKEN_OUT are operator-driven side states outside the sale state machine.

type VehicleStatus string

const (
	VehicleStatusAvailable VehicleStatus = "AVAILABLE"
	VehicleStatusPending   VehicleStatus = "PENDING"
	VehicleStatusSold      VehicleStatus = "SOLD"
	VehicleStatusReserved  VehicleStatus = "RESERVED"
	VehicleStatusTakenOut  VehicleStatus = "TAKEN_OUT"
)

// IsActive reports whether the vehicle still occupies its number in live
// inventory. A SOLD vehicle releases its number for reuse.
func (s VehicleStatus) IsActive() bool {
	return s != VehicleStatusSold
}

// Vehicle is the inventory entity persisted by the back-office.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (number-index): number
//
// The number is additionally guarded at write time by the vehicle_numbers
// claim table, scoped to non-sold, non-deleted vehicles.

type Vehicle struct {
	ID     string        `json:"id"`
	Number string        `json:"number"`
	Status VehicleStatus `json:"status"`

	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	ManufactureYear int     `json:"manufacture_year"`
	Price           float64 `json:"price"`
	Mileage         int     `json:"mileage"`
	FuelType        string  `json:"fuel_type"`
	Transmission    string  `json:"transmission"`
	EngineCapacity  int     `json:"engine_capacity"`
	ExteriorColor   string  `json:"exterior_color"`
	Description     string  `json:"description"`

	ImageKeys []string `json:"image_keys,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NormalizeNumber canonicalizes a human-entered plate/reference number.
func NormalizeNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}
