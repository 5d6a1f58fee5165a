package response

import (
	"time"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"
)

type SnapshotResponse struct {
	Number          string  `json:"number"`
	Brand           string  `json:"brand"`
	Model           string  `json:"model"`
	ManufactureYear int     `json:"manufacture_year"`
	ListedPrice     float64 `json:"listed_price"`
}

type SaleResponse struct {
	ID        string           `json:"id"`
	VehicleID string           `json:"vehicle_id"`
	Status    string           `json:"status"`
	Snapshot  SnapshotResponse `json:"snapshot"`

	SellingPrice  float64 `json:"selling_price"`
	AdvanceAmount float64 `json:"advance_amount,omitempty"`

	CustomerName    string `json:"customer_name"`
	CustomerNIC     string `json:"customer_nic,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	CustomerAddress string `json:"customer_address,omitempty"`

	Reason string `json:"reason,omitempty"`

	PaymentProviderID     string `json:"payment_provider_id,omitempty"`
	PaymentProviderStatus string `json:"payment_provider_status,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Deadline *DeadlineResponse `json:"deadline,omitempty"`
}

// FromSale renders a sale from its frozen snapshot; vehicle fields are never
// re-read.
func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		VehicleID: s.VehicleID,
		Status:    string(s.Status),
		Snapshot: SnapshotResponse{
			Number:          s.Snapshot.Number,
			Brand:           s.Snapshot.Brand,
			Model:           s.Snapshot.Model,
			ManufactureYear: s.Snapshot.ManufactureYear,
			ListedPrice:     s.Snapshot.ListedPrice,
		},
		SellingPrice:          s.SellingPrice,
		AdvanceAmount:         s.AdvanceAmount,
		CustomerName:          s.Customer.Name,
		CustomerNIC:           s.Customer.NIC,
		CustomerPhone:         s.Customer.Phone,
		CustomerAddress:       s.Customer.Address,
		Reason:                s.Reason,
		PaymentProviderID:     s.PaymentProviderID,
		PaymentProviderStatus: s.PaymentProviderStatus,
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

type DeadlineResponse struct {
	Overdue   bool   `json:"overdue"`
	Magnitude string `json:"magnitude"`
}

func FromDeadline(d usecase.DeadlineStatus) DeadlineResponse {
	return DeadlineResponse{Overdue: d.Overdue, Magnitude: d.Magnitude.String()}
}

type SaleListResponse struct {
	Sales      []SaleResponse `json:"sales"`
	NextCursor string         `json:"next_cursor,omitempty"`
}
