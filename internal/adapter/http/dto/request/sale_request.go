package request

import (
	"encoding/json"
	"strings"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"
)

// OpenSaleRequest is the payload accepted by POST /v1/sales.
type OpenSaleRequest struct {
	VehicleID    string  `json:"vehicle_id" binding:"required"`
	SellingPrice float64 `json:"selling_price" binding:"required"`

	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerNIC     string `json:"customer_nic"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
}

func (r OpenSaleRequest) ToInput() usecase.OpenSaleInput {
	return usecase.OpenSaleInput{
		VehicleID:    strings.TrimSpace(r.VehicleID),
		SellingPrice: r.SellingPrice,
		Customer: entities.Customer{
			Name:    r.CustomerName,
			NIC:     r.CustomerNIC,
			Phone:   r.CustomerPhone,
			Address: r.CustomerAddress,
		},
	}
}

// RecordAdvanceRequest is the payload for PATCH /v1/sales/:id/advance.
// PaymentPayload, when present, is forwarded verbatim to the deposit
// gateway.
type RecordAdvanceRequest struct {
	Amount         float64         `json:"amount" binding:"required"`
	PaymentPayload json.RawMessage `json:"payment_payload,omitempty"`
}

// SaleReasonRequest carries the audit reason for cancel/return.
type SaleReasonRequest struct {
	Reason string `json:"reason"`
}
