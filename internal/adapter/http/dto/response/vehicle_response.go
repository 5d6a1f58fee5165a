package response

import (
	"time"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

type VehicleResponse struct {
	ID              string    `json:"id"`
	Number          string    `json:"number"`
	Status          string    `json:"status"`
	Brand           string    `json:"brand"`
	Model           string    `json:"model"`
	ManufactureYear int       `json:"manufacture_year"`
	Price           float64   `json:"price"`
	Mileage         int       `json:"mileage"`
	FuelType        string    `json:"fuel_type,omitempty"`
	Transmission    string    `json:"transmission,omitempty"`
	EngineCapacity  int       `json:"engine_capacity,omitempty"`
	ExteriorColor   string    `json:"exterior_color,omitempty"`
	Description     string    `json:"description,omitempty"`
	ImageKeys       []string  `json:"image_keys,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              v.ID,
		Number:          v.Number,
		Status:          string(v.Status),
		Brand:           v.Brand,
		Model:           v.Model,
		ManufactureYear: v.ManufactureYear,
		Price:           v.Price,
		Mileage:         v.Mileage,
		FuelType:        v.FuelType,
		Transmission:    v.Transmission,
		EngineCapacity:  v.EngineCapacity,
		ExteriorColor:   v.ExteriorColor,
		Description:     v.Description,
		ImageKeys:       v.ImageKeys,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type VehicleListResponse struct {
	Vehicles   []VehicleResponse `json:"vehicles"`
	NextCursor string            `json:"next_cursor,omitempty"`
}

func FromVehicleList(vehicles []entities.Vehicle, nextCursor string) VehicleListResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v))
	}
	return VehicleListResponse{Vehicles: out, NextCursor: nextCursor}
}

type UploadSlotResponse struct {
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
	Key       string `json:"key"`
}

func FromUploadSlot(s interfaces.UploadSlot) UploadSlotResponse {
	return UploadSlotResponse{UploadURL: s.UploadURL, PublicURL: s.PublicURL, Key: s.Key}
}

type NumberCheckResponse struct {
	Number    string `json:"number"`
	Available bool   `json:"available"`
}
