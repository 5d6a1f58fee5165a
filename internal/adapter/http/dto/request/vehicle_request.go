package request

import (
	"strings"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"
)

// CreateVehicleRequest is the payload accepted by POST /v1/vehicles.
type CreateVehicleRequest struct {
	Number          string  `json:"number" binding:"required"`
	Brand           string  `json:"brand" binding:"required"`
	Model           string  `json:"model" binding:"required"`
	ManufactureYear int     `json:"manufacture_year" binding:"required"`
	Price           float64 `json:"price" binding:"required"`
	Mileage         int     `json:"mileage"`
	FuelType        string  `json:"fuel_type"`
	Transmission    string  `json:"transmission"`
	EngineCapacity  int     `json:"engine_capacity"`
	ExteriorColor   string  `json:"exterior_color"`
	Description     string  `json:"description"`
}

func (r CreateVehicleRequest) ToInput() usecase.CreateVehicleInput {
	return usecase.CreateVehicleInput{
		Number:          strings.TrimSpace(r.Number),
		Brand:           r.Brand,
		Model:           r.Model,
		ManufactureYear: r.ManufactureYear,
		Price:           r.Price,
		Mileage:         r.Mileage,
		FuelType:        r.FuelType,
		Transmission:    r.Transmission,
		EngineCapacity:  r.EngineCapacity,
		ExteriorColor:   r.ExteriorColor,
		Description:     r.Description,
	}
}

// ImageUploadRequest asks for a presigned upload slot for a vehicle image.
type ImageUploadRequest struct {
	ImageType string `json:"image_type"`
	FileName  string `json:"file_name" binding:"required"`
	MimeType  string `json:"mime_type" binding:"required"`
}
