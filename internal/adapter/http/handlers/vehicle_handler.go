package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/dto/request"
	response "github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/dto/response"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/pkg"
)

var (
	errInvalidVehiclePayload = pkg.NewDomainErrorSimple("INVALID_VEHICLE_INPUT", "Invalid vehicle payload", http.StatusBadRequest)
)

// VehicleHandler handles HTTP requests for inventory vehicles.

type VehicleHandler struct {
	usecase usecase.IVehicleUseCase
}

func NewVehicleHandler(uc usecase.IVehicleUseCase) *VehicleHandler {
	return &VehicleHandler{usecase: uc}
}

// CreateVehicle registers a new vehicle in inventory. Re-entering a number
// previously held by a sold-and-deleted vehicle is allowed; a number held by
// any active vehicle conflicts.
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var payload request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	v, err := h.usecase.CreateVehicle(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromVehicle(v))
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	v, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicle(v))
}

func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	status := entities.VehicleStatus(c.Query("status"))
	limit := parseLimit(c.Query("limit"))

	vehicles, next, err := h.usecase.List(c.Request.Context(), status, limit, c.Query("cursor"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVehicleList(vehicles, next))
}

// DeleteVehicle removes a vehicle and its dependents. Blocked while an open
// sale references it; historical sales keep their snapshots.
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.DeleteVehicle(c.Request.Context(), id); err != nil {
		log.Printf("[vehicle][handler] delete failed vehicle_id=%s err=%v", id, err)
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckNumber is the advisory duplicate pre-flight used for fast UI
// feedback; creation re-validates at write time.
func (h *VehicleHandler) CheckNumber(c *gin.Context) {
	number := c.Query("number")

	available, err := h.usecase.CheckNumberAvailable(c.Request.Context(), number)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NumberCheckResponse{
		Number:    entities.NormalizeNumber(number),
		Available: available,
	})
}

// RequestImageUpload issues a presigned upload slot and records the object
// key against the vehicle.
func (h *VehicleHandler) RequestImageUpload(c *gin.Context) {
	var payload request.ImageUploadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVehiclePayload.HTTPStatus, errInvalidVehiclePayload.ToHTTPError())
		return
	}

	slot, err := h.usecase.RequestImageUpload(c.Request.Context(), c.Param("id"), payload.ImageType, payload.FileName, payload.MimeType)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromUploadSlot(slot))
}

func mapVehicleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVehicleID),
		errors.Is(err, usecase.ErrInvalidVehicleNumber),
		errors.Is(err, usecase.ErrInvalidVehiclePrice),
		errors.Is(err, usecase.ErrInvalidImageRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateVehicleNumber):
		return pkg.NewDomainErrorSimple("DUPLICATE_VEHICLE_NUMBER", "An active vehicle already holds this number", http.StatusConflict)
	case errors.Is(err, usecase.ErrOpenSaleExists):
		return pkg.NewDomainErrorSimple("OPEN_SALE_EXISTS", "An open sale exists for this vehicle", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
