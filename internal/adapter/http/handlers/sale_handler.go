package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	request "github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/dto/request"
	response "github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/dto/response"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/pkg"
)

var (
	errInvalidSalePayload = pkg.NewDomainErrorSimple("INVALID_SALE_INPUT", "Invalid sale payload", http.StatusBadRequest)
)

// SaleHandler handles HTTP requests for the sale lifecycle. Every status
// change goes through the lifecycle use case; the handler never writes the
// vehicle and sale rows itself.

type SaleHandler struct {
	usecase usecase.ISaleLifecycleUseCase
}

func NewSaleHandler(uc usecase.ISaleLifecycleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// OpenSale opens a sale on an AVAILABLE vehicle, freezing the vehicle
// snapshot onto the new sale row.
func (h *SaleHandler) OpenSale(c *gin.Context) {
	var payload request.OpenSaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.OpenSale(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[sale][handler] open failed vehicle_id=%s err=%v", payload.VehicleID, err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSale(s))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.FromSale(s)
	if d, ok := h.usecase.DeadlineFor(s); ok {
		dr := response.FromDeadline(d)
		resp.Deadline = &dr
	}
	c.JSON(http.StatusOK, resp)
}

// ListSales lists sales with optional status filter; open sales are
// annotated with their completion-window state for triage views.
func (h *SaleHandler) ListSales(c *gin.Context) {
	status := entities.SaleStatus(c.Query("status"))
	limit := parseLimit(c.Query("limit"))

	sales, next, err := h.usecase.List(c.Request.Context(), status, limit, c.Query("cursor"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.SaleListResponse{Sales: make([]response.SaleResponse, 0, len(sales)), NextCursor: next}
	for _, s := range sales {
		resp := response.FromSale(s)
		if d, ok := h.usecase.DeadlineFor(s); ok {
			dr := response.FromDeadline(d)
			resp.Deadline = &dr
		}
		out.Sales = append(out.Sales, resp)
	}
	c.JSON(http.StatusOK, out)
}

// RecordAdvance moves the sale to ADVANCE_PAID, optionally charging the
// deposit through the payment gateway.
func (h *SaleHandler) RecordAdvance(c *gin.Context) {
	var payload request.RecordAdvanceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
		return
	}

	s, err := h.usecase.RecordAdvance(c.Request.Context(), c.Param("id"), payload.Amount, payload.PaymentPayload)
	if err != nil {
		log.Printf("[sale][handler] advance failed sale_id=%s err=%v", c.Param("id"), err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSale(s))
}

func (h *SaleHandler) CompleteSale(c *gin.Context) {
	s, err := h.usecase.CompleteSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("[sale][handler] complete failed sale_id=%s err=%v", c.Param("id"), err)
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSale(s))
}

func (h *SaleHandler) CancelSale(c *gin.Context) {
	h.closeSale(c, h.usecase.CancelSale)
}

func (h *SaleHandler) ReturnSale(c *gin.Context) {
	h.closeSale(c, h.usecase.ReturnSale)
}

func (h *SaleHandler) closeSale(c *gin.Context, close func(ctx context.Context, saleID, reason string) (entities.Sale, error)) {
	// Reason is optional; an empty body is a valid request.
	var payload request.SaleReasonRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidSalePayload.HTTPStatus, errInvalidSalePayload.ToHTTPError())
			return
		}
	}

	s, err := close(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSale(s))
}

// GetDeadline returns the display-only overdue/remaining annotation.
func (h *SaleHandler) GetDeadline(c *gin.Context) {
	d, err := h.usecase.DeadlineStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSaleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDeadline(d))
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidSaleInput),
		errors.Is(err, usecase.ErrInvalidVehicleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Vehicle not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVehicleNotAvailable):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_AVAILABLE", "Vehicle not available", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleStateConflict):
		return pkg.NewDomainErrorSimple("SALE_STATE_CONFLICT", "Sale is not in a state that allows this transition", http.StatusConflict)
	case errors.Is(err, usecase.ErrDepositCharge):
		return pkg.NewDomainErrorSimple("DEPOSIT_CHARGE_FAILED", "Advance deposit charge failed", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
