package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/adapter/http/handlers/mocks"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func pendingSale() entities.Sale {
	now := time.Now().UTC()
	return entities.Sale{
		ID:        "sale-1",
		VehicleID: "veh-1",
		Status:    entities.SaleStatusPending,
		Snapshot: entities.VehicleSnapshot{
			Number: "CBA-3214", Brand: "Toyota", Model: "Premio", ManufactureYear: 2018, ListedPrice: 9500000,
		},
		SellingPrice: 9200000,
		Customer:     entities.Customer{Name: "N. Perera"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestSaleHandler_OpenSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/sales", h.OpenSale)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("vehicle not available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/sales", h.OpenSale)

		uc.EXPECT().OpenSale(gomock.Any(), gomock.Any()).Return(entities.Sale{}, usecase.ErrVehicleNotAvailable)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(`{"vehicle_id":"veh-1","selling_price":9200000,"customer_name":"N. Perera"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.POST("/v1/sales", h.OpenSale)

		uc.EXPECT().OpenSale(gomock.Any(), gomock.Any()).Return(pendingSale(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sales", bytes.NewBufferString(`{"vehicle_id":"veh-1","selling_price":9200000,"customer_name":"N. Perera"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "sale-1" || body["status"] != "PENDING" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		snap, _ := body["snapshot"].(map[string]any)
		if snap["brand"] != "Toyota" {
			t.Fatalf("expected snapshot in response, got %s", w.Body.String())
		}
	})
}

func TestSaleHandler_GetSale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("annotates open sales with the deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.GET("/v1/sales/:id", h.GetSale)

		s := pendingSale()
		uc.EXPECT().GetByID(gomock.Any(), "sale-1").Return(s, nil)
		uc.EXPECT().DeadlineFor(s).Return(usecase.DeadlineStatus{Overdue: true, Magnitude: time.Hour}, true)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/sale-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		deadline, _ := body["deadline"].(map[string]any)
		if deadline["overdue"] != true || deadline["magnitude"] != "1h0m0s" {
			t.Fatalf("unexpected deadline annotation: %s", w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.GET("/v1/sales/:id", h.GetSale)

		uc.EXPECT().GetByID(gomock.Any(), "sale-404").Return(entities.Sale{}, usecase.ErrSaleNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sales/sale-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSaleHandler_RecordAdvance(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("deposit charge failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/sales/:id/advance", h.RecordAdvance)

		uc.EXPECT().RecordAdvance(gomock.Any(), "sale-1", 500000.0, gomock.Any()).Return(entities.Sale{}, errors.Join(usecase.ErrDepositCharge, errors.New("card declined")))

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/sale-1/advance", bytes.NewBufferString(`{"amount":500000,"payment_payload":{"token":"tok-1"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/sales/:id/advance", h.RecordAdvance)

		s := pendingSale()
		s.Status = entities.SaleStatusAdvancePaid
		s.AdvanceAmount = 500000
		uc.EXPECT().RecordAdvance(gomock.Any(), "sale-1", 500000.0, gomock.Any()).Return(s, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/sale-1/advance", bytes.NewBufferString(`{"amount":500000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "ADVANCE_PAID" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSaleHandler_Transitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("complete conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/sales/:id/complete", h.CompleteSale)

		uc.EXPECT().CompleteSale(gomock.Any(), "sale-1").Return(entities.Sale{}, usecase.ErrSaleStateConflict)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/sale-1/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("cancel with empty body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/sales/:id/cancel", h.CancelSale)

		s := pendingSale()
		s.Status = entities.SaleStatusCancelled
		uc.EXPECT().CancelSale(gomock.Any(), "sale-1", "").Return(s, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/sale-1/cancel", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("return with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
		h := NewSaleHandler(uc)

		r := gin.New()
		r.PATCH("/v1/sales/:id/return", h.ReturnSale)

		s := pendingSale()
		s.Status = entities.SaleStatusReturned
		s.Reason = "damaged on delivery"
		uc.EXPECT().ReturnSale(gomock.Any(), "sale-1", "damaged on delivery").Return(s, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sales/sale-1/return", bytes.NewBufferString(`{"reason":"damaged on delivery"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "RETURNED" || body["reason"] != "damaged on delivery" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSaleHandler_GetDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISaleLifecycleUseCase(ctrl)
	h := NewSaleHandler(uc)

	r := gin.New()
	r.GET("/v1/sales/:id/deadline", h.GetDeadline)

	uc.EXPECT().DeadlineStatus(gomock.Any(), "sale-1").Return(usecase.DeadlineStatus{Overdue: false, Magnitude: 4 * 24 * time.Hour}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/sale-1/deadline", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["overdue"] != false || body["magnitude"] != "96h0m0s" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapSaleError(t *testing.T) {
	if got := mapSaleError(usecase.ErrInvalidSaleID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSaleError(usecase.ErrInvalidSaleInput); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSaleError(usecase.ErrSaleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSaleError(usecase.ErrVehicleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSaleError(usecase.ErrVehicleNotAvailable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSaleError(usecase.ErrSaleStateConflict); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapSaleError(usecase.ErrDepositCharge); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapSaleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
