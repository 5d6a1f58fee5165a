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
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestVehicleHandler_CreateVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		uc.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, usecase.ErrDuplicateVehicleNumber)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"number":"CBA-3214","brand":"Toyota","model":"Premio","manufacture_year":2018,"price":9500000}`))
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
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles", h.CreateVehicle)

		now := time.Now().UTC()
		uc.EXPECT().CreateVehicle(gomock.Any(), gomock.Any()).Return(entities.Vehicle{
			ID:     "veh-1",
			Number: "CBA-3214",
			Status: entities.VehicleStatusAvailable,
			Brand:  "Toyota", Model: "Premio", ManufactureYear: 2018, Price: 9500000,
			CreatedAt: now, UpdatedAt: now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles", bytes.NewBufferString(`{"number":"cba-3214","brand":"Toyota","model":"Premio","manufacture_year":2018,"price":9500000}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "veh-1" || body["status"] != "AVAILABLE" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestVehicleHandler_DeleteVehicle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("blocked by open sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.DELETE("/v1/vehicles/:id", h.DeleteVehicle)

		uc.EXPECT().DeleteVehicle(gomock.Any(), "veh-1").Return(usecase.ErrOpenSaleExists)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/veh-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.DELETE("/v1/vehicles/:id", h.DeleteVehicle)

		uc.EXPECT().DeleteVehicle(gomock.Any(), "veh-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/vehicles/veh-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_CheckNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("available", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/check-number", h.CheckNumber)

		uc.EXPECT().CheckNumberAvailable(gomock.Any(), "cba-3214").Return(true, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/check-number?number=cba-3214", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["number"] != "CBA-3214" || body["available"] != true {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.GET("/v1/vehicles/check-number", h.CheckNumber)

		uc.EXPECT().CheckNumberAvailable(gomock.Any(), "").Return(false, usecase.ErrInvalidVehicleNumber)

		req := httptest.NewRequest(http.MethodGet, "/v1/vehicles/check-number", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestVehicleHandler_RequestImageUpload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:id/images", h.RequestImageUpload)

		uc.EXPECT().RequestImageUpload(gomock.Any(), "veh-404", "gallery", "a.jpg", "image/jpeg").Return(interfaces.UploadSlot{}, usecase.ErrVehicleNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/veh-404/images", bytes.NewBufferString(`{"image_type":"gallery","file_name":"a.jpg","mime_type":"image/jpeg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIVehicleUseCase(ctrl)
		h := NewVehicleHandler(uc)

		r := gin.New()
		r.POST("/v1/vehicles/:id/images", h.RequestImageUpload)

		uc.EXPECT().RequestImageUpload(gomock.Any(), "veh-1", "gallery", "a.jpg", "image/jpeg").Return(interfaces.UploadSlot{
			UploadURL: "https://s3/presigned",
			PublicURL: "https://cdn/a.jpg",
			Key:       "vehicles/veh-1/gallery/a.jpg",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/vehicles/veh-1/images", bytes.NewBufferString(`{"image_type":"gallery","file_name":"a.jpg","mime_type":"image/jpeg"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["key"] != "vehicles/veh-1/gallery/a.jpg" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapVehicleError(t *testing.T) {
	if got := mapVehicleError(usecase.ErrInvalidVehicleID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVehicleError(usecase.ErrInvalidVehicleNumber); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapVehicleError(usecase.ErrVehicleNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapVehicleError(usecase.ErrDuplicateVehicleNumber); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapVehicleError(usecase.ErrOpenSaleExists); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapVehicleError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
