package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/pkg/clock"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
	mock_interfaces "github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type saleUseCaseFixture struct {
	saleRepo    *mock_interfaces.MockISaleRepository
	vehicleRepo *mock_interfaces.MockIVehicleRepository
	writer      *mock_interfaces.MockITransitionWriter
	gateway     *mock_interfaces.MockIPaymentGateway
	notifier    *mock_interfaces.MockINotifier
	clk         *clock.MockClock
	uc          *SaleLifecycleUseCase
}

func newSaleFixture(ctrl *gomock.Controller) *saleUseCaseFixture {
	f := &saleUseCaseFixture{
		saleRepo:    mock_interfaces.NewMockISaleRepository(ctrl),
		vehicleRepo: mock_interfaces.NewMockIVehicleRepository(ctrl),
		writer:      mock_interfaces.NewMockITransitionWriter(ctrl),
		gateway:     mock_interfaces.NewMockIPaymentGateway(ctrl),
		notifier:    mock_interfaces.NewMockINotifier(ctrl),
		clk:         clock.NewMockClock(testNow),
	}
	f.uc = NewSaleLifecycleUseCase(f.saleRepo, f.vehicleRepo, f.writer, f.gateway, f.notifier, f.clk)
	return f
}

func availableVehicle() entities.Vehicle {
	return entities.Vehicle{
		ID:              "veh-1",
		Number:          "CBA-3214",
		Status:          entities.VehicleStatusAvailable,
		Brand:           "Toyota",
		Model:           "Premio",
		ManufactureYear: 2018,
		Price:           9_500_000,
	}
}

func openInput() OpenSaleInput {
	return OpenSaleInput{
		VehicleID:    "veh-1",
		SellingPrice: 9_200_000,
		Customer:     entities.Customer{Name: "N. Perera", NIC: "901234567V", Phone: "0771234567"},
	}
}

func TestSaleLifecycleUseCase_OpenSale(t *testing.T) {
	t.Run("invalid vehicle id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		in := openInput()
		in.VehicleID = "   "
		_, err := f.uc.OpenSale(context.Background(), in)
		if !errors.Is(err, ErrInvalidVehicleID) {
			t.Fatalf("expected ErrInvalidVehicleID, got %v", err)
		}
	})

	t.Run("invalid selling price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		in := openInput()
		in.SellingPrice = 0
		_, err := f.uc.OpenSale(context.Background(), in)
		if !errors.Is(err, ErrInvalidSaleInput) {
			t.Fatalf("expected ErrInvalidSaleInput, got %v", err)
		}
	})

	t.Run("missing customer name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		in := openInput()
		in.Customer.Name = " "
		_, err := f.uc.OpenSale(context.Background(), in)
		if !errors.Is(err, ErrInvalidSaleInput) {
			t.Fatalf("expected ErrInvalidSaleInput, got %v", err)
		}
	})

	t.Run("vehicle not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(entities.Vehicle{}, nil)

		_, err := f.uc.OpenSale(context.Background(), openInput())
		if !errors.Is(err, ErrVehicleNotFound) {
			t.Fatalf("expected ErrVehicleNotFound, got %v", err)
		}
	})

	t.Run("vehicle already pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		v := availableVehicle()
		v.Status = entities.VehicleStatusPending
		f.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(v, nil)

		_, err := f.uc.OpenSale(context.Background(), openInput())
		if !errors.Is(err, ErrVehicleNotAvailable) {
			t.Fatalf("expected ErrVehicleNotAvailable, got %v", err)
		}
	})

	t.Run("concurrent open loses the race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(availableVehicle(), nil)
		f.writer.EXPECT().OpenSale(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.uc.OpenSale(context.Background(), openInput())
		if !errors.Is(err, ErrVehicleNotAvailable) {
			t.Fatalf("expected ErrVehicleNotAvailable, got %v", err)
		}
	})

	t.Run("success freezes the snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.vehicleRepo.EXPECT().GetByID(gomock.Any(), "veh-1").Return(availableVehicle(), nil)
		f.writer.EXPECT().OpenSale(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (bool, error) {
				if s.Status != entities.SaleStatusPending {
					t.Fatalf("expected PENDING, got %s", s.Status)
				}
				if s.Snapshot.Brand != "Toyota" || s.Snapshot.Number != "CBA-3214" || s.Snapshot.ListedPrice != 9_500_000 {
					t.Fatalf("unexpected snapshot: %+v", s.Snapshot)
				}
				return true, nil
			})
		f.notifier.EXPECT().PublishSaleOpened(gomock.Any(), gomock.Any()).Return(errors.New("sns down"))

		s, err := f.uc.OpenSale(context.Background(), openInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.VehicleID != "veh-1" || s.SellingPrice != 9_200_000 {
			t.Fatalf("unexpected sale: %+v", s)
		}
		if !s.CreatedAt.Equal(testNow) {
			t.Fatalf("expected clock time, got %v", s.CreatedAt)
		}
	})
}

func TestSaleLifecycleUseCase_RecordAdvance(t *testing.T) {
	pendingSale := func() entities.Sale {
		return entities.Sale{
			ID:           "sale-1",
			VehicleID:    "veh-1",
			Status:       entities.SaleStatusPending,
			Snapshot:     entities.VehicleSnapshot{Number: "CBA-3214"},
			SellingPrice: 9_200_000,
			CreatedAt:    testNow,
			UpdatedAt:    testNow,
		}
	}

	t.Run("sale not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-404").Return(entities.Sale{}, nil)

		_, err := f.uc.RecordAdvance(context.Background(), "sale-404", 100, nil)
		if !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})

	t.Run("already advance paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		s := pendingSale()
		s.Status = entities.SaleStatusAdvancePaid
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(s, nil)

		_, err := f.uc.RecordAdvance(context.Background(), "sale-1", 100, nil)
		if !errors.Is(err, ErrSaleStateConflict) {
			t.Fatalf("expected ErrSaleStateConflict, got %v", err)
		}
	})

	t.Run("amount above selling price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(pendingSale(), nil)

		_, err := f.uc.RecordAdvance(context.Background(), "sale-1", 10_000_000, nil)
		if !errors.Is(err, ErrInvalidSaleInput) {
			t.Fatalf("expected ErrInvalidSaleInput, got %v", err)
		}
	})

	t.Run("declined deposit charge leaves the sale untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		payload := json.RawMessage(`{"token":"tok-1"}`)
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(pendingSale(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), payload).Return("", "", nil, errors.New("card declined"))

		_, err := f.uc.RecordAdvance(context.Background(), "sale-1", 500_000, payload)
		if !errors.Is(err, ErrDepositCharge) {
			t.Fatalf("expected ErrDepositCharge, got %v", err)
		}
	})

	t.Run("lost race on the conditional update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(pendingSale(), nil)
		f.writer.EXPECT().RecordAdvance(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.uc.RecordAdvance(context.Background(), "sale-1", 500_000, nil)
		if !errors.Is(err, ErrSaleStateConflict) {
			t.Fatalf("expected ErrSaleStateConflict, got %v", err)
		}
	})

	t.Run("success stores amount and provider metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		payload := json.RawMessage(`{"token":"tok-1"}`)
		resp := json.RawMessage(`{"id":"pay-1","status":"approved"}`)
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(pendingSale(), nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), payload).Return("pay-1", "approved", resp, nil)
		f.writer.EXPECT().RecordAdvance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Sale) (bool, error) {
				if s.Status != entities.SaleStatusAdvancePaid {
					t.Fatalf("expected ADVANCE_PAID, got %s", s.Status)
				}
				if s.AdvanceAmount != 500_000 {
					t.Fatalf("expected amount 500000, got %v", s.AdvanceAmount)
				}
				if s.PaymentProviderID != "pay-1" || s.PaymentProviderStatus != "approved" {
					t.Fatalf("expected provider metadata, got %+v", s)
				}
				return true, nil
			})

		s, err := f.uc.RecordAdvance(context.Background(), "sale-1", 500_000, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SaleStatusAdvancePaid {
			t.Fatalf("expected ADVANCE_PAID, got %s", s.Status)
		}
	})
}

func TestSaleLifecycleUseCase_CompleteSale(t *testing.T) {
	advancePaidSale := func() entities.Sale {
		return entities.Sale{
			ID:        "sale-1",
			VehicleID: "veh-1",
			Status:    entities.SaleStatusAdvancePaid,
			Snapshot:  entities.VehicleSnapshot{Number: "CBA-3214", Brand: "Toyota"},
			CreatedAt: testNow,
		}
	}

	t.Run("already completed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		s := advancePaidSale()
		s.Status = entities.SaleStatusCompleted
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(s, nil)

		_, err := f.uc.CompleteSale(context.Background(), "sale-1")
		if !errors.Is(err, ErrSaleStateConflict) {
			t.Fatalf("expected ErrSaleStateConflict, got %v", err)
		}
	})

	t.Run("lost race surfaces as conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(advancePaidSale(), nil)
		f.writer.EXPECT().ApplyPaired(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.uc.CompleteSale(context.Background(), "sale-1")
		if !errors.Is(err, ErrSaleStateConflict) {
			t.Fatalf("expected ErrSaleStateConflict, got %v", err)
		}
	})

	t.Run("success sells the vehicle and releases the number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(advancePaidSale(), nil)
		f.writer.EXPECT().ApplyPaired(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr interfaces.PairedTransition) (bool, error) {
				if tr.SaleFrom != entities.SaleStatusAdvancePaid || tr.SaleTo != entities.SaleStatusCompleted {
					t.Fatalf("unexpected sale transition: %+v", tr)
				}
				if tr.VehicleFrom != entities.VehicleStatusPending || tr.VehicleTo != entities.VehicleStatusSold {
					t.Fatalf("unexpected vehicle transition: %+v", tr)
				}
				if tr.ReleaseNumber != "CBA-3214" {
					t.Fatalf("expected number release, got %q", tr.ReleaseNumber)
				}
				return true, nil
			})

		s, err := f.uc.CompleteSale(context.Background(), "sale-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SaleStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", s.Status)
		}
		if s.Snapshot.Brand != "Toyota" {
			t.Fatalf("snapshot must survive completion: %+v", s.Snapshot)
		}
	})
}

func TestSaleLifecycleUseCase_CancelAndReturn(t *testing.T) {
	pendingSale := func() entities.Sale {
		return entities.Sale{
			ID:        "sale-1",
			VehicleID: "veh-1",
			Status:    entities.SaleStatusPending,
			Snapshot:  entities.VehicleSnapshot{Number: "CBA-3214"},
			CreatedAt: testNow,
		}
	}

	t.Run("cancel frees the vehicle without releasing the number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(pendingSale(), nil)
		f.writer.EXPECT().ApplyPaired(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr interfaces.PairedTransition) (bool, error) {
				if tr.SaleTo != entities.SaleStatusCancelled || tr.VehicleTo != entities.VehicleStatusAvailable {
					t.Fatalf("unexpected transition: %+v", tr)
				}
				if tr.ReleaseNumber != "" {
					t.Fatalf("cancel must keep the claim, got release of %q", tr.ReleaseNumber)
				}
				if tr.Reason != "buyer withdrew" {
					t.Fatalf("expected reason, got %q", tr.Reason)
				}
				return true, nil
			})

		s, err := f.uc.CancelSale(context.Background(), "sale-1", "  buyer withdrew ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Status != entities.SaleStatusCancelled || s.Reason != "buyer withdrew" {
			t.Fatalf("unexpected sale: %+v", s)
		}
	})

	t.Run("return from advance paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		s := pendingSale()
		s.Status = entities.SaleStatusAdvancePaid
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(s, nil)
		f.writer.EXPECT().ApplyPaired(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr interfaces.PairedTransition) (bool, error) {
				if tr.SaleFrom != entities.SaleStatusAdvancePaid || tr.SaleTo != entities.SaleStatusReturned {
					t.Fatalf("unexpected transition: %+v", tr)
				}
				if tr.VehicleTo != entities.VehicleStatusAvailable {
					t.Fatalf("expected vehicle back to AVAILABLE, got %s", tr.VehicleTo)
				}
				return true, nil
			})

		got, err := f.uc.ReturnSale(context.Background(), "sale-1", "damaged on delivery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.SaleStatusReturned {
			t.Fatalf("expected RETURNED, got %s", got.Status)
		}
	})

	t.Run("return after completion is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		s := pendingSale()
		s.Status = entities.SaleStatusCompleted
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(s, nil)

		_, err := f.uc.ReturnSale(context.Background(), "sale-1", "x")
		if !errors.Is(err, ErrSaleStateConflict) {
			t.Fatalf("expected ErrSaleStateConflict, got %v", err)
		}
	})
}

func TestSaleLifecycleUseCase_DeadlineStatus(t *testing.T) {
	t.Run("terminal sale has no deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(entities.Sale{ID: "sale-1", Status: entities.SaleStatusCompleted, CreatedAt: testNow}, nil)

		d, err := f.uc.DeadlineStatus(context.Background(), "sale-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Overdue || d.Magnitude != 0 {
			t.Fatalf("expected zero status, got %+v", d)
		}
	})

	t.Run("one hour past the grace period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.clk.Set(testNow.Add(5*24*time.Hour + time.Hour))
		f.saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(entities.Sale{ID: "sale-1", Status: entities.SaleStatusAdvancePaid, CreatedAt: testNow}, nil)

		d, err := f.uc.DeadlineStatus(context.Background(), "sale-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.Overdue || d.Magnitude != time.Hour {
			t.Fatalf("expected 1h overdue, got %+v", d)
		}
	})

	t.Run("deadline for a loaded open sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newSaleFixture(ctrl)

		f.clk.Set(testNow.Add(24 * time.Hour))
		d, ok := f.uc.DeadlineFor(entities.Sale{Status: entities.SaleStatusPending, CreatedAt: testNow})
		if !ok {
			t.Fatalf("expected a deadline for an open sale")
		}
		if d.Overdue || d.Magnitude != 4*24*time.Hour {
			t.Fatalf("expected 4d remaining, got %+v", d)
		}

		if _, ok := f.uc.DeadlineFor(entities.Sale{Status: entities.SaleStatusCancelled, CreatedAt: testNow}); ok {
			t.Fatalf("expected no deadline for a terminal sale")
		}
	})
}
