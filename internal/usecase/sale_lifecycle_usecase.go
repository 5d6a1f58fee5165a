package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/pkg/clock"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

var (
	ErrSaleNotFound        = errors.New("sale not found")
	ErrInvalidSaleID       = errors.New("invalid sale id")
	ErrInvalidSaleInput    = errors.New("invalid sale input")
	ErrVehicleNotAvailable = errors.New("vehicle not available")
	ErrSaleStateConflict   = errors.New("sale state conflict")
	ErrDepositCharge       = errors.New("advance deposit charge failed")
)

// ISaleLifecycleUseCase is the single entry point for every sale lifecycle
// event. Handlers never issue the paired Vehicle/Sale writes themselves;
// each transition here maps to one conditional transaction in the writer, so
// a lost race surfaces as a conflict instead of a double booking.

type ISaleLifecycleUseCase interface {
	OpenSale(ctx context.Context, in OpenSaleInput) (entities.Sale, error)
	GetByID(ctx context.Context, id string) (entities.Sale, error)
	List(ctx context.Context, status entities.SaleStatus, limit int, cursor string) ([]entities.Sale, string, error)
	RecordAdvance(ctx context.Context, saleID string, amount float64, paymentPayload json.RawMessage) (entities.Sale, error)
	CompleteSale(ctx context.Context, saleID string) (entities.Sale, error)
	CancelSale(ctx context.Context, saleID, reason string) (entities.Sale, error)
	ReturnSale(ctx context.Context, saleID, reason string) (entities.Sale, error)
	DeadlineStatus(ctx context.Context, saleID string) (DeadlineStatus, error)
	DeadlineFor(s entities.Sale) (DeadlineStatus, bool)
}

type OpenSaleInput struct {
	VehicleID    string
	SellingPrice float64
	Customer     entities.Customer
}

type SaleLifecycleUseCase struct {
	saleRepo    interfaces.ISaleRepository
	vehicleRepo interfaces.IVehicleRepository
	writer      interfaces.ITransitionWriter
	gateway     interfaces.IPaymentGateway
	notifier    interfaces.INotifier
	clk         clock.Clock
}

var _ ISaleLifecycleUseCase = (*SaleLifecycleUseCase)(nil)

func NewSaleLifecycleUseCase(
	saleRepo interfaces.ISaleRepository,
	vehicleRepo interfaces.IVehicleRepository,
	writer interfaces.ITransitionWriter,
	gateway interfaces.IPaymentGateway,
	notifier interfaces.INotifier,
	clk clock.Clock,
) *SaleLifecycleUseCase {
	return &SaleLifecycleUseCase{
		saleRepo:    saleRepo,
		vehicleRepo: vehicleRepo,
		writer:      writer,
		gateway:     gateway,
		notifier:    notifier,
		clk:         clk,
	}
}

// OpenSale creates the sale with its frozen vehicle snapshot and flips the
// vehicle to PENDING in a single transaction. Retrying after success fails
// the AVAILABLE condition and reports ErrVehicleNotAvailable rather than
// opening a second sale.
func (u *SaleLifecycleUseCase) OpenSale(ctx context.Context, in OpenSaleInput) (entities.Sale, error) {
	vehicleID := strings.TrimSpace(in.VehicleID)
	if vehicleID == "" {
		return entities.Sale{}, ErrInvalidVehicleID
	}
	if in.SellingPrice <= 0 {
		return entities.Sale{}, ErrInvalidSaleInput
	}
	if strings.TrimSpace(in.Customer.Name) == "" {
		return entities.Sale{}, ErrInvalidSaleInput
	}

	v, err := u.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if v.ID == "" {
		return entities.Sale{}, ErrVehicleNotFound
	}
	if v.Status != entities.VehicleStatusAvailable {
		return entities.Sale{}, ErrVehicleNotAvailable
	}

	now := u.clk.Now()
	s := entities.Sale{
		ID:           uuid.NewString(),
		VehicleID:    v.ID,
		Status:       entities.SaleStatusPending,
		Snapshot:     entities.SnapshotOf(v),
		SellingPrice: in.SellingPrice,
		Customer: entities.Customer{
			Name:    strings.TrimSpace(in.Customer.Name),
			NIC:     strings.TrimSpace(in.Customer.NIC),
			Phone:   strings.TrimSpace(in.Customer.Phone),
			Address: strings.TrimSpace(in.Customer.Address),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	applied, err := u.writer.OpenSale(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	if !applied {
		// A concurrent open won the AVAILABLE -> PENDING race.
		return entities.Sale{}, ErrVehicleNotAvailable
	}

	if u.notifier != nil {
		if err := u.notifier.PublishSaleOpened(ctx, s); err != nil {
			log.Printf("[sale][usecase] sale-opened notification failed sale_id=%s err=%v", s.ID, err)
		}
	}

	log.Printf("[sale][usecase] open success sale_id=%s vehicle_id=%s", s.ID, v.ID)
	return s, nil
}

func (u *SaleLifecycleUseCase) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Sale{}, ErrInvalidSaleID
	}

	s, err := u.saleRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.ID == "" {
		return entities.Sale{}, ErrSaleNotFound
	}
	return s, nil
}

func (u *SaleLifecycleUseCase) List(ctx context.Context, status entities.SaleStatus, limit int, cursor string) ([]entities.Sale, string, error) {
	return u.saleRepo.List(ctx, status, limit, cursor)
}

// RecordAdvance moves the sale PENDING -> ADVANCE_PAID. When a payment
// gateway is configured the deposit is charged first; a declined charge
// leaves the sale untouched.
func (u *SaleLifecycleUseCase) RecordAdvance(ctx context.Context, saleID string, amount float64, paymentPayload json.RawMessage) (entities.Sale, error) {
	s, err := u.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}
	if s.Status != entities.SaleStatusPending {
		return entities.Sale{}, ErrSaleStateConflict
	}
	if amount <= 0 || amount > s.SellingPrice {
		return entities.Sale{}, ErrInvalidSaleInput
	}

	if u.gateway != nil && len(paymentPayload) > 0 {
		providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, paymentPayload)
		if err != nil {
			log.Printf("[sale][usecase] deposit charge failed sale_id=%s err=%v", s.ID, err)
			return entities.Sale{}, errors.Join(ErrDepositCharge, err)
		}
		s.PaymentProviderID = providerID
		s.PaymentProviderStatus = providerStatus
		s.PaymentPayloadRaw = providerResp
	}

	s.Status = entities.SaleStatusAdvancePaid
	s.AdvanceAmount = amount
	s.UpdatedAt = u.clk.Now()

	applied, err := u.writer.RecordAdvance(ctx, s)
	if err != nil {
		return entities.Sale{}, err
	}
	if !applied {
		return entities.Sale{}, ErrSaleStateConflict
	}

	log.Printf("[sale][usecase] advance recorded sale_id=%s amount=%.2f", s.ID, amount)
	return s, nil
}

func (u *SaleLifecycleUseCase) CompleteSale(ctx context.Context, saleID string) (entities.Sale, error) {
	return u.applyEvent(ctx, saleID, entities.EventComplete, "")
}

func (u *SaleLifecycleUseCase) CancelSale(ctx context.Context, saleID, reason string) (entities.Sale, error) {
	return u.applyEvent(ctx, saleID, entities.EventCancel, reason)
}

func (u *SaleLifecycleUseCase) ReturnSale(ctx context.Context, saleID, reason string) (entities.Sale, error) {
	return u.applyEvent(ctx, saleID, entities.EventReturn, reason)
}

func (u *SaleLifecycleUseCase) applyEvent(ctx context.Context, saleID string, event entities.SaleEvent, reason string) (entities.Sale, error) {
	s, err := u.GetByID(ctx, saleID)
	if err != nil {
		return entities.Sale{}, err
	}

	t, err := entities.TransitionFor(event)
	if err != nil {
		return entities.Sale{}, err
	}
	if !t.AllowsFrom(s.Status) {
		return entities.Sale{}, ErrSaleStateConflict
	}

	paired := interfaces.PairedTransition{
		SaleID:      s.ID,
		SaleFrom:    s.Status,
		SaleTo:      t.To,
		Reason:      strings.TrimSpace(reason),
		VehicleID:   s.VehicleID,
		VehicleFrom: t.VehicleFrom,
		VehicleTo:   t.VehicleTo,
		Now:         u.clk.Now(),
	}
	if t.VehicleTo == entities.VehicleStatusSold {
		// The vehicle leaves active inventory; its number returns to the
		// reusable pool in the same transaction.
		paired.ReleaseNumber = s.Snapshot.Number
	}

	applied, err := u.writer.ApplyPaired(ctx, paired)
	if err != nil {
		return entities.Sale{}, err
	}
	if !applied {
		return entities.Sale{}, ErrSaleStateConflict
	}

	s.Status = t.To
	s.Reason = paired.Reason
	s.UpdatedAt = paired.Now

	log.Printf("[sale][usecase] %s success sale_id=%s vehicle_id=%s", strings.ToLower(string(event)), s.ID, s.VehicleID)
	return s, nil
}

// DeadlineStatus annotates a sale with its completion-window state. Terminal
// sales have no deadline; the zero status is returned for them.
func (u *SaleLifecycleUseCase) DeadlineStatus(ctx context.Context, saleID string) (DeadlineStatus, error) {
	s, err := u.GetByID(ctx, saleID)
	if err != nil {
		return DeadlineStatus{}, err
	}
	if !s.Status.IsOpen() {
		return DeadlineStatus{}, nil
	}
	return ComputeDeadline(s.CreatedAt, u.clk.Now()), nil
}

// DeadlineFor annotates an already-loaded sale. ok=false for terminal sales,
// which have no completion window.
func (u *SaleLifecycleUseCase) DeadlineFor(s entities.Sale) (DeadlineStatus, bool) {
	if !s.Status.IsOpen() {
		return DeadlineStatus{}, false
	}
	return ComputeDeadline(s.CreatedAt, u.clk.Now()), true
}
