package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/domain/entities"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/pkg/clock"
	"github.com/punchicar71-dev/pcn-system-2.0-sub000/internal/usecase/interfaces"
)

var (
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrInvalidVehicleID       = errors.New("invalid vehicle id")
	ErrInvalidVehicleNumber   = errors.New("invalid vehicle number")
	ErrInvalidVehiclePrice    = errors.New("invalid vehicle price")
	ErrDuplicateVehicleNumber = errors.New("duplicate active vehicle number")
	ErrOpenSaleExists         = errors.New("open sale exists for vehicle")
	ErrInvalidImageRequest    = errors.New("invalid image upload request")
)

// IVehicleUseCase exposes inventory-side operations.
//
// Number uniqueness is advisory-checked here (fast UI feedback) and enforced
// again at write time by the repository's number-claim transaction, since two
// concurrent create requests can both pass the pre-flight check.

type IVehicleUseCase interface {
	CreateVehicle(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error)
	GetByID(ctx context.Context, id string) (entities.Vehicle, error)
	List(ctx context.Context, status entities.VehicleStatus, limit int, cursor string) ([]entities.Vehicle, string, error)
	DeleteVehicle(ctx context.Context, id string) error
	CheckNumberAvailable(ctx context.Context, number string) (bool, error)
	RequestImageUpload(ctx context.Context, vehicleID, imageType, fileName, mimeType string) (interfaces.UploadSlot, error)
}

type CreateVehicleInput struct {
	Number          string
	Brand           string
	Model           string
	ManufactureYear int
	Price           float64
	Mileage         int
	FuelType        string
	Transmission    string
	EngineCapacity  int
	ExteriorColor   string
	Description     string
}

type VehicleUseCase struct {
	repo     interfaces.IVehicleRepository
	saleRepo interfaces.ISaleRepository
	store    interfaces.IObjectStore
	notifier interfaces.INotifier
	clk      clock.Clock
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(
	repo interfaces.IVehicleRepository,
	saleRepo interfaces.ISaleRepository,
	store interfaces.IObjectStore,
	notifier interfaces.INotifier,
	clk clock.Clock,
) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, saleRepo: saleRepo, store: store, notifier: notifier, clk: clk}
}

func (u *VehicleUseCase) CreateVehicle(ctx context.Context, in CreateVehicleInput) (entities.Vehicle, error) {
	number := entities.NormalizeNumber(in.Number)
	if number == "" {
		return entities.Vehicle{}, ErrInvalidVehicleNumber
	}
	if in.Price <= 0 {
		return entities.Vehicle{}, ErrInvalidVehiclePrice
	}

	// Advisory pre-flight; the claim transaction below is the authority.
	available, err := u.CheckNumberAvailable(ctx, number)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if !available {
		return entities.Vehicle{}, ErrDuplicateVehicleNumber
	}

	now := u.clk.Now()
	v := entities.Vehicle{
		ID:              uuid.NewString(),
		Number:          number,
		Status:          entities.VehicleStatusAvailable,
		Brand:           strings.TrimSpace(in.Brand),
		Model:           strings.TrimSpace(in.Model),
		ManufactureYear: in.ManufactureYear,
		Price:           in.Price,
		Mileage:         in.Mileage,
		FuelType:        strings.TrimSpace(in.FuelType),
		Transmission:    strings.TrimSpace(in.Transmission),
		EngineCapacity:  in.EngineCapacity,
		ExteriorColor:   strings.TrimSpace(in.ExteriorColor),
		Description:     strings.TrimSpace(in.Description),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	applied, err := u.repo.Create(ctx, v)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if !applied {
		// Lost the claim race to a concurrent create.
		return entities.Vehicle{}, ErrDuplicateVehicleNumber
	}

	if u.notifier != nil {
		if err := u.notifier.PublishVehicleAdded(ctx, v); err != nil {
			log.Printf("[vehicle][usecase] vehicle-added notification failed vehicle_id=%s err=%v", v.ID, err)
		}
	}

	log.Printf("[vehicle][usecase] create success vehicle_id=%s number=%s", v.ID, v.Number)
	return v, nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Vehicle{}, ErrInvalidVehicleID
	}

	v, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.ID == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) List(ctx context.Context, status entities.VehicleStatus, limit int, cursor string) ([]entities.Vehicle, string, error) {
	return u.repo.List(ctx, status, limit, cursor)
}

// CheckNumberAvailable implements the duplicate guard: a number is taken when
// any non-sold vehicle row holds it, or when a sold row holds it but still
// has an open sale in flight. A sold-and-deleted vehicle's number is free.
func (u *VehicleUseCase) CheckNumberAvailable(ctx context.Context, number string) (bool, error) {
	number = entities.NormalizeNumber(number)
	if number == "" {
		return false, ErrInvalidVehicleNumber
	}

	vehicles, err := u.repo.ListByNumber(ctx, number)
	if err != nil {
		return false, err
	}
	for _, v := range vehicles {
		if v.Status.IsActive() {
			return false, nil
		}
		open, err := u.saleRepo.GetOpenByVehicleID(ctx, v.ID)
		if err != nil {
			return false, err
		}
		if open.ID != "" {
			return false, nil
		}
	}
	return true, nil
}

// DeleteVehicle removes the vehicle and its dependents. The vehicle row
// deletion is conditioned on status != PENDING, so a sale opened between the
// guard read and the write still blocks the delete. Completed and cancelled
// sales are untouched; they carry their own snapshot.
func (u *VehicleUseCase) DeleteVehicle(ctx context.Context, id string) error {
	v, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	open, err := u.saleRepo.GetOpenByVehicleID(ctx, v.ID)
	if err != nil {
		return err
	}
	if open.ID != "" {
		return ErrOpenSaleExists
	}

	releaseNumber := v.Status.IsActive()
	applied, err := u.repo.Delete(ctx, v.ID, v.Number, releaseNumber)
	if err != nil {
		return err
	}
	if !applied {
		return ErrOpenSaleExists
	}

	// Object removal is a collaborator concern: log failures, never undo the
	// committed delete.
	if u.store != nil && len(v.ImageKeys) > 0 {
		failed, err := u.store.DeleteObjects(ctx, v.ImageKeys)
		if err != nil {
			log.Printf("[vehicle][usecase] image cleanup failed vehicle_id=%s err=%v", v.ID, err)
		} else if len(failed) > 0 {
			log.Printf("[vehicle][usecase] image cleanup partial vehicle_id=%s failed_keys=%d", v.ID, len(failed))
		}
	}

	log.Printf("[vehicle][usecase] delete success vehicle_id=%s number=%s", v.ID, v.Number)
	return nil
}

func (u *VehicleUseCase) RequestImageUpload(ctx context.Context, vehicleID, imageType, fileName, mimeType string) (interfaces.UploadSlot, error) {
	v, err := u.GetByID(ctx, vehicleID)
	if err != nil {
		return interfaces.UploadSlot{}, err
	}
	if strings.TrimSpace(fileName) == "" || strings.TrimSpace(mimeType) == "" {
		return interfaces.UploadSlot{}, ErrInvalidImageRequest
	}

	slot, err := u.store.RequestUploadSlot(ctx, v.ID, imageType, fileName, mimeType)
	if err != nil {
		return interfaces.UploadSlot{}, err
	}

	if _, err := u.repo.AddImageKey(ctx, v.ID, slot.Key); err != nil {
		return interfaces.UploadSlot{}, err
	}

	log.Printf("[vehicle][usecase] upload slot issued vehicle_id=%s key=%s", v.ID, slot.Key)
	return slot, nil
}
