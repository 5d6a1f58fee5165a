package entities

import (
	"testing"
	"time"
)

func TestVehicleStatusIsActive(t *testing.T) {
	active := map[VehicleStatus]bool{
		VehicleStatusAvailable: true,
		VehicleStatusPending:   true,
		VehicleStatusReserved:  true,
		VehicleStatusTakenOut:  true,
		VehicleStatusSold:      false,
	}
	for s, want := range active {
		if got := s.IsActive(); got != want {
			t.Fatalf("%s: expected IsActive=%v, got %v", s, want, got)
		}
	}
}

func TestNormalizeNumber(t *testing.T) {
	if got := NormalizeNumber("  cba-3214 "); got != "CBA-3214" {
		t.Fatalf("expected CBA-3214, got %q", got)
	}
	if got := NormalizeNumber("   "); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestSnapshotOf(t *testing.T) {
	v := Vehicle{
		ID:              "veh-1",
		Number:          "CBA-3214",
		Status:          VehicleStatusAvailable,
		Brand:           "Toyota",
		Model:           "Premio",
		ManufactureYear: 2018,
		Price:           9_500_000,
		CreatedAt:       time.Now().UTC(),
	}

	snap := SnapshotOf(v)
	if snap.Number != "CBA-3214" || snap.Brand != "Toyota" || snap.Model != "Premio" || snap.ManufactureYear != 2018 || snap.ListedPrice != 9_500_000 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	// The snapshot is a copy; later vehicle edits must not bleed into it.
	v.Brand = "Nissan"
	v.Price = 1
	if snap.Brand != "Toyota" || snap.ListedPrice != 9_500_000 {
		t.Fatalf("snapshot changed after vehicle edit: %+v", snap)
	}
}
