package ledger

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"dairyledger/internal/db/mock"
	"dairyledger/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := mock.Open(context.Background(), mock.MemoryDSN())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func newTestServices(t *testing.T) (*Services, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return New(db), db
}

func ptr[T any](v T) *T {
	return &v
}

func farmInput(name string) FarmInput {
	return FarmInput{
		FarmName:   ptr(name),
		FarmerName: ptr("Ravi Kumar"),
		Location:   ptr("Medak"),
		NumCows:    ptr(24),
		NumCalves:  ptr(6),
		Date:       ptr("2024-01-10"),
	}
}

func intakeInput(farmName, date string) MilkIntakeInput {
	return MilkIntakeInput{
		FarmName:         ptr(farmName),
		MilkLiters:       ptr(120.0),
		SNF:              ptr(8.5),
		SNFStatus:        ptr("normal"),
		Alcohol:          ptr(70.0),
		AlcoholStatus:    ptr("pass"),
		Antibiotic:       ptr(0.0),
		AntibioticStatus: ptr("negative"),
		Date:             ptr(date),
	}
}

func paymentInput(farmName string) PaymentInput {
	return PaymentInput{
		FarmName:       ptr(farmName),
		LitersPerMonth: ptr(3600.0),
		LitersReturned: ptr(40.0),
		AmountPerLiter: ptr(42.5),
		TotalAmount:    ptr(151300.0),
		Status:         ptr("pending"),
	}
}

func mustCreateFarm(t *testing.T, services *Services, name string) *models.Farm {
	t.Helper()
	farm, err := services.Farms.Create(context.Background(), farmInput(name))
	if err != nil {
		t.Fatalf("create farm %q: %v", name, err)
	}
	return farm
}

func countRows[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	if err := db.Model(new(T)).Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	return count
}

func expectKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	got, ok := KindOf(err)
	if !ok {
		t.Fatalf("expected ledger error of kind %s, got %T: %v", want, err, err)
	}
	if got != want {
		t.Fatalf("error kind = %s, want %s (%v)", got, want, err)
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
