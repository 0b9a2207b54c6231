package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	appdb "dairyledger/internal/db"
	applog "dairyledger/internal/log"
	"dairyledger/models"
)

// SeedPassword is the password of the seeded operator account.
const SeedPassword = "cooperative"

// MemoryDSN returns a fresh shared-cache in-memory sqlite DSN.
func MemoryDSN() string {
	return fmt.Sprintf("file:dairyledger-%s?mode=memory&cache=shared", uuid.NewString())
}

// Open returns a migrated, empty sqlite database for dsn.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	applog.Debug(ctx, "opening sqlite database", "dsn", dsn)

	db, err := gorm.Open(sqlite.Open(dsn), appdb.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// one connection keeps the in-memory database alive and serialises writers
	sqlDB.SetMaxOpenConns(1)

	if err := appdb.AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// New returns an in-memory sqlite database seeded with representative
// cooperative data.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := Open(ctx, MemoryDSN())
	if err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	password, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Username:     "operator",
		PasswordHash: string(password),
	}
	if err := db.WithContext(ctx).Create(user).Error; err != nil {
		return err
	}

	day := func(year int, month time.Month, d int) time.Time {
		return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}

	farms := []models.Farm{
		{
			FarmName:       "Green Valley",
			FarmerName:     "Ravi Kumar",
			FarmerPhone:    "9800000001",
			Caretaker:      "Suresh",
			CaretakerPhone: "9800000002",
			Location:       "Medak",
			Devices:        "milk analyser",
			NumCows:        24,
			NumCalves:      6,
			Date:           models.CalendarDate(day(2024, time.January, 10)),
		},
		{
			FarmName:   "Sunrise Dairy",
			FarmerName: "Lakshmi Devi",
			Location:   "Siddipet",
			NumCows:    12,
			NumCalves:  3,
			Date:       models.CalendarDate(day(2024, time.February, 2)),
		},
	}
	for i := range farms {
		if err := db.WithContext(ctx).Create(&farms[i]).Error; err != nil {
			return err
		}
	}

	intakes := []models.MilkIntake{
		{
			FarmName:         "Green Valley",
			MilkLiters:       120,
			SNF:              8.5,
			SNFStatus:        "normal",
			Alcohol:          70,
			AlcoholStatus:    "pass",
			Antibiotic:       0,
			AntibioticStatus: "negative",
			Date:             models.CalendarDate(day(2024, time.June, 1)),
		},
		{
			FarmName:         "Sunrise Dairy",
			MilkLiters:       64.5,
			SNF:              7.9,
			SNFStatus:        "low",
			Alcohol:          68,
			AlcoholStatus:    "pass",
			Antibiotic:       0,
			AntibioticStatus: "negative",
			Date:             models.CalendarDate(day(2024, time.June, 1)),
		},
	}
	for i := range intakes {
		if err := db.WithContext(ctx).Create(&intakes[i]).Error; err != nil {
			return err
		}
	}

	payment := models.Payment{
		FarmName:       "Green Valley",
		LitersPerMonth: 3600,
		LitersReturned: 40,
		AmountPerLiter: 42.5,
		TotalAmount:    151300,
		Status:         models.PaymentStatusPending,
	}
	if err := db.WithContext(ctx).Create(&payment).Error; err != nil {
		return err
	}

	milk, curd, ghee := 180, 40, 6
	dispatch := models.ProductDispatch{
		Milk: &milk,
		Curd: &curd,
		Ghee: &ghee,
		Date: models.CalendarDate(time.Now()),
	}
	if err := db.WithContext(ctx).Create(&dispatch).Error; err != nil {
		return err
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
