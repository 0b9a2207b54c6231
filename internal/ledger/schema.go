package ledger

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"dairyledger/models"
)

// Accepted textual date formats. Farms use ISO dates, intake slips are
// written day first. Day and month may omit the leading zero.
const (
	farmDateLayout   = "2006-1-2"
	farmDateFormat   = "YYYY-MM-DD"
	intakeDateLayout = "2/1/2006"
	intakeDateFormat = "DD/MM/YYYY"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// checkRequired fails with MissingField for the first required field, in
// declaration order, that is absent from payload. Payload fields are
// pointers, so a present zero value is accepted.
func checkRequired(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return MissingField(fieldErrs[0].Field())
	}
	return err
}

func parseDate(raw, layout, format string) (datatypes.Date, error) {
	parsed, err := time.Parse(layout, strings.TrimSpace(raw))
	if err != nil {
		return datatypes.Date{}, InvalidDate(raw, format)
	}
	return models.CalendarDate(parsed), nil
}

// FarmInput is a farm registration or partial farm update.
type FarmInput struct {
	FarmName       *string `json:"farm_name" validate:"required"`
	FarmerName     *string `json:"farmer_name"`
	FarmerPhone    *string `json:"farmer_phone"`
	Caretaker      *string `json:"caretaker"`
	CaretakerPhone *string `json:"caretaker_phone"`
	Location       *string `json:"location"`
	Devices        *string `json:"devices"`
	NumCows        *int    `json:"num_cows"`
	NumCalves      *int    `json:"num_calves"`
	Date           *string `json:"date" validate:"required"`
}

func (in FarmInput) newFarm() (models.Farm, error) {
	if err := checkRequired(in); err != nil {
		return models.Farm{}, err
	}
	date, err := parseDate(*in.Date, farmDateLayout, farmDateFormat)
	if err != nil {
		return models.Farm{}, err
	}
	farm := models.Farm{FarmName: *in.FarmName, Date: date}
	in.assign(&farm)
	return farm, nil
}

// applyTo overwrites only the fields present in the update. An empty date
// keeps the stored one.
func (in FarmInput) applyTo(farm *models.Farm) error {
	if in.Date != nil && strings.TrimSpace(*in.Date) != "" {
		date, err := parseDate(*in.Date, farmDateLayout, farmDateFormat)
		if err != nil {
			return err
		}
		farm.Date = date
	}
	if in.FarmName != nil {
		farm.FarmName = *in.FarmName
	}
	in.assign(farm)
	return nil
}

func (in FarmInput) assign(farm *models.Farm) {
	setIfPresent(&farm.FarmerName, in.FarmerName)
	setIfPresent(&farm.FarmerPhone, in.FarmerPhone)
	setIfPresent(&farm.Caretaker, in.Caretaker)
	setIfPresent(&farm.CaretakerPhone, in.CaretakerPhone)
	setIfPresent(&farm.Location, in.Location)
	setIfPresent(&farm.Devices, in.Devices)
	setIfPresent(&farm.NumCows, in.NumCows)
	setIfPresent(&farm.NumCalves, in.NumCalves)
}

// MilkIntakeInput is a delivery record. Every field is required on create
// and on update.
type MilkIntakeInput struct {
	FarmName         *string  `json:"farm_name" validate:"required"`
	MilkLiters       *float64 `json:"milk_liters" validate:"required"`
	SNF              *float64 `json:"snf" validate:"required"`
	SNFStatus        *string  `json:"snf_status" validate:"required"`
	Alcohol          *float64 `json:"alcohol" validate:"required"`
	AlcoholStatus    *string  `json:"alcohol_status" validate:"required"`
	Antibiotic       *float64 `json:"antibiotic" validate:"required"`
	AntibioticStatus *string  `json:"antibiotic_status" validate:"required"`
	Date             *string  `json:"date" validate:"required"`
}

func (in MilkIntakeInput) record() (models.MilkIntake, error) {
	if err := checkRequired(in); err != nil {
		return models.MilkIntake{}, err
	}
	date, err := parseDate(*in.Date, intakeDateLayout, intakeDateFormat)
	if err != nil {
		return models.MilkIntake{}, err
	}
	return models.MilkIntake{
		FarmName:         *in.FarmName,
		MilkLiters:       *in.MilkLiters,
		SNF:              *in.SNF,
		SNFStatus:        *in.SNFStatus,
		Alcohol:          *in.Alcohol,
		AlcoholStatus:    *in.AlcoholStatus,
		Antibiotic:       *in.Antibiotic,
		AntibioticStatus: *in.AntibioticStatus,
		Date:             date,
	}, nil
}

// PaymentInput is a settlement record. Every field is required on create
// and on update.
type PaymentInput struct {
	FarmName       *string  `json:"farm_name" validate:"required"`
	LitersPerMonth *float64 `json:"liters_per_month" validate:"required"`
	LitersReturned *float64 `json:"liters_returned" validate:"required"`
	AmountPerLiter *float64 `json:"amount_per_liter" validate:"required"`
	TotalAmount    *float64 `json:"total_amount" validate:"required"`
	Status         *string  `json:"status" validate:"required"`
}

func (in PaymentInput) record() (models.Payment, error) {
	if err := checkRequired(in); err != nil {
		return models.Payment{}, err
	}
	return models.Payment{
		FarmName:       *in.FarmName,
		LitersPerMonth: *in.LitersPerMonth,
		LitersReturned: *in.LitersReturned,
		AmountPerLiter: *in.AmountPerLiter,
		TotalAmount:    *in.TotalAmount,
		Status:         *in.Status,
	}, nil
}

// DispatchInput carries optional per-product quantities. The date is never
// taken from the caller.
type DispatchInput struct {
	Milk   *int `json:"milk"`
	Curd   *int `json:"curd"`
	Paneer *int `json:"paneer"`
	Butter *int `json:"butter"`
	Ghee   *int `json:"ghee"`
	Honey  *int `json:"honey"`
	Cheese *int `json:"cheese"`
}

// applyTo copies the present quantities and stamps the dispatch with today.
func (in DispatchInput) applyTo(dispatch *models.ProductDispatch, today time.Time) {
	setPointerIfPresent(&dispatch.Milk, in.Milk)
	setPointerIfPresent(&dispatch.Curd, in.Curd)
	setPointerIfPresent(&dispatch.Paneer, in.Paneer)
	setPointerIfPresent(&dispatch.Butter, in.Butter)
	setPointerIfPresent(&dispatch.Ghee, in.Ghee)
	setPointerIfPresent(&dispatch.Honey, in.Honey)
	setPointerIfPresent(&dispatch.Cheese, in.Cheese)
	dispatch.Date = models.CalendarDate(today)
}

func setIfPresent[T any](dst *T, value *T) {
	if value != nil {
		*dst = *value
	}
}

func setPointerIfPresent[T any](dst **T, value *T) {
	if value != nil {
		v := *value
		*dst = &v
	}
}
