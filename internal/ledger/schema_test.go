package ledger

import (
	"testing"
	"time"

	"dairyledger/models"
)

func TestMilkIntakeInputReportsFirstMissingField(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*MilkIntakeInput)
		want   string
	}{
		{"farm name", func(in *MilkIntakeInput) { in.FarmName = nil }, "farm_name"},
		{"snf status", func(in *MilkIntakeInput) { in.SNFStatus = nil }, "snf_status"},
		{"date", func(in *MilkIntakeInput) { in.Date = nil }, "date"},
		{"first in order", func(in *MilkIntakeInput) { in.Date = nil; in.Alcohol = nil }, "alcohol"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			in := intakeInput("Green Valley", "01/06/2024")
			tt.mutate(&in)
			_, err := in.record()
			expectKind(t, err, KindMissingField)
			if detail := err.(*Error).Detail; detail != tt.want {
				t.Fatalf("missing field = %q, want %q", detail, tt.want)
			}
		})
	}
}

func TestMilkIntakeInputAcceptsZeroReadings(t *testing.T) {
	t.Parallel()

	in := intakeInput("Green Valley", "15/03/2024")
	in.Antibiotic = ptr(0.0)
	in.SNFStatus = ptr("")

	intake, err := in.record()
	if err != nil {
		t.Fatalf("record() error = %v", err)
	}
	if intake.Antibiotic != 0 || intake.SNFStatus != "" {
		t.Fatalf("unexpected record: %+v", intake)
	}
	if got := models.FormatDate(intake.Date); got != "2024-03-15" {
		t.Fatalf("date = %q, want 2024-03-15", got)
	}
}

func TestDateFormatsDifferPerEntity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		entity string
		raw    string
		want   string
	}{
		{"intake padded", "intake", "15/03/2024", "2024-03-15"},
		{"intake unpadded", "intake", "1/6/2024", "2024-06-01"},
		{"intake iso rejected", "intake", "2024-03-15", ""},
		{"intake impossible day", "intake", "31/02/2024", ""},
		{"farm padded", "farm", "2024-06-01", "2024-06-01"},
		{"farm unpadded", "farm", "2024-6-1", "2024-06-01"},
		{"farm day first rejected", "farm", "15/03/2024", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				got string
				err error
			)
			switch tt.entity {
			case "intake":
				var intake models.MilkIntake
				intake, err = intakeInput("Green Valley", tt.raw).record()
				got = models.FormatDate(intake.Date)
			default:
				in := farmInput("Green Valley")
				in.Date = ptr(tt.raw)
				var farm models.Farm
				farm, err = in.newFarm()
				got = models.FormatDate(farm.Date)
			}

			if tt.want == "" {
				expectKind(t, err, KindInvalidDate)
				return
			}
			if err != nil {
				t.Fatalf("parse %q: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("parse %q = %s, want %s", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFarmInputRequiresNameAndDate(t *testing.T) {
	t.Parallel()

	in := farmInput("Green Valley")
	in.Date = nil
	_, err := in.newFarm()
	expectKind(t, err, KindMissingField)

	in = farmInput("Green Valley")
	in.FarmName = nil
	_, err = in.newFarm()
	expectKind(t, err, KindMissingField)
}

func TestFarmInputApplyToIsPartial(t *testing.T) {
	t.Parallel()

	farm, err := farmInput("Green Valley").newFarm()
	if err != nil {
		t.Fatalf("newFarm() error = %v", err)
	}

	update := FarmInput{NumCows: ptr(30), Date: ptr("")}
	if err := update.applyTo(&farm); err != nil {
		t.Fatalf("applyTo() error = %v", err)
	}

	if farm.NumCows != 30 {
		t.Fatalf("NumCows = %d, want 30", farm.NumCows)
	}
	if farm.FarmName != "Green Valley" || farm.FarmerName != "Ravi Kumar" || farm.NumCalves != 6 {
		t.Fatalf("absent fields changed: %+v", farm)
	}
	if got := models.FormatDate(farm.Date); got != "2024-01-10" {
		t.Fatalf("empty date should keep stored date, got %q", got)
	}

	bad := FarmInput{Date: ptr("10-01-2024")}
	expectKind(t, bad.applyTo(&farm), KindInvalidDate)
}

func TestPaymentInputRequiresEveryField(t *testing.T) {
	t.Parallel()

	in := paymentInput("Green Valley")
	in.TotalAmount = nil
	_, err := in.record()
	expectKind(t, err, KindMissingField)
	if detail := err.(*Error).Detail; detail != "total_amount" {
		t.Fatalf("missing field = %q, want total_amount", detail)
	}
}

func TestDispatchInputApplyToStampsToday(t *testing.T) {
	t.Parallel()

	var dispatch models.ProductDispatch
	DispatchInput{Milk: ptr(100)}.applyTo(&dispatch, time.Date(2024, time.June, 1, 18, 0, 0, 0, time.UTC))
	DispatchInput{Curd: ptr(50)}.applyTo(&dispatch, time.Date(2024, time.June, 2, 7, 0, 0, 0, time.UTC))

	if dispatch.Milk == nil || *dispatch.Milk != 100 {
		t.Fatalf("Milk = %v, want 100", dispatch.Milk)
	}
	if dispatch.Curd == nil || *dispatch.Curd != 50 {
		t.Fatalf("Curd = %v, want 50", dispatch.Curd)
	}
	if dispatch.Paneer != nil {
		t.Fatalf("Paneer = %v, want nil", *dispatch.Paneer)
	}
	if got := models.FormatDate(dispatch.Date); got != "2024-06-02" {
		t.Fatalf("date = %q, want 2024-06-02", got)
	}
}
