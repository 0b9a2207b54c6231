package ledger

import (
	"context"
	"testing"

	"dairyledger/models"
)

func TestMilkIntakeDateRoundTrip(t *testing.T) {
	t.Parallel()
	services, _ := newTestServices(t)
	ctx := context.Background()

	mustCreateFarm(t, services, "Green Valley")
	created, err := services.Intakes.Create(ctx, intakeInput("Green Valley", "15/03/2024"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := services.Intakes.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if date := models.FormatDate(got.Date); date != "2024-03-15" {
		t.Fatalf("stored date = %q, want 2024-03-15", date)
	}
}

func TestMilkIntakeScenario(t *testing.T) {
	t.Parallel()
	services, db := newTestServices(t)
	ctx := context.Background()

	mustCreateFarm(t, services, "Green Valley")

	created, err := services.Intakes.Create(ctx, intakeInput("Green Valley", "01/06/2024"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.MilkLiters != 120 || created.SNF != 8.5 || created.SNFStatus != "normal" ||
		created.Alcohol != 70 || created.AlcoholStatus != "pass" ||
		created.Antibiotic != 0 || created.AntibioticStatus != "negative" {
		t.Fatalf("unexpected intake: %+v", created)
	}
	if date := models.FormatDate(created.Date); date != "2024-06-01" {
		t.Fatalf("date = %q, want 2024-06-01", date)
	}

	_, err = services.Intakes.Create(ctx, intakeInput("Unknown Farm", "01/06/2024"))
	expectKind(t, err, KindUnknownFarm)
	if count := countRows[models.MilkIntake](t, db); count != 1 {
		t.Fatalf("milk intake count = %d, want 1", count)
	}
}

func TestMilkIntakeValidationPrecedesReferenceCheck(t *testing.T) {
	t.Parallel()
	services, db := newTestServices(t)

	in := intakeInput("Unknown Farm", "01/06/2024")
	in.MilkLiters = nil
	_, err := services.Intakes.Create(context.Background(), in)
	expectKind(t, err, KindMissingField)

	if count := countRows[models.MilkIntake](t, db); count != 0 {
		t.Fatalf("milk intake count = %d, want 0", count)
	}
}

// Update does not consult the farm registry, so an intake can be moved to an
// unregistered farm name.
func TestMilkIntakeUpdateSkipsReferenceCheck(t *testing.T) {
	t.Parallel()
	services, _ := newTestServices(t)
	ctx := context.Background()

	mustCreateFarm(t, services, "Green Valley")
	created, err := services.Intakes.Create(ctx, intakeInput("Green Valley", "01/06/2024"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	replacement := intakeInput("Unknown Farm", "02/06/2024")
	replacement.MilkLiters = ptr(95.5)
	updated, err := services.Intakes.Update(ctx, created.ID, replacement)
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != created.ID || updated.FarmName != "Unknown Farm" || updated.MilkLiters != 95.5 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if date := models.FormatDate(updated.Date); date != "2024-06-02" {
		t.Fatalf("date = %q, want 2024-06-02", date)
	}
}

func TestMilkIntakeUpdateRequiresFullPayload(t *testing.T) {
	t.Parallel()
	services, _ := newTestServices(t)
	ctx := context.Background()

	mustCreateFarm(t, services, "Green Valley")
	created, err := services.Intakes.Create(ctx, intakeInput("Green Valley", "01/06/2024"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	partial := MilkIntakeInput{MilkLiters: ptr(10.0)}
	_, err = services.Intakes.Update(ctx, created.ID, partial)
	expectKind(t, err, KindMissingField)

	stored, err := services.Intakes.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.MilkLiters != 120 {
		t.Fatalf("failed update mutated record: %+v", stored)
	}

	_, err = services.Intakes.Update(ctx, 99999, intakeInput("Green Valley", "01/06/2024"))
	expectKind(t, err, KindNotFound)
}

func TestMilkIntakeDeleteAndList(t *testing.T) {
	t.Parallel()
	services, _ := newTestServices(t)
	ctx := context.Background()

	mustCreateFarm(t, services, "Green Valley")
	first, err := services.Intakes.Create(ctx, intakeInput("Green Valley", "01/06/2024"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := services.Intakes.Create(ctx, intakeInput("Green Valley", "02/06/2024")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := services.Intakes.Delete(ctx, first.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != first.ID {
		t.Fatalf("Delete() returned id %d, want %d", deleted.ID, first.ID)
	}

	intakes, err := services.Intakes.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(intakes) != 1 || models.FormatDate(intakes[0].Date) != "2024-06-02" {
		t.Fatalf("unexpected intakes after delete: %+v", intakes)
	}

	_, err = services.Intakes.Delete(ctx, first.ID)
	expectKind(t, err, KindNotFound)
}
