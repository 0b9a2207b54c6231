package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"dairyledger/internal/config"
	"dairyledger/internal/db"
	"dairyledger/internal/ledger"
	applog "dairyledger/internal/log"
)

var (
	numberPattern   = regexp.MustCompile(`[-+]?\d+`)
	cleanWhitespace = regexp.MustCompile(`\s+`)
	slugPattern     = regexp.MustCompile(`[^a-z0-9]+`)
)

// headerAliases maps normalised column headings onto farm fields.
var headerAliases = map[string]string{
	"farm":              "farm_name",
	"farm_name":         "farm_name",
	"farmer":            "farmer_name",
	"farmer_name":       "farmer_name",
	"farmer_phone":      "farmer_phone",
	"phone":             "farmer_phone",
	"caretaker":         "caretaker",
	"caretaker_name":    "caretaker",
	"caretaker_phone":   "caretaker_phone",
	"location":          "location",
	"village":           "location",
	"devices":           "devices",
	"num_cows":          "num_cows",
	"cows":              "num_cows",
	"no_of_cows":        "num_cows",
	"num_calves":        "num_calves",
	"calves":            "num_calves",
	"no_of_calves":      "num_calves",
	"date":              "date",
	"registration_date": "date",
}

func main() {
	path := "farms.csv"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := run(context.Background(), path); err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("registry path must not be empty")
	}

	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("locate registry: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	records, err := readRegistry(path)
	if err != nil {
		return fmt.Errorf("read registry: %w", err)
	}

	created, updated, err := importFarms(ctx, ledger.New(database).Farms, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Imported %d farms (%d new, %d updated) from %s\n", created+updated, created, updated, filepath.Base(path))
	return nil
}

// importFarms registers every record, updating farms whose name is already
// known. Each farm is written in its own transaction; the first failure
// stops the import.
func importFarms(ctx context.Context, farms *ledger.FarmService, records []map[string]string) (created, updated int, err error) {
	existing, err := farms.List(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list farms: %w", err)
	}
	byName := make(map[string]uint, len(existing))
	for _, farm := range existing {
		byName[farm.FarmName] = farm.ID
	}

	for idx, record := range records {
		in := buildFarmInput(record)
		name := record["farm_name"]

		if id, ok := byName[name]; ok {
			if _, err := farms.Update(ctx, id, in); err != nil {
				return created, updated, fmt.Errorf("record %d (%s): %w", idx+1, name, err)
			}
			updated++
			continue
		}

		farm, err := farms.Create(ctx, in)
		if err != nil {
			return created, updated, fmt.Errorf("record %d (%s): %w", idx+1, name, err)
		}
		byName[farm.FarmName] = farm.ID
		created++
		applog.Debug(ctx, "farm imported", "farm_name", farm.FarmName, "id", farm.ID)
	}

	return created, updated, nil
}

func readRegistry(path string) ([]map[string]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	default:
		return readCSV(path)
	}
}

func readCSV(path string) ([]map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

func readXLSX(path string) ([]map[string]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return toRecords(rows)
}

// toRecords keys every data row by the canonical field of its column.
// Columns with unrecognised headings are ignored.
func toRecords(rows [][]string) ([]map[string]string, error) {
	if len(rows) == 0 {
		return nil, errors.New("registry is empty")
	}

	header := make([]string, len(rows[0]))
	for idx, heading := range rows[0] {
		header[idx] = headerAliases[slugify(heading)]
	}

	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for idx, key := range header {
			if key == "" || idx >= len(row) {
				continue
			}
			if value := normalizeText(row[idx]); value != "" {
				record[key] = value
			}
		}
		if len(record) == 0 {
			continue
		}
		records = append(records, record)
	}

	return records, nil
}

func buildFarmInput(record map[string]string) ledger.FarmInput {
	return ledger.FarmInput{
		FarmName:       optional(record["farm_name"]),
		FarmerName:     optional(record["farmer_name"]),
		FarmerPhone:    optional(record["farmer_phone"]),
		Caretaker:      optional(record["caretaker"]),
		CaretakerPhone: optional(record["caretaker_phone"]),
		Location:       optional(record["location"]),
		Devices:        optional(record["devices"]),
		NumCows:        parseCount(record["num_cows"]),
		NumCalves:      parseCount(record["num_calves"]),
		Date:           optional(record["date"]),
	}
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func normalizeText(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "N/A") {
		return ""
	}
	return cleanWhitespace.ReplaceAllString(value, " ")
}

func parseCount(value string) *int {
	match := numberPattern.FindString(value)
	if match == "" {
		return nil
	}
	parsed, err := strconv.Atoi(match)
	if err != nil {
		return nil
	}
	return &parsed
}

func slugify(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = slugPattern.ReplaceAllString(value, "_")
	return strings.Trim(value, "_")
}
