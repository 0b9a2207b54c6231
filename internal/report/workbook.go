package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"dairyledger/models"
)

// Sheet is a tabular export: one header row followed by data rows.
type Sheet struct {
	Name    string
	Headers []string
	Rows    [][]any
}

// Workbook renders sheet into a single-sheet xlsx file with a bold header row.
func Workbook(sheet Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#DDEBF7"},
			Pattern: 1,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}

	header := make([]any, len(sheet.Headers))
	for i, h := range sheet.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	if len(sheet.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(sheet.Headers), 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet.Name, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("style header: %w", err)
		}
	}

	for i, row := range sheet.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := row
		if err := f.SetSheetRow(sheet.Name, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// PaymentsSheet lays out payments one per row.
func PaymentsSheet(payments []models.Payment) Sheet {
	rows := make([][]any, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, []any{
			p.ID, p.FarmName, p.LitersPerMonth, p.LitersReturned, p.AmountPerLiter, p.TotalAmount, p.Status,
		})
	}
	return Sheet{
		Name:    "Payments",
		Headers: []string{"ID", "Farm", "Liters per month", "Liters returned", "Amount per liter", "Total amount", "Status"},
		Rows:    rows,
	}
}

// MilkIntakesSheet lays out deliveries one per row with ISO dates.
func MilkIntakesSheet(intakes []models.MilkIntake) Sheet {
	rows := make([][]any, 0, len(intakes))
	for _, m := range intakes {
		rows = append(rows, []any{
			m.ID, models.FormatDate(m.Date), m.FarmName, m.MilkLiters,
			m.SNF, m.SNFStatus, m.Alcohol, m.AlcoholStatus, m.Antibiotic, m.AntibioticStatus,
		})
	}
	return Sheet{
		Name: "Milk intake",
		Headers: []string{
			"ID", "Date", "Farm", "Liters",
			"SNF", "SNF status", "Alcohol", "Alcohol status", "Antibiotic", "Antibiotic status",
		},
		Rows: rows,
	}
}
