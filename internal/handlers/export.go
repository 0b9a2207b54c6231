package handlers

import (
	"fmt"
	"net/http"
	"time"

	applog "dairyledger/internal/log"
	"dairyledger/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (a *API) ExportPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := a.ledger.Payments.List(r.Context())
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	writeWorkbook(w, r, "payments", report.PaymentsSheet(payments))
}

func (a *API) ExportMilkIntakes(w http.ResponseWriter, r *http.Request) {
	intakes, err := a.ledger.Intakes.List(r.Context())
	if err != nil {
		writeLedgerError(w, r, err)
		return
	}
	writeWorkbook(w, r, "milk-intake", report.MilkIntakesSheet(intakes))
}

func writeWorkbook(w http.ResponseWriter, r *http.Request, name string, sheet report.Sheet) {
	f, err := report.Workbook(sheet)
	if err != nil {
		applog.Error(r.Context(), "failed to build workbook", "sheet", sheet.Name, "error", err)
		writeJSONError(w, r, http.StatusInternalServerError, "unable to build export")
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(w); err != nil {
		applog.Error(r.Context(), "failed to stream workbook", "sheet", sheet.Name, "error", err)
	}
}
