package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/mygreenhome/greenhome-tracker/internal/repository"
)

// Service is a tiny façade over the results repository that produces XLSX
// bytes for history exports.
type Service struct {
	results repository.BillResultRepository
	logger  *slog.Logger
}

func NewService(results repository.BillResultRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{results: results, logger: logger}
}

// ExportHistoryXLSX returns an XLSX workbook (as bytes) for the given user and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all results for the user.
func (s *Service) ExportHistoryXLSX(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	results, err := s.results.ListWindow(ctx, userID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bill History"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Analysis Date",
		"Bill Date",
		"Bill ID",
		"Consumption (kWh)",
		"Carbon (kg CO2)",
		"Amount",
		"Savings Tip",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range results {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if !r.AnalysisDate.IsZero() {
			write(1, r.AnalysisDate.Format("2006-01-02"))
		} else {
			write(1, "")
		}
		write(2, r.BillDate)
		write(3, r.BillID)
		write(4, r.TotalConsumption)
		write(5, r.CarbonKg)
		write(6, fmt.Sprintf("%.2f", r.TotalAmount))
		write(7, truncate(r.SavingsTip, 140))

		row++
	}

	_ = f.SetColWidth(sheet, "A", "B", 14) // dates
	_ = f.SetColWidth(sheet, "C", "C", 20) // bill id
	_ = f.SetColWidth(sheet, "D", "E", 18) // readings
	_ = f.SetColWidth(sheet, "F", "F", 12) // amount
	_ = f.SetColWidth(sheet, "G", "G", 60) // tip

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID.String(),
		"rows", len(results),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
