// billscan runs the OCR and extraction pipeline over a single bill image and
// prints the derived metrics as JSON. No database required; useful for
// checking what the server would make of an upload.
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/mygreenhome/greenhome-tracker/internal/billtext"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/metrics"
	"github.com/mygreenhome/greenhome-tracker/internal/ocr"
)

type scanOutput struct {
	BillID        string   `json:"bill_id,omitempty"`
	BillDate      string   `json:"bill_date,omitempty"`
	TotalAmount   *float64 `json:"total_amount,omitempty"`
	Consumption   *float64 `json:"consumption_kwh,omitempty"`
	CarbonKg      *float64 `json:"carbon_kg,omitempty"`
	SavingsTip    string   `json:"savings_tip,omitempty"`
	MissingFields []string `json:"missing_fields,omitempty"`
	SourceType    string   `json:"source_type"`
	OCRConfidence float32  `json:"ocr_confidence"`
	OCRDurationMS int64    `json:"ocr_duration_ms"`
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "billscan <image-path>")
		os.Exit(2)
	}
	path := os.Args[1]

	cfg := common.LoadConfig()
	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		Timeout:       cfg.OCR.Timeout,
	}, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	res, err := extractor.Extract(ctx, path)
	if err != nil {
		logger.Error("ocr failed", "path", path, "error", err)
		os.Exit(1)
	}

	fields := billtext.Extract(billtext.Normalize(res.Text))
	out := scanOutput{
		BillID:        fields.BillID,
		BillDate:      fields.BillDate,
		TotalAmount:   fields.TotalAmount,
		Consumption:   fields.Consumption,
		MissingFields: fields.MissingRequired(),
		SourceType:    res.SourceType,
		OCRConfidence: res.Confidence,
		OCRDurationMS: res.Duration.Milliseconds(),
	}
	if fields.Consumption != nil {
		if c, err := metrics.NewConsumption(*fields.Consumption); err == nil {
			carbon := metrics.CarbonKg(c)
			out.CarbonKg = &carbon
			out.SavingsTip = metrics.SavingsTip(c)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encode output", "error", err)
		os.Exit(1)
	}
}
