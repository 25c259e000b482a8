// Package ocr shells out to tesseract to turn bill photographs into text.
// The OCR engine is a black box: it may return empty text on failure, and
// nothing here distinguishes "blank page" from "engine confused". Upstream
// treats empty or garbage text as an extraction failure.
package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
)

type Config struct {
	Tesseract     string // binary name or absolute path; if empty -> "tesseract"
	TesseractLang string // default "eng"
	TessdataDir   string

	// Timeout bounds a single tesseract invocation. One retry is attempted on
	// failure; after that the call fails for good. 0 means 60s.
	Timeout time.Duration
}

type Result struct {
	Text       string
	SourceType string // constants.IMAGE; bills arrive as photographs only
	Language   string
	Duration   time.Duration
	Confidence float32
	Retried    bool
}

type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	return &Extractor{cfg: cfg, runner: execRunner{log: logger}, logger: logger}
}

// Extract OCRs one bill image. The extension must be an accepted image type.
// Each attempt runs under the configured timeout; a failed attempt is retried
// exactly once before the error is surfaced as a service failure.
func (e *Extractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	if !constants.IsAllowedExt(ext) {
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	text, err := e.runTesseract(ctx, path)
	retried := false
	if err != nil {
		e.logger.Warn("ocr.attempt.failed", "path", path, "error", err)
		retried = true
		text, err = e.runTesseract(ctx, path)
	}
	if err != nil {
		e.logger.Error("ocr.failed", "path", path, "error", err)
		return Result{}, fmt.Errorf("%w: ocr: %v", common.ErrServiceUnavailable, err)
	}

	res := Result{
		Text:       text,
		SourceType: constants.IMAGE,
		Language:   e.cfg.TesseractLang,
		Duration:   time.Since(start),
		Confidence: heuristicConfidence(text),
		Retried:    retried,
	}
	e.logger.Debug("ocr.ok",
		"path", path,
		"bytes", len(text),
		"confidence", res.Confidence,
		"retried", retried,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}

func (e *Extractor) runTesseract(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, truncate(string(errb), 512))
	}
	return string(out), nil
}
