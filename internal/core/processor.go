// Package core coordinates the bill ingestion pipeline: OCR, text
// normalization, field extraction, metric derivation, gamification, and the
// atomic persistence of all of it.
package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/internal/billtext"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/gamification"
	"github.com/mygreenhome/greenhome-tracker/internal/metrics"
	"github.com/mygreenhome/greenhome-tracker/internal/ocr"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
)

// TextExtractor is the OCR boundary; stubbed in tests.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (ocr.Result, error)
}

// Analysis is the outcome of one successful bill analysis: the appended
// result plus what it earned.
type Analysis struct {
	JobID   uuid.UUID
	Result  *entity.BillResult
	Outcome gamification.Outcome
}

// Processor runs the pipeline for one uploaded image. It does not own the
// image file; the caller that created it removes it on every exit path.
type Processor struct {
	logger  *slog.Logger
	ocr     TextExtractor
	users   repository.UserRepository
	results repository.BillResultRepository
	jobs    repository.AnalysisJobRepository
}

func NewProcessor(
	logger *slog.Logger,
	textExtractor TextExtractor,
	users repository.UserRepository,
	results repository.BillResultRepository,
	jobs repository.AnalysisJobRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:  logger,
		ocr:     textExtractor,
		users:   users,
		results: results,
		jobs:    jobs,
	}
}

// StartJob creates the analysis-job row up front. Async callers use it to
// hand the job ID back to the client before a worker picks the image up.
func (p *Processor) StartJob(ctx context.Context, userID uuid.UUID, path string) (*entity.AnalysisJob, error) {
	job, err := p.jobs.Start(ctx, userID, filepath.Base(path))
	if err != nil {
		return nil, common.WrapError(err, "start analysis job")
	}
	return job, nil
}

// AbortJob marks a started job failed before any processing ran, e.g. when
// the queue refuses it.
func (p *Processor) AbortJob(ctx context.Context, jobID uuid.UUID, reason string) error {
	return p.jobs.FinishFailure(ctx, jobID, reason)
}

// AnalyzeBill runs OCR over the image at path, extracts and derives the bill
// fields, computes the gamification outcome against the user's authoritative
// state, and persists result + deltas atomically. A version conflict with a
// concurrent analysis is recomputed once; a second conflict surfaces as
// ErrConflict.
func (p *Processor) AnalyzeBill(ctx context.Context, userID uuid.UUID, path string) (*Analysis, error) {
	job, err := p.StartJob(ctx, userID, path)
	if err != nil {
		return nil, err
	}
	return p.AnalyzeJob(ctx, job.ID, userID, path)
}

// AnalyzeJob runs the pipeline against a job row created by StartJob.
func (p *Processor) AnalyzeJob(ctx context.Context, jobID uuid.UUID, userID uuid.UUID, path string) (*Analysis, error) {
	ocrRes, err := p.ocr.Extract(ctx, path)
	if err != nil {
		p.logger.Error("processor.ocr.failed", "job_id", jobID, "user_id", userID, "error", err)
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return nil, err
	}
	if err := p.jobs.FinishOCR(ctx, jobID, ocrRes.Text); err != nil {
		return nil, common.WrapError(err, "persist ocr text")
	}

	text := billtext.Normalize(ocrRes.Text)
	fields := billtext.Extract(text)
	if missing := fields.MissingRequired(); len(missing) > 0 {
		p.logger.Warn("processor.extract.insufficient",
			"job_id", jobID, "user_id", userID,
			"missing", strings.Join(missing, ","),
			"ocr_confidence", ocrRes.Confidence,
		)
		_ = p.jobs.FinishFailure(ctx, jobID, "missing required fields: "+strings.Join(missing, ", "))
		return nil, fmt.Errorf("%w: missing %s", common.ErrUnreadableBill, strings.Join(missing, ", "))
	}

	consumption, err := metrics.NewConsumption(*fields.Consumption)
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return nil, fmt.Errorf("%w: %v", common.ErrUnreadableBill, err)
	}

	result := entity.BillResult{
		TotalConsumption: consumption.KWh(),
		CarbonKg:         metrics.CarbonKg(consumption),
		TotalAmount:      *fields.TotalAmount,
		EnergyUsage:      []entity.EnergyUsage{{Consumption: consumption.KWh()}},
		SavingsTip:       metrics.SavingsTip(consumption),
		BillID:           fields.BillID,
		BillDate:         fields.BillDate,
		AnalysisDate:     time.Now().UTC(),
	}

	analysis, err := p.applyWithRetry(ctx, userID, result, consumption.KWh())
	if err != nil {
		_ = p.jobs.FinishFailure(ctx, jobID, err.Error())
		return nil, err
	}
	analysis.JobID = jobID

	extracted, _ := json.Marshal(analysis.Result)
	if err := p.jobs.FinishSuccess(ctx, jobID, analysis.Result.ID, extracted); err != nil {
		return nil, common.WrapError(err, "finish analysis job")
	}

	p.logger.Info("processor.analysis.ok",
		"req_id", common.RequestIDFromContext(ctx),
		"job_id", jobID,
		"user_id", userID,
		"result_id", analysis.Result.ID,
		"consumption_kwh", result.TotalConsumption,
		"carbon_kg", result.CarbonKg,
		"earned_points", analysis.Outcome.EarnedPoints,
		"new_badges", len(analysis.Outcome.NewBadges),
	)
	return analysis, nil
}

// applyWithRetry is the read-modify-write over user state. The gamification
// deltas are only meaningful against the exact snapshot they were computed
// from, so a lost version race discards them and recomputes from fresh state.
func (p *Processor) applyWithRetry(ctx context.Context, userID uuid.UUID, result entity.BillResult, currentKWh float64) (*Analysis, error) {
	const attempts = 2

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		user, err := p.users.GetByID(ctx, userID)
		if err != nil {
			return nil, common.WrapError(err, "load user")
		}

		var previous *float64
		if latest, err := p.results.Latest(ctx, userID); err == nil {
			previous = &latest.TotalConsumption
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, common.WrapError(err, "load latest result")
		}

		outcome := gamification.Evaluate(*user, currentKWh, previous)
		badges := append(append([]constants.BadgeKey{}, user.Badges...), outcome.NewBadges...)

		created, err := p.users.ApplyAnalysis(ctx, repository.AnalysisUpdate{
			UserID:          userID,
			ExpectedVersion: user.Version,
			Result:          result,
			PointsDelta:     outcome.EarnedPoints,
			Badges:          badges,
			ReductionDelta:  outcome.ConsumptionReduced,
		})
		if err == nil {
			return &Analysis{Result: created, Outcome: outcome}, nil
		}
		if !errors.Is(err, common.ErrConflict) {
			return nil, err
		}
		lastErr = err
		p.logger.Warn("processor.apply.conflict", "user_id", userID, "attempt", attempt+1)
	}
	return nil, lastErr
}
