package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/gen/ent"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/utils"
)

type AnalysisJobRepository interface {
	Start(ctx context.Context, userID uuid.UUID, filename string) (*entity.AnalysisJob, error)
	FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string) error
	FinishSuccess(ctx context.Context, jobID, resultID uuid.UUID, extractedJSON []byte) error
	FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error
}

type analysisJobRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAnalysisJobRepository(client *ent.Client, logger *slog.Logger) AnalysisJobRepository {
	return &analysisJobRepository{client: client, logger: logger}
}

func (r *analysisJobRepository) Start(ctx context.Context, userID uuid.UUID, filename string) (*entity.AnalysisJob, error) {
	job, err := r.client.AnalysisJob.Create().
		SetUserID(userID).
		SetFilename(filename).
		SetStatus(string(constants.JobStatusRunning)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to start analysis job", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToAnalysisJob(job), nil
}

func (r *analysisJobRepository) FinishOCR(ctx context.Context, jobID uuid.UUID, ocrText string) error {
	return r.client.AnalysisJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusOCROK)).
		SetOcrText(ocrText).
		Exec(ctx)
}

func (r *analysisJobRepository) FinishSuccess(ctx context.Context, jobID, resultID uuid.UUID, extractedJSON []byte) error {
	return r.client.AnalysisJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusDone)).
		SetResultID(resultID).
		SetExtractedJSON(extractedJSON).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
}

func (r *analysisJobRepository) FinishFailure(ctx context.Context, jobID uuid.UUID, message string) error {
	return r.client.AnalysisJob.UpdateOneID(jobID).
		SetStatus(string(constants.JobStatusFailed)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now().UTC()).
		Exec(ctx)
}
