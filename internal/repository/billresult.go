package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/gen/ent"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/billresult"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/utils"
)

type BillResultRepository interface {
	// ListByUser returns the result log newest-first. limit <= 0 means all.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.BillResult, error)
	// Latest returns the head of the log, or ErrNotFound for a fresh user.
	Latest(ctx context.Context, userID uuid.UUID) (*entity.BillResult, error)
	// ListWindow returns results whose analysis date falls in [from, to],
	// newest-first; nil bounds are open.
	ListWindow(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.BillResult, error)
}

type billResultRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBillResultRepository(client *ent.Client, logger *slog.Logger) BillResultRepository {
	return &billResultRepository{client: client, logger: logger}
}

func (r *billResultRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.BillResult, error) {
	q := r.client.BillResult.Query().
		Where(billresult.UserID(userID)).
		Order(billresult.ByAnalysisDate(entsql.OrderDesc()))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list bill results", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.BillResult, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBillResult(row)
	}
	return result, nil
}

func (r *billResultRepository) Latest(ctx context.Context, userID uuid.UUID) (*entity.BillResult, error) {
	row, err := r.client.BillResult.Query().
		Where(billresult.UserID(userID)).
		Order(billresult.ByAnalysisDate(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to load latest bill result", "user_id", userID, "error", err)
		return nil, err
	}
	return utils.ToBillResult(row), nil
}

func (r *billResultRepository) ListWindow(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]*entity.BillResult, error) {
	q := r.client.BillResult.Query().Where(billresult.UserID(userID))
	if from != nil {
		q = q.Where(billresult.AnalysisDateGTE(*from))
	}
	if to != nil {
		q = q.Where(billresult.AnalysisDateLTE(*to))
	}
	rows, err := q.Order(billresult.ByAnalysisDate(entsql.OrderDesc())).All(ctx)
	if err != nil {
		r.logger.Error("failed to list bill results window", "user_id", userID, "error", err)
		return nil, err
	}

	result := make([]*entity.BillResult, len(rows))
	for i, row := range rows {
		result[i] = utils.ToBillResult(row)
	}
	return result, nil
}
