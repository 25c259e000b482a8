package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/gen/ent"
	"github.com/mygreenhome/greenhome-tracker/gen/ent/user"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/utils"
)

// NewUser wraps the fields needed to create an account. Gamification state is
// not part of the request; the repository applies the initial state itself.
type NewUser struct {
	Email         string
	FirstName     string
	LastName      string
	InitialPoints int
	InitialBadges []constants.BadgeKey
}

// AnalysisUpdate is everything one analysis changes on a user, applied as a
// single conditional update keyed on the version the computation read. On a
// version mismatch nothing is written and ErrConflict is returned; the caller
// must recompute against fresh state.
type AnalysisUpdate struct {
	UserID          uuid.UUID
	ExpectedVersion int
	Result          entity.BillResult
	PointsDelta     int
	Badges          []constants.BadgeKey // full post-update badge list
	ReductionDelta  float64
}

type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Create(ctx context.Context, nu NewUser) (*entity.User, error)
	Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error)
	ApplyAnalysis(ctx context.Context, upd AnalysisUpdate) (*entity.BillResult, error)
}

type userRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewUserRepository(client *ent.Client, logger *slog.Logger) UserRepository {
	return &userRepository{client: client, logger: logger}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := r.client.User.Query().Where(user.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to load user", "user_id", id, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) Create(ctx context.Context, nu NewUser) (*entity.User, error) {
	badges := make([]string, len(nu.InitialBadges))
	for i, b := range nu.InitialBadges {
		badges[i] = string(b)
	}
	builder := r.client.User.Create().
		SetEmail(nu.Email).
		SetPoints(nu.InitialPoints).
		SetBadges(badges)
	if nu.FirstName != "" {
		builder = builder.SetFirstName(nu.FirstName)
	}
	if nu.LastName != "" {
		builder = builder.SetLastName(nu.LastName)
	}

	u, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create user", "email", nu.Email, "error", err)
		return nil, err
	}
	return utils.ToUser(u), nil
}

func (r *userRepository) Leaderboard(ctx context.Context, limit int) ([]*entity.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	users, err := r.client.User.Query().
		Order(user.ByPoints(entsql.OrderDesc()), user.ByCreatedAt()).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to query leaderboard", "error", err)
		return nil, err
	}

	entries := make([]*entity.LeaderboardEntry, len(users))
	for i, u := range users {
		entries[i] = &entity.LeaderboardEntry{
			Rank:       i + 1,
			UserID:     u.ID,
			Email:      u.Email,
			Points:     u.Points,
			BadgeCount: len(u.Badges),
		}
	}
	return entries, nil
}

// ApplyAnalysis appends the new result and applies the gamification deltas in
// one transaction. The user row update is conditional on ExpectedVersion, so
// two racing analyses for the same user cannot both commit against the same
// snapshot: the loser sees ErrConflict and recomputes.
func (r *userRepository) ApplyAnalysis(ctx context.Context, upd AnalysisUpdate) (*entity.BillResult, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, common.WrapError(err, "begin tx")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res := upd.Result
	builder := tx.BillResult.Create().
		SetUserID(upd.UserID).
		SetTotalConsumption(res.TotalConsumption).
		SetCarbonKg(res.CarbonKg).
		SetTotalAmount(res.TotalAmount).
		SetEnergyUsage(utils.ToEnergyReadings(res.EnergyUsage)).
		SetSavingsTip(res.SavingsTip).
		SetAnalysisDate(res.AnalysisDate)
	if res.BillID != "" {
		builder = builder.SetBillID(res.BillID)
	}
	if res.BillDate != "" {
		builder = builder.SetBillDate(res.BillDate)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "append bill result")
	}

	badges := make([]string, len(upd.Badges))
	for i, b := range upd.Badges {
		badges[i] = string(b)
	}
	n, err := tx.User.Update().
		Where(user.ID(upd.UserID), user.Version(upd.ExpectedVersion)).
		AddPoints(upd.PointsDelta).
		SetBadges(badges).
		AddBillsAnalyzedCount(1).
		AddTotalConsumptionReduced(upd.ReductionDelta).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		return nil, common.WrapError(err, "update user")
	}
	if n == 0 {
		err = common.ErrConflict
		r.logger.Warn("analysis update lost the version race",
			"user_id", upd.UserID, "expected_version", upd.ExpectedVersion)
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, common.WrapError(err, "commit analysis")
	}
	return utils.ToBillResult(created), nil
}
