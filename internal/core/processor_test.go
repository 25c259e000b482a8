package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/constants"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/ocr"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
)

type fakeOCR struct {
	text string
	err  error
}

func (f *fakeOCR) Extract(context.Context, string) (ocr.Result, error) {
	if f.err != nil {
		return ocr.Result{}, f.err
	}
	return ocr.Result{Text: f.text, Confidence: 0.8}, nil
}

type fakeUsers struct {
	user      entity.User
	conflicts int // ApplyAnalysis fails with ErrConflict this many times
	applied   []repository.AnalysisUpdate
}

func (f *fakeUsers) GetByID(context.Context, uuid.UUID) (*entity.User, error) {
	u := f.user
	return &u, nil
}

func (f *fakeUsers) Create(context.Context, repository.NewUser) (*entity.User, error) {
	return nil, errors.New("not used")
}

func (f *fakeUsers) Leaderboard(context.Context, int) ([]*entity.LeaderboardEntry, error) {
	return nil, errors.New("not used")
}

func (f *fakeUsers) ApplyAnalysis(_ context.Context, upd repository.AnalysisUpdate) (*entity.BillResult, error) {
	f.applied = append(f.applied, upd)
	if f.conflicts > 0 {
		f.conflicts--
		f.user.Version++ // a concurrent writer bumped the row
		return nil, common.ErrConflict
	}
	r := upd.Result
	r.ID = uuid.New()
	r.UserID = upd.UserID
	return &r, nil
}

type fakeResults struct {
	latest *entity.BillResult
}

func (f *fakeResults) ListByUser(context.Context, uuid.UUID, int) ([]*entity.BillResult, error) {
	if f.latest == nil {
		return nil, nil
	}
	return []*entity.BillResult{f.latest}, nil
}

func (f *fakeResults) Latest(context.Context, uuid.UUID) (*entity.BillResult, error) {
	if f.latest == nil {
		return nil, common.ErrNotFound
	}
	r := *f.latest
	return &r, nil
}

func (f *fakeResults) ListWindow(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.BillResult, error) {
	return f.ListByUser(context.Background(), uuid.Nil, 0)
}

type fakeJobs struct {
	started    int
	ocrTexts   []string
	succeeded  int
	successIDs []uuid.UUID
	failures   []string
}

func (f *fakeJobs) Start(_ context.Context, userID uuid.UUID, filename string) (*entity.AnalysisJob, error) {
	f.started++
	return &entity.AnalysisJob{ID: uuid.New(), UserID: userID, Filename: filename}, nil
}

func (f *fakeJobs) FinishOCR(_ context.Context, _ uuid.UUID, text string) error {
	f.ocrTexts = append(f.ocrTexts, text)
	return nil
}

func (f *fakeJobs) FinishSuccess(_ context.Context, jobID uuid.UUID, _ uuid.UUID, _ []byte) error {
	f.succeeded++
	f.successIDs = append(f.successIDs, jobID)
	return nil
}

func (f *fakeJobs) FinishFailure(_ context.Context, _ uuid.UUID, msg string) error {
	f.failures = append(f.failures, msg)
	return nil
}

const readableBill = "SERVICE NUMBER 1234567890\nBILL DATE: 01/07/2025\nNET UNITS CONSUMED 250\nCURRENT DEMAND PAYABLE ₹1500.00"

func newTestProcessor(o *fakeOCR, u *fakeUsers, r *fakeResults, j *fakeJobs) *Processor {
	return NewProcessor(nil, o, u, r, j)
}

func TestAnalyzeBillFirstBill(t *testing.T) {
	users := &fakeUsers{user: entity.User{
		ID:     uuid.New(),
		Points: 50,
		Badges: []constants.BadgeKey{constants.BadgeWelcomeUser},
	}}
	jobs := &fakeJobs{}
	p := newTestProcessor(&fakeOCR{text: readableBill}, users, &fakeResults{}, jobs)

	analysis, err := p.AnalyzeBill(context.Background(), users.user.ID, "/tmp/bill.jpg")
	if err != nil {
		t.Fatalf("AnalyzeBill: %v", err)
	}

	r := analysis.Result
	if r.TotalConsumption != 250 {
		t.Errorf("TotalConsumption = %v, want 250", r.TotalConsumption)
	}
	if r.CarbonKg != 205.0 {
		t.Errorf("CarbonKg = %v, want 205.0", r.CarbonKg)
	}
	if r.TotalAmount != 1500.00 {
		t.Errorf("TotalAmount = %v, want 1500.00", r.TotalAmount)
	}
	if r.SavingsTip != "Shift high-energy tasks to off-peak hours for cost savings." {
		t.Errorf("SavingsTip = %q", r.SavingsTip)
	}
	if r.BillID != "1234567890" {
		t.Errorf("BillID = %q", r.BillID)
	}

	// First analysis: 100 base + 50 eco-newbie.
	if analysis.Outcome.EarnedPoints != 150 {
		t.Errorf("EarnedPoints = %d, want 150", analysis.Outcome.EarnedPoints)
	}
	if len(analysis.Outcome.NewBadges) != 1 || analysis.Outcome.NewBadges[0] != constants.BadgeEcoNewbie {
		t.Errorf("NewBadges = %v, want [eco-newbie]", analysis.Outcome.NewBadges)
	}

	if len(users.applied) != 1 {
		t.Fatalf("ApplyAnalysis called %d times, want 1", len(users.applied))
	}
	upd := users.applied[0]
	if !hasBadgeKey(upd.Badges, constants.BadgeWelcomeUser) || !hasBadgeKey(upd.Badges, constants.BadgeEcoNewbie) {
		t.Errorf("persisted badges = %v, want welcome + eco-newbie", upd.Badges)
	}
	if jobs.started != 1 || jobs.succeeded != 1 || len(jobs.failures) != 0 {
		t.Errorf("job lifecycle = started %d, succeeded %d, failures %v", jobs.started, jobs.succeeded, jobs.failures)
	}
}

func TestStartJobThenAnalyzeJob(t *testing.T) {
	// Background analyses create the job row first so the caller holds its
	// ID; the later pipeline run must reuse that row, not open a second one.
	users := &fakeUsers{user: entity.User{
		ID:     uuid.New(),
		Points: 50,
		Badges: []constants.BadgeKey{constants.BadgeWelcomeUser},
	}}
	jobs := &fakeJobs{}
	p := newTestProcessor(&fakeOCR{text: readableBill}, users, &fakeResults{}, jobs)

	job, err := p.StartJob(context.Background(), users.user.ID, "/data/uploads/abc.jpg")
	if err != nil {
		t.Fatalf("StartJob: %v", err)
	}
	if job.ID == uuid.Nil {
		t.Fatal("StartJob returned a nil job ID")
	}
	if job.Filename != "abc.jpg" {
		t.Errorf("Filename = %q, want %q", job.Filename, "abc.jpg")
	}

	analysis, err := p.AnalyzeJob(context.Background(), job.ID, users.user.ID, "/data/uploads/abc.jpg")
	if err != nil {
		t.Fatalf("AnalyzeJob: %v", err)
	}
	if analysis.JobID != job.ID {
		t.Errorf("analysis.JobID = %s, want %s", analysis.JobID, job.ID)
	}
	if jobs.started != 1 {
		t.Errorf("job rows created = %d, want 1", jobs.started)
	}
	if len(jobs.successIDs) != 1 || jobs.successIDs[0] != job.ID {
		t.Errorf("successIDs = %v, want [%s]", jobs.successIDs, job.ID)
	}
}

func TestAbortJobMarksFailure(t *testing.T) {
	jobs := &fakeJobs{}
	p := newTestProcessor(&fakeOCR{}, &fakeUsers{}, &fakeResults{}, jobs)

	job, err := p.StartJob(context.Background(), uuid.New(), "/data/uploads/abc.jpg")
	if err != nil {
		t.Fatalf("StartJob: %v", err)
	}
	if err := p.AbortJob(context.Background(), job.ID, "analysis queue refused the job"); err != nil {
		t.Fatalf("AbortJob: %v", err)
	}
	if len(jobs.failures) != 1 || jobs.failures[0] != "analysis queue refused the job" {
		t.Errorf("failures = %v, want the abort reason", jobs.failures)
	}
}

func TestAnalyzeBillUnreadable(t *testing.T) {
	users := &fakeUsers{user: entity.User{ID: uuid.New()}}
	jobs := &fakeJobs{}
	p := newTestProcessor(&fakeOCR{text: "a photo of a cat"}, users, &fakeResults{}, jobs)

	_, err := p.AnalyzeBill(context.Background(), users.user.ID, "/tmp/cat.jpg")
	if !errors.Is(err, common.ErrUnreadableBill) {
		t.Fatalf("err = %v, want ErrUnreadableBill", err)
	}
	if len(users.applied) != 0 {
		t.Error("no user update should happen for an unreadable bill")
	}
	if len(jobs.failures) != 1 {
		t.Errorf("failures = %v, want one", jobs.failures)
	}
}

func TestAnalyzeBillOCRFailure(t *testing.T) {
	users := &fakeUsers{user: entity.User{ID: uuid.New()}}
	jobs := &fakeJobs{}
	ocrErr := common.ErrServiceUnavailable
	p := newTestProcessor(&fakeOCR{err: ocrErr}, users, &fakeResults{}, jobs)

	_, err := p.AnalyzeBill(context.Background(), users.user.ID, "/tmp/bill.jpg")
	if !errors.Is(err, common.ErrServiceUnavailable) {
		t.Fatalf("err = %v, want ErrServiceUnavailable", err)
	}
	if len(jobs.failures) != 1 {
		t.Errorf("failures = %v, want one", jobs.failures)
	}
}

func TestAnalyzeBillRecomputesOnConflict(t *testing.T) {
	prev := entity.BillResult{TotalConsumption: 260}
	users := &fakeUsers{
		user: entity.User{
			ID:      uuid.New(),
			Badges:  []constants.BadgeKey{constants.BadgeWelcomeUser, constants.BadgeEcoNewbie},
			Tracker: entity.AchievementsTracker{BillsAnalyzedCount: 1},
		},
		conflicts: 1,
	}
	jobs := &fakeJobs{}
	p := newTestProcessor(&fakeOCR{text: readableBill}, users, &fakeResults{latest: &prev}, jobs)

	analysis, err := p.AnalyzeBill(context.Background(), users.user.ID, "/tmp/bill.jpg")
	if err != nil {
		t.Fatalf("AnalyzeBill: %v", err)
	}
	if len(users.applied) != 2 {
		t.Fatalf("ApplyAnalysis called %d times, want 2 (conflict then retry)", len(users.applied))
	}
	if users.applied[1].ExpectedVersion != users.applied[0].ExpectedVersion+1 {
		t.Errorf("retry must re-read the bumped version: %d then %d",
			users.applied[0].ExpectedVersion, users.applied[1].ExpectedVersion)
	}
	// 20 base + 10 kWh reduction + 75 bronze badge.
	if analysis.Outcome.EarnedPoints != 105 {
		t.Errorf("EarnedPoints = %d, want 105", analysis.Outcome.EarnedPoints)
	}
}

func TestAnalyzeBillSecondConflictSurfaces(t *testing.T) {
	users := &fakeUsers{user: entity.User{ID: uuid.New()}, conflicts: 2}
	jobs := &fakeJobs{}
	p := newTestProcessor(&fakeOCR{text: readableBill}, users, &fakeResults{}, jobs)

	_, err := p.AnalyzeBill(context.Background(), users.user.ID, "/tmp/bill.jpg")
	if !errors.Is(err, common.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if len(users.applied) != 2 {
		t.Errorf("ApplyAnalysis called %d times, want 2", len(users.applied))
	}
	if len(jobs.failures) != 1 {
		t.Errorf("failures = %v, want the job marked failed", jobs.failures)
	}
}

func hasBadgeKey(keys []constants.BadgeKey, want constants.BadgeKey) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}
