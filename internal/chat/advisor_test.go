package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
)

type scriptedModel struct {
	replies  []string
	requests []CompleteRequest
}

func (m *scriptedModel) Complete(_ context.Context, req CompleteRequest) (string, error) {
	m.requests = append(m.requests, req)
	if len(m.requests) > len(m.replies) {
		return "", errors.New("script exhausted")
	}
	return m.replies[len(m.requests)-1], nil
}

type stubUsers struct{ user entity.User }

func (s *stubUsers) GetByID(context.Context, uuid.UUID) (*entity.User, error) {
	u := s.user
	return &u, nil
}
func (s *stubUsers) Create(context.Context, repository.NewUser) (*entity.User, error) {
	return nil, errors.New("not used")
}
func (s *stubUsers) Leaderboard(context.Context, int) ([]*entity.LeaderboardEntry, error) {
	return nil, errors.New("not used")
}
func (s *stubUsers) ApplyAnalysis(context.Context, repository.AnalysisUpdate) (*entity.BillResult, error) {
	return nil, errors.New("not used")
}

type stubResults struct{ history []*entity.BillResult }

func (s *stubResults) ListByUser(context.Context, uuid.UUID, int) ([]*entity.BillResult, error) {
	return s.history, nil
}
func (s *stubResults) Latest(context.Context, uuid.UUID) (*entity.BillResult, error) {
	if len(s.history) == 0 {
		return nil, common.ErrNotFound
	}
	r := *s.history[0]
	return &r, nil
}
func (s *stubResults) ListWindow(context.Context, uuid.UUID, *time.Time, *time.Time) ([]*entity.BillResult, error) {
	return s.history, nil
}

func TestAdvisePlainReply(t *testing.T) {
	model := &scriptedModel{replies: []string{"Run your AC at 24°C to save power."}}
	a := NewAdvisor(nil, model, &stubUsers{}, &stubResults{})

	reply, err := a.Advise(context.Background(), uuid.New(), []Message{
		{Role: RoleUser, Content: "How can I save power?"},
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if reply != "Run your AC at 24°C to save power." {
		t.Errorf("reply = %q", reply)
	}
	if len(model.requests) != 1 {
		t.Errorf("model called %d times, want 1", len(model.requests))
	}
	if model.requests[0].System == "" {
		t.Error("system prompt must be set")
	}
}

func TestAdviseRunsToolThenAnswers(t *testing.T) {
	model := &scriptedModel{replies: []string{
		`{"action":"tool","tool":"get_usage_summary"}`,
		"You have analyzed 2 bills and hold 270 points.",
	}}
	users := &stubUsers{user: entity.User{
		ID:      uuid.New(),
		Points:  270,
		Tracker: entity.AchievementsTracker{BillsAnalyzedCount: 2},
	}}
	results := &stubResults{history: []*entity.BillResult{
		{TotalConsumption: 250, CarbonKg: 205.0, TotalAmount: 1500},
	}}
	a := NewAdvisor(nil, model, users, results)

	reply, err := a.Advise(context.Background(), users.user.ID, []Message{
		{Role: RoleUser, Content: "How am I doing?"},
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if !strings.Contains(reply, "270 points") {
		t.Errorf("reply = %q", reply)
	}
	if len(model.requests) != 2 {
		t.Fatalf("model called %d times, want 2", len(model.requests))
	}

	// The second turn must carry the tool output back to the model.
	second := model.requests[1].Messages
	joined := ""
	for _, m := range second {
		joined += m.Content + "\n"
	}
	if !strings.Contains(joined, `"points":270`) {
		t.Errorf("tool output not fed back, conversation was:\n%s", joined)
	}
}

func TestAdviseStructuredReply(t *testing.T) {
	model := &scriptedModel{replies: []string{
		`{"action":"reply","reply":"Short answer."}`,
	}}
	a := NewAdvisor(nil, model, &stubUsers{}, &stubResults{})

	reply, err := a.Advise(context.Background(), uuid.New(), []Message{
		{Role: RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if reply != "Short answer." {
		t.Errorf("reply = %q", reply)
	}
}

func TestAdviseInvalidJSONFallsBackToText(t *testing.T) {
	// Shaped like a tool call but fails schema validation: treated as prose.
	raw := `{"action":"launch","tool":"get_usage_summary"}`
	model := &scriptedModel{replies: []string{raw}}
	a := NewAdvisor(nil, model, &stubUsers{}, &stubResults{})

	reply, err := a.Advise(context.Background(), uuid.New(), []Message{
		{Role: RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Advise: %v", err)
	}
	if reply != raw {
		t.Errorf("reply = %q, want the raw text passed through", reply)
	}
}

func TestAdviseToolBudget(t *testing.T) {
	model := &scriptedModel{replies: []string{
		`{"action":"tool","tool":"get_saving_tips"}`,
		`{"action":"tool","tool":"get_saving_tips"}`,
		`{"action":"tool","tool":"get_saving_tips"}`,
	}}
	results := &stubResults{history: []*entity.BillResult{{TotalConsumption: 120, TotalAmount: 800}}}
	a := NewAdvisor(nil, model, &stubUsers{}, results)

	_, err := a.Advise(context.Background(), uuid.New(), []Message{
		{Role: RoleUser, Content: "tips please"},
	})
	if !errors.Is(err, ErrNoReply) {
		t.Fatalf("err = %v, want ErrNoReply", err)
	}
}
