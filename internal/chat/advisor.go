package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mygreenhome/greenhome-tracker/internal/metrics"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
)

const maxToolTurns = 2

// Advisor answers energy questions grounded in the user's analyzed bills.
// The model either replies directly or asks for a tool; tool output is fed
// back as an extra user turn and the loop runs again, bounded by
// maxToolTurns.
type Advisor struct {
	logger *slog.Logger
	model  Completer
	tools  *toolbox
}

func NewAdvisor(
	logger *slog.Logger,
	model Completer,
	users repository.UserRepository,
	results repository.BillResultRepository,
) *Advisor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Advisor{
		logger: logger,
		model:  model,
		tools: &toolbox{
			users:   users,
			results: results,
			rng:     metrics.NewSharedRand(time.Now().UnixNano()),
		},
	}
}

func (a *Advisor) Advise(ctx context.Context, userID uuid.UUID, msgs []Message) (string, error) {
	schema := BuildToolCallJSONSchema(a.tools.names())
	system := buildSystemPrompt(a.tools.names(), schema)

	conversation := append([]Message{}, msgs...)
	for turn := 0; turn <= maxToolTurns; turn++ {
		raw, err := a.model.Complete(ctx, CompleteRequest{
			System:   system,
			Messages: conversation,
		})
		if err != nil {
			return "", err
		}

		call, ok := parseToolCall(schema, raw)
		if !ok || call.Action == "reply" {
			if ok && call.Reply != "" {
				return call.Reply, nil
			}
			return raw, nil
		}

		if turn == maxToolTurns {
			a.logger.Warn("chat.advise.tool_budget_exhausted", "user_id", userID, "tool", call.Tool)
			return "", ErrNoReply
		}

		out, err := a.tools.run(ctx, call.Tool, userID)
		if err != nil {
			a.logger.Error("chat.advise.tool_failed", "user_id", userID, "tool", call.Tool, "error", err)
			return "", err
		}
		a.logger.Info("chat.advise.tool_ok", "user_id", userID, "tool", call.Tool, "bytes", len(out))

		conversation = append(conversation,
			Message{Role: RoleAssistant, Content: raw},
			Message{Role: RoleUser, Content: "Tool result for " + call.Tool + ":\n" + out + "\n\nAnswer the original question using this data."},
		)
	}
	return "", ErrNoReply
}

// parseToolCall accepts only JSON that validates against the tool-call
// schema; anything else is treated as a plain-text reply.
func parseToolCall(schema map[string]any, raw string) (ToolCall, bool) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if !strings.HasPrefix(trimmed, "{") {
		return ToolCall{}, false
	}
	if err := ValidateJSONAgainstSchema(schema, []byte(trimmed)); err != nil {
		return ToolCall{}, false
	}
	var call ToolCall
	if err := json.Unmarshal([]byte(trimmed), &call); err != nil {
		return ToolCall{}, false
	}
	return call, true
}

func buildSystemPrompt(toolNames []string, schema map[string]any) string {
	b, _ := json.MarshalIndent(schema, "", "  ")
	parts := []string{
		"You are a home energy advisor for an electricity bill tracking service.",
		"Base every claim about the user's usage on tool data, never on guesses.",
		"Available tools: " + strings.Join(toolNames, ", ") + ".",
		"To call a tool, return ONLY JSON matching this schema with action=\"tool\":\n" + string(b),
		"Otherwise answer in plain text. Keep answers short and practical.",
	}
	return strings.Join(parts, " ")
}
