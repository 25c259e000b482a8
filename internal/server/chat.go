package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	greenhomepb "github.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1"
	"github.com/mygreenhome/greenhome-tracker/internal/chat"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
)

const maxChatMessages = 20

type ChatServer struct {
	greenhomepb.UnimplementedChatServiceServer
	advisor *chat.Advisor
	logger  *slog.Logger
}

func NewChatServer(advisor *chat.Advisor, logger *slog.Logger) *ChatServer {
	return &ChatServer{advisor: advisor, logger: logger}
}

func (s *ChatServer) Advise(ctx context.Context, req *greenhomepb.AdviseRequest) (*greenhomepb.AdviseResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	if len(req.GetMessages()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "at least one message is required")
	}
	if len(req.GetMessages()) > maxChatMessages {
		return nil, status.Errorf(codes.InvalidArgument, "at most %d messages are accepted", maxChatMessages)
	}

	msgs := make([]chat.Message, 0, len(req.GetMessages()))
	for _, m := range req.GetMessages() {
		role := strings.TrimSpace(m.GetRole())
		if role != chat.RoleUser && role != chat.RoleAssistant {
			return nil, status.Errorf(codes.InvalidArgument, "role must be %q or %q", chat.RoleUser, chat.RoleAssistant)
		}
		content := strings.TrimSpace(m.GetContent())
		if content == "" {
			return nil, status.Error(codes.InvalidArgument, "message content must not be empty")
		}
		msgs = append(msgs, chat.Message{Role: role, Content: content})
	}

	ctx = common.WithRequestID(ctx, uuid.NewString())
	ctx = common.WithUserID(ctx, userID.String())
	reply, err := s.advisor.Advise(ctx, userID, msgs)
	if err != nil {
		s.logger.Error("chat.advise.failed", "user_id", userID, "error", err)
		if errors.Is(err, chat.ErrNoReply) {
			return nil, status.Error(codes.Unavailable, "advisor could not produce an answer")
		}
		return nil, common.ToGRPCError(err)
	}
	return &greenhomepb.AdviseResponse{Reply: reply}, nil
}
