package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	greenhomepb "github.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/gamification"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
	"github.com/mygreenhome/greenhome-tracker/internal/utils"
)

type UsersServer struct {
	greenhomepb.UnimplementedUsersServiceServer
	userRepo repository.UserRepository
	logger   *slog.Logger
}

func NewUsersServer(userRepo repository.UserRepository, logger *slog.Logger) *UsersServer {
	return &UsersServer{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser registers a user with the signup bonus and welcome badge
// already applied.
func (s *UsersServer) CreateUser(ctx context.Context, req *greenhomepb.CreateUserRequest) (*greenhomepb.CreateUserResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.GetEmail()))
	if email == "" || !strings.Contains(email, "@") {
		return nil, status.Error(codes.InvalidArgument, "email is required")
	}

	points, badges, _ := gamification.InitialState()
	u, err := s.userRepo.Create(ctx, repository.NewUser{
		Email:         email,
		FirstName:     strings.TrimSpace(req.GetFirstName()),
		LastName:      strings.TrimSpace(req.GetLastName()),
		InitialPoints: points,
		InitialBadges: badges,
	})
	if err != nil {
		s.logger.Error("failed to create user", "email", email, "error", err)
		return nil, common.ToGRPCError(err)
	}

	s.logger.Info("user created", "user_id", u.ID, "email", email)
	return &greenhomepb.CreateUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersServer) GetUser(ctx context.Context, req *greenhomepb.GetUserRequest) (*greenhomepb.GetUserResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		s.logger.Error("failed to get user", "user_id", userID, "error", err)
		return nil, common.ToGRPCError(err)
	}
	return &greenhomepb.GetUserResponse{User: utils.ToPBUser(u)}, nil
}

func (s *UsersServer) Leaderboard(ctx context.Context, req *greenhomepb.LeaderboardRequest) (*greenhomepb.LeaderboardResponse, error) {
	entries, err := s.userRepo.Leaderboard(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list leaderboard", "error", err)
		return nil, common.ToGRPCError(err)
	}

	out := make([]*greenhomepb.LeaderboardEntry, 0, len(entries))
	for i, e := range entries {
		out = append(out, &greenhomepb.LeaderboardEntry{
			Rank:       int32(i + 1),
			UserId:     e.UserID.String(),
			Email:      e.Email,
			Points:     int32(e.Points),
			BadgeCount: int32(e.BadgeCount),
		})
	}
	return &greenhomepb.LeaderboardResponse{Entries: out}, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "user_id must be a UUID")
	}
	return id, nil
}
