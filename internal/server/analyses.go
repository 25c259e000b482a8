package server

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mygreenhome/greenhome-tracker/constants"
	greenhomepb "github.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1"
	"github.com/mygreenhome/greenhome-tracker/internal/async"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/core"
	"github.com/mygreenhome/greenhome-tracker/internal/entity"
	"github.com/mygreenhome/greenhome-tracker/internal/gamification"
	"github.com/mygreenhome/greenhome-tracker/internal/metrics"
	"github.com/mygreenhome/greenhome-tracker/internal/repository"
	"github.com/mygreenhome/greenhome-tracker/internal/trends"
	"github.com/mygreenhome/greenhome-tracker/internal/utils"
)

const maxUploadBytes = 10 << 20

type AnalysesServer struct {
	greenhomepb.UnimplementedAnalysesServiceServer
	proc       *core.Processor
	queue      *async.AnalysisQueue
	resultRepo repository.BillResultRepository
	uploadDir  string
	logger     *slog.Logger
	rng        *rand.Rand
}

func NewAnalysesServer(
	proc *core.Processor,
	queue *async.AnalysisQueue,
	resultRepo repository.BillResultRepository,
	uploadDir string,
	logger *slog.Logger,
) *AnalysesServer {
	return &AnalysesServer{
		proc:       proc,
		queue:      queue,
		resultRepo: resultRepo,
		uploadDir:  uploadDir,
		logger:     logger,
		rng:        metrics.NewSharedRand(time.Now().UnixNano()),
	}
}

// AnalyzeBill accepts an uploaded bill image and runs the full pipeline.
// The synchronous path owns the temp file and removes it on every exit;
// the asynchronous path hands ownership to the queue.
func (s *AnalysesServer) AnalyzeBill(ctx context.Context, req *greenhomepb.AnalyzeBillRequest) (*greenhomepb.AnalyzeBillResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}
	if len(req.GetImage()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "image is required")
	}
	if len(req.GetImage()) > maxUploadBytes {
		return nil, status.Error(codes.InvalidArgument, "image exceeds 10MB limit")
	}
	ext := constants.NormalizeExt(filepath.Ext(req.GetFilename()))
	if !constants.IsAllowedExt(ext) {
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file type %q", ext)
	}

	path, err := s.persistUpload(userID, ext, req.GetImage())
	if err != nil {
		s.logger.Error("failed to persist upload", "user_id", userID, "error", err)
		return nil, common.InternalError("could not store upload")
	}

	if req.GetAsynchronous() {
		job, err := s.proc.StartJob(ctx, userID, path)
		if err != nil {
			_ = os.Remove(path)
			return nil, common.ToGRPCError(err)
		}
		// Enqueue owns the file from here; it cleans up on refusal.
		if err := s.queue.Enqueue(ctx, async.Job{JobID: job.ID, UserID: userID, ImagePath: path}); err != nil {
			_ = s.proc.AbortJob(ctx, job.ID, "analysis queue refused the job")
			return nil, common.ToGRPCError(err)
		}
		return &greenhomepb.AnalyzeBillResponse{JobId: job.ID.String()}, nil
	}

	defer func() {
		_ = os.Remove(path)
	}()

	ctx = common.WithRequestID(ctx, uuid.NewString())
	analysis, err := s.proc.AnalyzeBill(ctx, userID, path)
	if err != nil {
		s.logger.Error("analysis failed", "user_id", userID, "error", err)
		return nil, common.ToGRPCError(err)
	}

	return &greenhomepb.AnalyzeBillResponse{
		Result:       utils.ToPBBillResult(analysis.Result),
		EarnedPoints: int32(analysis.Outcome.EarnedPoints),
		NewBadges:    toBadgeAwards(analysis.Outcome.NewBadges),
		Tips:         s.tipsFor(analysis.Result),
		JobId:        analysis.JobID.String(),
	}, nil
}

func (s *AnalysesServer) ListResults(ctx context.Context, req *greenhomepb.ListResultsRequest) (*greenhomepb.ListResultsResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.ListByUser(ctx, userID, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("failed to list results", "user_id", userID, "error", err)
		return nil, common.ToGRPCError(err)
	}

	out := make([]*greenhomepb.BillResult, 0, len(results))
	for _, r := range results {
		out = append(out, utils.ToPBBillResult(r))
	}
	return &greenhomepb.ListResultsResponse{Results: out}, nil
}

// GetTrendReport compares the two newest results and layers smart
// suggestions over the full recent history.
func (s *AnalysesServer) GetTrendReport(ctx context.Context, req *greenhomepb.TrendReportRequest) (*greenhomepb.TrendReportResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	history, err := s.resultRepo.ListByUser(ctx, userID, 12)
	if err != nil {
		s.logger.Error("failed to load history", "user_id", userID, "error", err)
		return nil, common.ToGRPCError(err)
	}
	if len(history) < 2 {
		return &greenhomepb.TrendReportResponse{
			Comparable: false,
			Message:    "Analyze at least two bills to see your usage trend.",
		}, nil
	}

	cmp := trends.Compare(*history[0], *history[1])
	percent := "N/A"
	if !cmp.PercentNotComputable {
		percent = fmt.Sprintf("%.1f", cmp.PercentChange)
	}

	deref := make([]entity.BillResult, 0, len(history))
	for _, r := range history {
		deref = append(deref, *r)
	}
	suggestions := trends.SmartSuggestions(
		history[0].TotalConsumption,
		&history[1].TotalConsumption,
		history[0].TotalAmount,
		deref,
	)
	pbSuggestions := make([]*greenhomepb.Suggestion, 0, len(suggestions))
	for _, sg := range suggestions {
		pbSuggestions = append(pbSuggestions, &greenhomepb.Suggestion{
			Type:    sg.Type,
			Message: sg.Message,
			Action:  sg.Action,
		})
	}

	return &greenhomepb.TrendReportResponse{
		Comparable:    true,
		DeltaKwh:      cmp.DeltaKWh,
		PercentChange: percent,
		Message:       cmp.Message,
		Summary:       cmp.Summary,
		Advice:        cmp.Advice,
		Suggestions:   pbSuggestions,
	}, nil
}

func (s *AnalysesServer) persistUpload(userID uuid.UUID, ext string, data []byte) (string, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("%s-%s.%s", userID, uuid.New(), ext)
	path := filepath.Join(s.uploadDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}

func (s *AnalysesServer) tipsFor(r *entity.BillResult) []string {
	c, err := metrics.NewConsumption(r.TotalConsumption)
	if err != nil {
		return nil
	}
	return metrics.GenerateTips(c, r.TotalAmount, s.rng)
}

func toBadgeAwards(keys []constants.BadgeKey) []*greenhomepb.BadgeAward {
	out := make([]*greenhomepb.BadgeAward, 0, len(keys))
	for _, k := range keys {
		b, ok := gamification.Lookup(k)
		if !ok {
			continue
		}
		out = append(out, &greenhomepb.BadgeAward{
			Key:         string(b.Key),
			Name:        b.Name,
			Description: b.Description,
			Points:      int32(b.Points),
		})
	}
	return out
}
