package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	greenhomepb "github.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1"
	"github.com/mygreenhome/greenhome-tracker/internal/export"
	"github.com/mygreenhome/greenhome-tracker/internal/utils"
)

type ExportServer struct {
	greenhomepb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportHistory(ctx context.Context, req *greenhomepb.ExportHistoryRequest) (*greenhomepb.ExportHistoryResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := utils.ParseYMD(fd)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := utils.ParseYMD(td)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportHistoryXLSX(ctx, userID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "user_id", userID, "error", err)
		return nil, status.Error(codes.Internal, "export failed")
	}
	return &greenhomepb.ExportHistoryResponse{Xlsx: xlsx}, nil
}
