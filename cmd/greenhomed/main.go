package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	greenhomepb "github.com/mygreenhome/greenhome-tracker/gen/proto/greenhome/v1"
	"github.com/mygreenhome/greenhome-tracker/internal/async"
	"github.com/mygreenhome/greenhome-tracker/internal/chat"
	"github.com/mygreenhome/greenhome-tracker/internal/chat/gemini"
	"github.com/mygreenhome/greenhome-tracker/internal/common"
	"github.com/mygreenhome/greenhome-tracker/internal/core"
	"github.com/mygreenhome/greenhome-tracker/internal/export"
	"github.com/mygreenhome/greenhome-tracker/internal/ocr"
	repo "github.com/mygreenhome/greenhome-tracker/internal/repository"
	svc "github.com/mygreenhome/greenhome-tracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	usersRepo := repo.NewUserRepository(entc, logger)
	resultsRepo := repo.NewBillResultRepository(entc, logger)
	jobsRepo := repo.NewAnalysisJobRepository(entc, logger)

	extractor := ocr.NewExtractor(ocr.Config{
		Tesseract:     cfg.OCR.Tesseract,
		TesseractLang: cfg.OCR.TesseractLang,
		TessdataDir:   cfg.OCR.TessdataDir,
		Timeout:       cfg.OCR.Timeout,
	}, logger)

	processor := core.NewProcessor(logger, extractor, usersRepo, resultsRepo, jobsRepo)
	queue := async.NewAnalysisQueue(processor, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(3*time.Minute),
	)

	usersService := svc.NewUsersServer(usersRepo, logger)
	greenhomepb.RegisterUsersServiceServer(grpcServer, usersService)

	analysesService := svc.NewAnalysesServer(processor, queue, resultsRepo, cfg.Server.UploadDir, logger)
	greenhomepb.RegisterAnalysesServiceServer(grpcServer, analysesService)

	exportService := svc.NewExportServer(export.NewService(resultsRepo, logger), logger)
	greenhomepb.RegisterExportServiceServer(grpcServer, exportService)

	geminiClient := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Chat.APIKey,
		BaseURL: cfg.Chat.BaseURL,
		Model:   cfg.Chat.Model,
		Timeout: cfg.Chat.Timeout,
	}, logger)
	advisor := chat.NewAdvisor(logger, geminiClient, usersRepo, resultsRepo)
	chatService := svc.NewChatServer(advisor, logger)
	greenhomepb.RegisterChatServiceServer(grpcServer, chatService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("greenhome-tracker listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	queue.Shutdown(context.Background())
	grpcServer.GracefulStop()
}
