package server

import (
	"context"
	"errors"
	"log/slog"

	spendsyncv1 "github.com/joseph-ayodele/spendsync/gen/proto/spendsync/v1"
	"github.com/joseph-ayodele/spendsync/internal/common"
	syncer "github.com/joseph-ayodele/spendsync/internal/sync"
	"github.com/joseph-ayodele/spendsync/internal/utils"
)

type SyncService struct {
	spendsyncv1.UnimplementedSyncServiceServer
	coordinator *syncer.Coordinator
	logger      *slog.Logger
}

func NewSyncService(coordinator *syncer.Coordinator, logger *slog.Logger) *SyncService {
	return &SyncService{
		coordinator: coordinator,
		logger:      logger,
	}
}

func (s *SyncService) RunSync(ctx context.Context, req *spendsyncv1.RunSyncRequest) (*spendsyncv1.RunSyncResponse, error) {
	s.logger.Info("sync requested", "incremental", req.GetIncremental())

	summary, err := s.coordinator.Run(ctx, req.GetIncremental())
	if err != nil {
		if errors.Is(err, syncer.ErrSyncInProgress) {
			return nil, common.AbortedError("a sync run is already in progress")
		}
		s.logger.Error("sync run failed", "error", err)
		return nil, common.InternalErrorf("sync run: %v", err)
	}

	return &spendsyncv1.RunSyncResponse{Summary: utils.ToPBSyncSummary(summary)}, nil
}

func (s *SyncService) GetSyncStatus(_ context.Context, _ *spendsyncv1.GetSyncStatusRequest) (*spendsyncv1.GetSyncStatusResponse, error) {
	status, lastRun := s.coordinator.Status()
	return &spendsyncv1.GetSyncStatusResponse{
		Status:  string(status),
		LastRun: utils.ToPBSyncSummary(lastRun),
	}, nil
}

func (s *SyncService) ResetSyncCursor(ctx context.Context, _ *spendsyncv1.ResetSyncCursorRequest) (*spendsyncv1.ResetSyncCursorResponse, error) {
	if err := s.coordinator.ResetCursor(ctx); err != nil {
		s.logger.Error("failed to reset sync cursor", "error", err)
		return nil, common.InternalErrorf("reset cursor: %v", err)
	}
	s.logger.Info("sync cursor reset")
	return &spendsyncv1.ResetSyncCursorResponse{}, nil
}
