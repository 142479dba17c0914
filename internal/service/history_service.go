package service

import (
	"context"
	"log/slog"

	"github.com/Vinayak4780/Guard/internal/domain"
)

type historyService struct {
	events ScanEventRepository
	logger *slog.Logger
}

func NewHistoryService(events ScanEventRepository, logger *slog.Logger) ScanHistory {
	return &historyService{events: events, logger: logger}
}

func (s *historyService) List(ctx context.Context, f domain.ScanFilter) (domain.ListScansResponse, error) {
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)

	scans, total, err := s.events.List(ctx, f)
	if err != nil {
		s.logger.Error("list scans failed",
			slog.String("area_id", f.AreaID),
			slog.Any("error", err),
		)
		return domain.ListScansResponse{}, err
	}
	if scans == nil {
		scans = []*domain.ScanEvent{}
	}

	return domain.ListScansResponse{
		Scans: scans,
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
	}, nil
}
