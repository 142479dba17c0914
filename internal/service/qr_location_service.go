package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

type qrLocationService struct {
	repo   QRLocationRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewQRLocationService(repo QRLocationRepository, logger *slog.Logger) QRLocationManager {
	return &qrLocationService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateForArea returns the area's existing location when there is one, so
// repeated calls never produce a second QR code for the same area.
func (s *qrLocationService) CreateForArea(ctx context.Context, supervisor domain.Principal, label string) (domain.CreateQRLocationResponse, error) {
	if supervisor.Role != domain.RoleSupervisor || supervisor.AreaID == "" {
		return domain.CreateQRLocationResponse{}, e.ErrForbidden
	}

	existing, err := s.repo.GetByArea(ctx, supervisor.AreaID)
	if err == nil {
		return domain.CreateQRLocationResponse{Location: existing, Created: false}, nil
	}
	if !errors.Is(err, e.ErrNotFound) {
		s.logger.Error("GetByArea failed", slog.String("area_id", supervisor.AreaID), slog.Any("error", err))
		return domain.CreateQRLocationResponse{}, err
	}

	label = strings.TrimSpace(label)
	if label == "" {
		label = supervisor.AreaID
	}

	loc := &domain.QRLocation{
		ID:           NewQRID(),
		AreaID:       supervisor.AreaID,
		Label:        label,
		SupervisorID: supervisor.ID,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, loc); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			// concurrent create for the same area
			existing, gerr := s.repo.GetByArea(ctx, supervisor.AreaID)
			if gerr == nil {
				return domain.CreateQRLocationResponse{Location: existing, Created: false}, nil
			}
		}
		s.logger.Error("create qr location failed", slog.String("area_id", supervisor.AreaID), slog.Any("error", err))
		return domain.CreateQRLocationResponse{}, err
	}

	s.logger.Info("qr location created",
		slog.String("qr_id", loc.ID),
		slog.String("area_id", loc.AreaID),
	)
	return domain.CreateQRLocationResponse{Location: loc, Created: true}, nil
}

func (s *qrLocationService) GetForArea(ctx context.Context, areaID string) (*domain.QRLocation, error) {
	if areaID == "" {
		return nil, e.ErrInvalidInput
	}
	return s.repo.GetByArea(ctx, areaID)
}

func (s *qrLocationService) List(ctx context.Context, page, limit int) ([]*domain.QRLocation, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.repo.List(ctx, page, limit)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
