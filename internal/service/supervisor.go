package service

import (
	"context"

	"github.com/Vinayak4780/Guard/internal/domain"
)

func (s *Service) CreateQRLocation(ctx context.Context, supervisor domain.Principal, label string) (domain.CreateQRLocationResponse, error) {
	return s.QRLocationManager.CreateForArea(ctx, supervisor, label)
}

func (s *Service) QRLocationForArea(ctx context.Context, areaID string) (*domain.QRLocation, error) {
	return s.QRLocationManager.GetForArea(ctx, areaID)
}

func (s *Service) AreaDashboard(ctx context.Context, areaID string) (*domain.AreaDashboard, error) {
	return s.StatsService.AreaDashboard(ctx, areaID)
}

func (s *Service) CreateGuard(ctx context.Context, supervisor domain.Principal, req domain.CreateGuardRequest) (*domain.Identity, error) {
	return s.IdentityService.CreateGuard(ctx, supervisor, req)
}

func (s *Service) ListGuards(ctx context.Context, supervisor domain.Principal, activeOnly bool, page, limit int) (domain.ListIdentitiesResponse, error) {
	return s.IdentityService.ListGuards(ctx, supervisor, activeOnly, page, limit)
}
