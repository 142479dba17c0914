package service

import (
	"context"

	"github.com/Vinayak4780/Guard/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) ListQRLocations(ctx context.Context, page, limit int) ([]*domain.QRLocation, int64, error) {
	return s.QRLocationManager.List(ctx, page, limit)
}

func (s *Service) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	return s.StatsService.SystemStats(ctx)
}

func (s *Service) CreateIdentity(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error) {
	return s.IdentityService.Create(ctx, req)
}

func (s *Service) SetIdentityActive(ctx context.Context, id uuid.UUID, active bool) error {
	return s.IdentityService.SetActive(ctx, id, active)
}

func (s *Service) ListIdentities(ctx context.Context, f domain.IdentityFilter) (domain.ListIdentitiesResponse, error) {
	return s.IdentityService.List(ctx, f)
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	return s.IdentityService.Login(ctx, req)
}

func (s *Service) BootstrapAdmin(ctx context.Context, email, password string) (bool, error) {
	return s.IdentityService.EnsureAdmin(ctx, email, password)
}
