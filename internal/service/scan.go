package service

import (
	"context"

	"github.com/Vinayak4780/Guard/internal/domain"
)

func (s *Service) Scan(ctx context.Context, req domain.ScanRequest) (domain.ScanResult, error) {
	return s.Scanner.Scan(ctx, req)
}

func (s *Service) ValidateQR(ctx context.Context, req domain.ValidateRequest) (domain.ValidateResult, error) {
	return s.Scanner.Validate(ctx, req)
}

func (s *Service) ListScans(ctx context.Context, f domain.ScanFilter) (domain.ListScansResponse, error) {
	return s.ScanHistory.List(ctx, f)
}
