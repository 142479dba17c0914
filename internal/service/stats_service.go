package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

const (
	dashboardTopGuards   = 5
	dashboardRecentScans = 10
)

type StatsDeps struct {
	Stats      StatsRepository
	Events     ScanEventRepository
	Locations  QRLocationRepository
	Identities IdentityRepository
}

type statsService struct {
	stats      StatsRepository
	events     ScanEventRepository
	locations  QRLocationRepository
	identities IdentityRepository
	logger     *slog.Logger
	now        func() time.Time
}

func NewStatsService(deps StatsDeps, logger *slog.Logger) StatsService {
	return &statsService{
		stats:      deps.Stats,
		events:     deps.Events,
		locations:  deps.Locations,
		identities: deps.Identities,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *statsService) AreaDashboard(ctx context.Context, areaID string) (*domain.AreaDashboard, error) {
	if areaID == "" {
		return nil, e.ErrInvalidInput
	}

	now := s.now()
	today := startOfDay(now)
	week := startOfWeek(now)

	d := &domain.AreaDashboard{AreaID: areaID}

	loc, err := s.locations.GetByArea(ctx, areaID)
	switch {
	case err == nil:
		d.HasQRLocation = true
		d.QRLocation = loc
	case errors.Is(err, e.ErrNotFound):
	default:
		return nil, s.fail("GetByArea", areaID, err)
	}

	if d.AssignedGuards, err = s.identities.CountGuardsInArea(ctx, areaID); err != nil {
		return nil, s.fail("CountGuardsInArea", areaID, err)
	}
	if d.TodayScans, err = s.stats.CountScans(ctx, areaID, today); err != nil {
		return nil, s.fail("CountScans today", areaID, err)
	}
	if d.WeekScans, err = s.stats.CountScans(ctx, areaID, week); err != nil {
		return nil, s.fail("CountScans week", areaID, err)
	}
	if d.TotalScans, err = s.stats.CountScans(ctx, areaID, time.Time{}); err != nil {
		return nil, s.fail("CountScans total", areaID, err)
	}
	if d.Outcomes, err = s.stats.CountByOutcome(ctx, areaID, time.Time{}); err != nil {
		return nil, s.fail("CountByOutcome", areaID, err)
	}
	if d.TopGuards, err = s.stats.TopGuards(ctx, areaID, week, dashboardTopGuards); err != nil {
		return nil, s.fail("TopGuards", areaID, err)
	}

	recent, _, err := s.events.List(ctx, domain.ScanFilter{AreaID: areaID, Page: 1, Limit: dashboardRecentScans})
	if err != nil {
		return nil, s.fail("recent scans", areaID, err)
	}
	d.RecentScans = recent

	if d.Outcomes == nil {
		d.Outcomes = map[domain.ScanOutcome]int64{}
	}
	if d.TopGuards == nil {
		d.TopGuards = []domain.GuardActivity{}
	}
	if d.RecentScans == nil {
		d.RecentScans = []*domain.ScanEvent{}
	}
	return d, nil
}

func (s *statsService) SystemStats(ctx context.Context) (*domain.SystemStats, error) {
	areas, err := s.stats.AreaSummaries(ctx)
	if err != nil {
		return nil, s.fail("AreaSummaries", "", err)
	}

	out := &domain.SystemStats{Areas: areas}
	if out.Areas == nil {
		out.Areas = []domain.AreaSummary{}
	}
	for _, a := range out.Areas {
		out.TotalScans += a.TotalScans
	}
	return out, nil
}

func (s *statsService) fail(step, areaID string, err error) error {
	s.logger.Error("stats query failed",
		slog.String("step", step),
		slog.String("area_id", areaID),
		slog.Any("error", err),
	)
	return err
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek returns Monday 00:00 of t's week.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return startOfDay(t).AddDate(0, 0, -offset)
}
