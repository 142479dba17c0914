package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/google/uuid"
)

const DefaultRadiusMeters = 100.0

type ScanConfig struct {
	RadiusMeters   float64
	GeocodeTimeout time.Duration
}

type ScanDeps struct {
	Locations QRLocationRepository
	Events    ScanEventRepository
	Guards    IdentityRepository
	// optional
	Export   ExportQueue
	Geocoder Geocoder
	Metrics  ScanMetrics
}

type scanService struct {
	locations QRLocationRepository
	events    ScanEventRepository
	guards    IdentityRepository
	export    ExportQueue
	geocoder  Geocoder
	metrics   ScanMetrics

	extractor *QRExtractor
	cfg       ScanConfig
	logger    *slog.Logger
	now       func() time.Time
}

func NewScanService(deps ScanDeps, cfg ScanConfig, logger *slog.Logger) Scanner {
	return newScanService(deps, cfg, logger)
}

func newScanService(deps ScanDeps, cfg ScanConfig, logger *slog.Logger) *scanService {
	if cfg.RadiusMeters <= 0 {
		cfg.RadiusMeters = DefaultRadiusMeters
	}
	if cfg.GeocodeTimeout <= 0 {
		cfg.GeocodeTimeout = 3 * time.Second
	}
	return &scanService{
		locations: deps.Locations,
		events:    deps.Events,
		guards:    deps.Guards,
		export:    deps.Export,
		geocoder:  deps.Geocoder,
		metrics:   deps.Metrics,
		extractor: NewQRExtractor(),
		cfg:       cfg,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *scanService) Scan(ctx context.Context, req domain.ScanRequest) (domain.ScanResult, error) {
	const op = "service.Scan"

	if req.Lat == nil || req.Lng == nil {
		s.observeError("invalid_coordinates")
		return domain.ScanResult{}, e.ErrInvalidCoordinates
	}
	device := domain.GeoPoint{Lat: *req.Lat, Lng: *req.Lng}
	if !device.Valid() {
		s.observeError("invalid_coordinates")
		return domain.ScanResult{}, e.ErrInvalidCoordinates
	}

	qrID, err := s.extractor.Extract(req.QRContent)
	if err != nil {
		s.logger.Warn("qr extraction failed",
			slog.String("guard_email", req.GuardEmail),
			slog.Int("content_len", len(req.QRContent)),
		)
		s.observeError("invalid_format")
		return domain.ScanResult{}, err
	}

	loc, err := s.lookupLocation(ctx, op, qrID)
	if err != nil {
		return domain.ScanResult{}, err
	}

	guard, err := s.lookupGuard(ctx, op, req.GuardEmail)
	if err != nil {
		return domain.ScanResult{}, err
	}

	ev := &domain.ScanEvent{
		ID:              uuid.New(),
		QRID:            loc.ID,
		AreaID:          loc.AreaID,
		GuardID:         guard.ID,
		GuardEmail:      guard.Email,
		OriginalContent: req.QRContent,
		DeviceLat:       device.Lat,
		DeviceLng:       device.Lng,
		ScannedAt:       s.now(),
	}

	if !loc.Bound() {
		err := s.locations.BindCoordinates(ctx, loc.ID, device, ev.ScannedAt)
		switch {
		case err == nil:
			zero := 0.0
			ev.Outcome = domain.ScanBound
			ev.DistanceMeters = &zero
			s.logger.Info("qr location bound",
				slog.String("qr_id", loc.ID),
				slog.String("area_id", loc.AreaID),
				slog.String("guard_email", guard.Email),
			)
		case errors.Is(err, e.ErrConflict):
			// another scan bound it first; validate against the winner
			s.logger.Info("bind lost race, re-reading location", slog.String("qr_id", loc.ID))
			loc, err = s.locations.Get(ctx, loc.ID)
			if err != nil || !loc.Bound() {
				return s.storeUnavailable(ctx, op, ev, fmt.Errorf("re-read after conflict: %w", errOrUnbound(err)))
			}
		case e.IsStoreFailure(err):
			return s.storeUnavailable(ctx, op, ev, err)
		default:
			// removed between lookup and bind
			s.logger.Warn("qr location vanished before bind", slog.String("qr_id", loc.ID), slog.Any("error", err))
			s.observeError("unknown_qr")
			return domain.ScanResult{}, fmt.Errorf("%s: %w", op, e.ErrUnknownQRLocation)
		}
	}

	if ev.Outcome == "" {
		dist := DistanceMeters(*loc.Coordinates, device)
		ev.DistanceMeters = &dist
		if dist <= s.cfg.RadiusMeters {
			ev.Outcome = domain.ScanAccepted
		} else {
			ev.Outcome = domain.ScanRejectedOutOfRange
			ev.Reason = fmt.Sprintf("%.2f m from the bound location, limit %.0f m", dist, s.cfg.RadiusMeters)
		}
	}

	ev.Address = s.reverseGeocode(ctx, device)

	if err := s.events.Save(ctx, ev); err != nil {
		s.logger.Error("save scan event failed",
			slog.String("qr_id", ev.QRID),
			slog.String("outcome", string(ev.Outcome)),
			slog.Any("error", err),
		)
		s.observeError("store_unavailable")
		return domain.ScanResult{}, fmt.Errorf("%s: %w: %w", op, e.ErrStoreUnavailable, err)
	}

	s.enqueueExport(ctx, ev)
	if s.metrics != nil {
		s.metrics.ObserveScan(ev.Outcome, ev.DistanceMeters)
	}

	s.logger.Info("scan processed",
		slog.String("event_id", ev.ID.String()),
		slog.String("qr_id", ev.QRID),
		slog.String("guard_email", ev.GuardEmail),
		slog.String("outcome", string(ev.Outcome)),
	)

	return s.result(ev), nil
}

func (s *scanService) Validate(ctx context.Context, req domain.ValidateRequest) (domain.ValidateResult, error) {
	const op = "service.Validate"

	qrID, err := s.extractor.Extract(req.QRContent)
	if err != nil {
		return domain.ValidateResult{}, err
	}

	loc, err := s.lookupLocation(ctx, op, qrID)
	if err != nil {
		return domain.ValidateResult{}, err
	}

	res := domain.ValidateResult{
		QRID:         loc.ID,
		AreaID:       loc.AreaID,
		Label:        loc.Label,
		Bound:        loc.Bound(),
		Coordinates:  loc.Coordinates,
		RadiusMeters: s.cfg.RadiusMeters,
	}

	if (req.Lat == nil) != (req.Lng == nil) {
		return domain.ValidateResult{}, fmt.Errorf("%s: lat and lng must be sent together: %w", op, e.ErrInvalidInput)
	}

	if req.Lat != nil && loc.Bound() {
		device := domain.GeoPoint{Lat: *req.Lat, Lng: *req.Lng}
		if !device.Valid() {
			return domain.ValidateResult{}, e.ErrInvalidCoordinates
		}
		dist := DistanceMeters(*loc.Coordinates, device)
		within := dist <= s.cfg.RadiusMeters
		res.DistanceMeters = &dist
		res.WithinRadius = &within
	}

	return res, nil
}

func (s *scanService) lookupLocation(ctx context.Context, op, qrID string) (*domain.QRLocation, error) {
	loc, err := s.locations.Get(ctx, qrID)
	if err == nil {
		return loc, nil
	}
	if !e.IsStoreFailure(err) {
		s.logger.Warn("unknown qr location", slog.String("qr_id", qrID))
		s.observeError("unknown_qr")
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnknownQRLocation)
	}
	s.logger.Error("qr location lookup failed", slog.String("qr_id", qrID), slog.Any("error", err))
	s.observeError("store_unavailable")
	return nil, fmt.Errorf("%s: %w: %w", op, e.ErrStoreUnavailable, err)
}

func (s *scanService) lookupGuard(ctx context.Context, op, email string) (*domain.Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	guard, err := s.guards.FindGuardByEmail(ctx, email)
	switch {
	case err == nil && guard.Active:
		return guard, nil
	case err == nil, !e.IsStoreFailure(err):
		s.logger.Warn("unknown or inactive guard", slog.String("guard_email", email))
		s.observeError("unknown_guard")
		return nil, fmt.Errorf("%s: %w", op, e.ErrUnknownGuard)
	default:
		s.logger.Error("guard lookup failed", slog.String("guard_email", email), slog.Any("error", err))
		s.observeError("store_unavailable")
		return nil, fmt.Errorf("%s: %w: %w", op, e.ErrStoreUnavailable, err)
	}
}

// storeUnavailable records the failed attempt if the event store still
// accepts writes and reports the store failure to the caller.
func (s *scanService) storeUnavailable(ctx context.Context, op string, ev *domain.ScanEvent, cause error) (domain.ScanResult, error) {
	s.logger.Error("bind coordinates failed",
		slog.String("qr_id", ev.QRID),
		slog.Any("error", cause),
	)
	s.observeError("store_unavailable")

	ev.Outcome = domain.ScanRejectedStoreUnavailable
	ev.Reason = "location store unavailable"
	if err := s.events.Save(ctx, ev); err != nil {
		s.logger.Warn("save rejected scan event failed", slog.Any("error", err))
	} else {
		s.enqueueExport(ctx, ev)
	}

	return domain.ScanResult{}, fmt.Errorf("%s: %w: %w", op, e.ErrStoreUnavailable, cause)
}

func (s *scanService) reverseGeocode(ctx context.Context, p domain.GeoPoint) string {
	if s.geocoder == nil {
		return ""
	}
	gctx, cancel := context.WithTimeout(ctx, s.cfg.GeocodeTimeout)
	defer cancel()

	addr, err := s.geocoder.ReverseGeocode(gctx, p)
	if err != nil {
		s.logger.Debug("reverse geocode skipped", slog.Any("error", err))
		return ""
	}
	return addr
}

func (s *scanService) enqueueExport(ctx context.Context, ev *domain.ScanEvent) {
	if s.export == nil {
		return
	}
	if err := s.export.Enqueue(ctx, domain.NewExportRecord(ev)); err != nil {
		s.logger.Error("enqueue export failed", slog.String("event_id", ev.ID.String()), slog.Any("error", err))
	}
}

func (s *scanService) observeError(kind string) {
	if s.metrics != nil {
		s.metrics.ObserveScanError(kind)
	}
}

func (s *scanService) result(ev *domain.ScanEvent) domain.ScanResult {
	return domain.ScanResult{
		EventID:        ev.ID,
		QRID:           ev.QRID,
		Outcome:        ev.Outcome,
		DistanceMeters: ev.DistanceMeters,
		WithinRadius:   ev.Outcome.CountsAsCheckIn(),
		RadiusMeters:   s.cfg.RadiusMeters,
		Reason:         ev.Reason,
		Address:        ev.Address,
		ScannedAt:      ev.ScannedAt,
	}
}

func errOrUnbound(err error) error {
	if err != nil {
		return err
	}
	return errors.New("location still unbound")
}
