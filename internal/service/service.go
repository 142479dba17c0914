package service

import (
	"context"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go
type QRLocationRepository interface {
	Create(ctx context.Context, loc *domain.QRLocation) error
	Get(ctx context.Context, id string) (*domain.QRLocation, error)
	GetByArea(ctx context.Context, areaID string) (*domain.QRLocation, error)
	List(ctx context.Context, page, limit int) ([]*domain.QRLocation, int64, error)
	// BindCoordinates sets coordinates only while they are still unset.
	// A location that is already bound yields e.ErrConflict.
	BindCoordinates(ctx context.Context, id string, p domain.GeoPoint, at time.Time) error
}

type ScanEventRepository interface {
	Save(ctx context.Context, ev *domain.ScanEvent) error
	List(ctx context.Context, f domain.ScanFilter) ([]*domain.ScanEvent, int64, error)
}

type IdentityRepository interface {
	Create(ctx context.Context, id *domain.Identity) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindGuardByEmail(ctx context.Context, email string) (*domain.Identity, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	// SetActiveBySupervisor flips every guard reporting to supervisorID and
	// returns how many rows changed.
	SetActiveBySupervisor(ctx context.Context, supervisorID uuid.UUID, active bool) (int64, error)
	List(ctx context.Context, f domain.IdentityFilter) ([]*domain.Identity, int64, error)
	CountGuardsInArea(ctx context.Context, areaID string) (int64, error)
}

// StatsRepository aggregates scan events. An empty areaID means all areas,
// a zero since means no lower time bound.
type StatsRepository interface {
	CountScans(ctx context.Context, areaID string, since time.Time) (int64, error)
	CountByOutcome(ctx context.Context, areaID string, since time.Time) (map[domain.ScanOutcome]int64, error)
	TopGuards(ctx context.Context, areaID string, since time.Time, limit int) ([]domain.GuardActivity, error)
	AreaSummaries(ctx context.Context) ([]domain.AreaSummary, error)
}

type ExportQueue interface {
	Enqueue(ctx context.Context, rec domain.ExportRecord) error
}

type Geocoder interface {
	ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error)
}

type ScanMetrics interface {
	ObserveScan(outcome domain.ScanOutcome, distanceMeters *float64)
	ObserveScanError(kind string)
}

type TokenIssuer interface {
	Issue(p domain.Principal) (string, time.Time, error)
}

// Use-cases consumed by the HTTP layer.

type Scanner interface {
	Scan(ctx context.Context, req domain.ScanRequest) (domain.ScanResult, error)
	Validate(ctx context.Context, req domain.ValidateRequest) (domain.ValidateResult, error)
}

type QRLocationManager interface {
	CreateForArea(ctx context.Context, supervisor domain.Principal, label string) (domain.CreateQRLocationResponse, error)
	GetForArea(ctx context.Context, areaID string) (*domain.QRLocation, error)
	List(ctx context.Context, page, limit int) ([]*domain.QRLocation, int64, error)
}

type ScanHistory interface {
	List(ctx context.Context, f domain.ScanFilter) (domain.ListScansResponse, error)
}

type StatsService interface {
	AreaDashboard(ctx context.Context, areaID string) (*domain.AreaDashboard, error)
	SystemStats(ctx context.Context) (*domain.SystemStats, error)
}

type IdentityService interface {
	Create(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	List(ctx context.Context, f domain.IdentityFilter) (domain.ListIdentitiesResponse, error)
	CreateGuard(ctx context.Context, supervisor domain.Principal, req domain.CreateGuardRequest) (*domain.Identity, error)
	ListGuards(ctx context.Context, supervisor domain.Principal, activeOnly bool, page, limit int) (domain.ListIdentitiesResponse, error)
	Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) (bool, error)
}

type Service struct {
	Scanner           Scanner
	QRLocationManager QRLocationManager
	ScanHistory       ScanHistory
	StatsService      StatsService
	IdentityService   IdentityService
}

func NewService(
	scanner Scanner,
	qrLocations QRLocationManager,
	history ScanHistory,
	stats StatsService,
	identities IdentityService,
) *Service {
	return &Service{
		Scanner:           scanner,
		QRLocationManager: qrLocations,
		ScanHistory:       history,
		StatsService:      stats,
		IdentityService:   identities,
	}
}
