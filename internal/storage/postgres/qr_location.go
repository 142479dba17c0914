package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type QRLocationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewQRLocationRepo(pool *pgxpool.Pool, logger *slog.Logger) *QRLocationRepo {
	return &QRLocationRepo{pool: pool, logger: logger}
}

const qrLocationColumns = `id, area_id, label, supervisor_id, lat, lng, bound_at, created_at`

func (p *QRLocationRepo) Create(ctx context.Context, loc *domain.QRLocation) error {
	const op = "postgres.QRLocation.Create"

	if loc == nil || loc.ID == "" || loc.AreaID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO qr_locations (id, area_id, label, supervisor_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		loc.ID,
		loc.AreaID,
		loc.Label,
		loc.SupervisorID,
		loc.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *QRLocationRepo) Get(ctx context.Context, id string) (*domain.QRLocation, error) {
	const op = "postgres.QRLocation.Get"

	row := p.pool.QueryRow(ctx, `SELECT `+qrLocationColumns+` FROM qr_locations WHERE id = $1`, id)
	loc, err := scanQRLocation(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return loc, nil
}

func (p *QRLocationRepo) GetByArea(ctx context.Context, areaID string) (*domain.QRLocation, error) {
	const op = "postgres.QRLocation.GetByArea"

	row := p.pool.QueryRow(ctx, `SELECT `+qrLocationColumns+` FROM qr_locations WHERE area_id = $1`, areaID)
	loc, err := scanQRLocation(row)
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return loc, nil
}

func (p *QRLocationRepo) List(ctx context.Context, page, limit int) ([]*domain.QRLocation, int64, error) {
	const op = "postgres.QRLocation.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM qr_locations`).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT `+qrLocationColumns+`
		FROM qr_locations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	locs := make([]*domain.QRLocation, 0, limit)
	for rows.Next() {
		loc, err := scanQRLocation(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		locs = append(locs, loc)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return locs, total, nil
}

// BindCoordinates is a compare-and-set: the row is only updated while its
// coordinates are still NULL, so concurrent first scans have one winner.
func (p *QRLocationRepo) BindCoordinates(ctx context.Context, id string, pt domain.GeoPoint, at time.Time) error {
	const op = "postgres.QRLocation.BindCoordinates"

	const query = `
		UPDATE qr_locations
		SET lat = $2, lng = $3, bound_at = $4
		WHERE id = $1 AND lat IS NULL
	`

	cmd, err := p.pool.Exec(ctx, query, id, pt.Lat, pt.Lng, at)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM qr_locations WHERE id = $1)`, id).Scan(&exists); err != nil {
		return e.WrapError(ctx, op, err)
	}
	if !exists {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, e.ErrConflict)
}

func scanQRLocation(row pgx.Row) (*domain.QRLocation, error) {
	var (
		loc      domain.QRLocation
		lat, lng *float64
	)
	if err := row.Scan(
		&loc.ID,
		&loc.AreaID,
		&loc.Label,
		&loc.SupervisorID,
		&lat,
		&lng,
		&loc.BoundAt,
		&loc.CreatedAt,
	); err != nil {
		return nil, err
	}
	if lat != nil && lng != nil {
		loc.Coordinates = &domain.GeoPoint{Lat: *lat, Lng: *lng}
	}
	return &loc, nil
}
