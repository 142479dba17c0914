package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScanEventRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewScanEventRepo(pool *pgxpool.Pool, logger *slog.Logger) *ScanEventRepo {
	return &ScanEventRepo{pool: pool, logger: logger}
}

func (p *ScanEventRepo) Save(ctx context.Context, ev *domain.ScanEvent) error {
	const op = "postgres.ScanEvent.Save"

	if ev == nil || ev.ID == uuid.Nil || ev.QRID == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	const query = `
		INSERT INTO scan_events (
			id, qr_id, area_id, guard_id, guard_email, original_content,
			device_lat, device_lng, distance_m, outcome, reason, address, scanned_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := p.pool.Exec(ctx, query,
		ev.ID,
		ev.QRID,
		ev.AreaID,
		ev.GuardID,
		ev.GuardEmail,
		ev.OriginalContent,
		ev.DeviceLat,
		ev.DeviceLng,
		ev.DistanceMeters,
		string(ev.Outcome),
		ev.Reason,
		ev.Address,
		ev.ScannedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("qr_id", ev.QRID),
		)
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *ScanEventRepo) List(ctx context.Context, f domain.ScanFilter) ([]*domain.ScanEvent, int64, error) {
	const op = "postgres.ScanEvent.List"

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	where, args := scanFilterClause(f)

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scan_events`+where, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT id, qr_id, area_id, guard_id, guard_email, original_content,
		       device_lat, device_lng, distance_m, outcome, reason, address, scanned_at
		FROM scan_events%s
		ORDER BY scanned_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	events := make([]*domain.ScanEvent, 0, f.Limit)
	for rows.Next() {
		var (
			ev      domain.ScanEvent
			outcome string
		)
		if err := rows.Scan(
			&ev.ID,
			&ev.QRID,
			&ev.AreaID,
			&ev.GuardID,
			&ev.GuardEmail,
			&ev.OriginalContent,
			&ev.DeviceLat,
			&ev.DeviceLng,
			&ev.DistanceMeters,
			&outcome,
			&ev.Reason,
			&ev.Address,
			&ev.ScannedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		ev.Outcome = domain.ScanOutcome(outcome)
		events = append(events, &ev)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return events, total, nil
}

func scanFilterClause(f domain.ScanFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.AreaID != "" {
		args = append(args, f.AreaID)
		conds = append(conds, fmt.Sprintf("area_id = $%d", len(args)))
	}
	if f.GuardID != uuid.Nil {
		args = append(args, f.GuardID)
		conds = append(conds, fmt.Sprintf("guard_id = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
