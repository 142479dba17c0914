package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewStats(pool *pgxpool.Pool, logger *slog.Logger) *StatsRepo {
	return &StatsRepo{pool: pool, logger: logger}
}

// statsScope turns the optional area and time bounds into a WHERE clause.
// $1 is the area ('' = any), $2 the lower time bound (NULL = none).
const statsScope = `
	WHERE ($1 = '' OR area_id = $1)
	  AND ($2::timestamptz IS NULL OR scanned_at >= $2)
`

func sinceArg(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (p *StatsRepo) CountScans(ctx context.Context, areaID string, since time.Time) (int64, error) {
	const op = "postgres.Stats.CountScans"

	var cnt int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM scan_events`+statsScope, areaID, sinceArg(since)).Scan(&cnt); err != nil {
		p.logger.Error("db queryrow scan failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("area_id", areaID),
		)
		return 0, e.WrapError(ctx, op, err)
	}
	return cnt, nil
}

func (p *StatsRepo) CountByOutcome(ctx context.Context, areaID string, since time.Time) (map[domain.ScanOutcome]int64, error) {
	const op = "postgres.Stats.CountByOutcome"

	rows, err := p.pool.Query(ctx,
		`SELECT outcome, COUNT(*) FROM scan_events`+statsScope+`GROUP BY outcome`,
		areaID, sinceArg(since),
	)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make(map[domain.ScanOutcome]int64)
	for rows.Next() {
		var (
			outcome string
			n       int64
		)
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out[domain.ScanOutcome(outcome)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *StatsRepo) TopGuards(ctx context.Context, areaID string, since time.Time, limit int) ([]domain.GuardActivity, error) {
	const op = "postgres.Stats.TopGuards"

	if limit <= 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	rows, err := p.pool.Query(ctx, `
		SELECT guard_email, COUNT(*) AS n
		FROM scan_events`+statsScope+`
		  AND outcome IN ('bound', 'accepted')
		GROUP BY guard_email
		ORDER BY n DESC, guard_email
		LIMIT $3
	`, areaID, sinceArg(since), limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.GuardActivity, 0, limit)
	for rows.Next() {
		var g domain.GuardActivity
		if err := rows.Scan(&g.GuardEmail, &g.ScanCount); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}

func (p *StatsRepo) AreaSummaries(ctx context.Context) ([]domain.AreaSummary, error) {
	const op = "postgres.Stats.AreaSummaries"

	rows, err := p.pool.Query(ctx, `
		SELECT area_id,
		       COUNT(*),
		       COUNT(*) FILTER (WHERE outcome IN ('bound', 'accepted')),
		       COUNT(*) FILTER (WHERE outcome NOT IN ('bound', 'accepted'))
		FROM scan_events
		GROUP BY area_id
		ORDER BY area_id
	`)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.AreaSummary, 0)
	for rows.Next() {
		var a domain.AreaSummary
		if err := rows.Scan(&a.AreaID, &a.TotalScans, &a.Accepted, &a.Rejected); err != nil {
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return out, nil
}
