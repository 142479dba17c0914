package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdentityRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewIdentityRepo(pool *pgxpool.Pool, logger *slog.Logger) *IdentityRepo {
	return &IdentityRepo{pool: pool, logger: logger}
}

const identityColumns = `id, email, name, role, area_id, supervisor_id, active, password_hash, created_at`

func (p *IdentityRepo) Create(ctx context.Context, id *domain.Identity) error {
	const op = "postgres.Identity.Create"

	if id == nil || id.Email == "" {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if id.ID == uuid.Nil {
		id.ID = uuid.New()
	}
	if id.CreatedAt.IsZero() {
		id.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO identities (` + identityColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := p.pool.Exec(ctx, query,
		id.ID,
		id.Email,
		id.Name,
		string(id.Role),
		id.AreaID,
		id.SupervisorID,
		id.Active,
		id.PasswordHash,
		id.CreatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	return nil
}

func (p *IdentityRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Identity, error) {
	const op = "postgres.Identity.Get"

	ident, err := scanIdentity(p.pool.QueryRow(ctx, `SELECT `+identityColumns+` FROM identities WHERE id = $1`, id))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return ident, nil
}

func (p *IdentityRepo) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	const op = "postgres.Identity.FindByEmail"

	ident, err := scanIdentity(p.pool.QueryRow(ctx, `SELECT `+identityColumns+` FROM identities WHERE email = $1`, email))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return ident, nil
}

func (p *IdentityRepo) FindGuardByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	const op = "postgres.Identity.FindGuardByEmail"

	ident, err := scanIdentity(p.pool.QueryRow(ctx,
		`SELECT `+identityColumns+` FROM identities WHERE email = $1 AND role = 'guard'`, email))
	if err != nil {
		return nil, e.WrapError(ctx, op, err)
	}
	return ident, nil
}

func (p *IdentityRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	const op = "postgres.Identity.SetActive"

	cmd, err := p.pool.Exec(ctx, `UPDATE identities SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil
}

func (p *IdentityRepo) SetActiveBySupervisor(ctx context.Context, supervisorID uuid.UUID, active bool) (int64, error) {
	const op = "postgres.Identity.SetActiveBySupervisor"

	cmd, err := p.pool.Exec(ctx,
		`UPDATE identities SET active = $2 WHERE supervisor_id = $1 AND role = 'guard' AND active <> $2`,
		supervisorID, active)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err),
			slog.String("supervisor_id", supervisorID.String()))
		return 0, e.WrapError(ctx, op, err)
	}
	return cmd.RowsAffected(), nil
}

func (p *IdentityRepo) List(ctx context.Context, f domain.IdentityFilter) ([]*domain.Identity, int64, error) {
	const op = "postgres.Identity.List"

	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}

	where, args := identityFilterClause(f)

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM identities`+where, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT %s
		FROM identities%s
		ORDER BY created_at, email
		LIMIT $%d OFFSET $%d
	`, identityColumns, where, len(args)-1, len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.Identity, 0, f.Limit)
	for rows.Next() {
		ident, err := scanIdentity(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		out = append(out, ident)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return out, total, nil
}

func identityFilterClause(f domain.IdentityFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Role != "" {
		args = append(args, string(f.Role))
		conds = append(conds, fmt.Sprintf("role = $%d", len(args)))
	}
	if f.SupervisorID != uuid.Nil {
		args = append(args, f.SupervisorID)
		conds = append(conds, fmt.Sprintf("supervisor_id = $%d", len(args)))
	}
	if f.AreaID != "" {
		args = append(args, f.AreaID)
		conds = append(conds, fmt.Sprintf("area_id = $%d", len(args)))
	}
	if f.Active != nil {
		args = append(args, *f.Active)
		conds = append(conds, fmt.Sprintf("active = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (p *IdentityRepo) CountGuardsInArea(ctx context.Context, areaID string) (int64, error) {
	const op = "postgres.Identity.CountGuardsInArea"

	var n int64
	err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM identities WHERE role = 'guard' AND active AND area_id = $1`, areaID,
	).Scan(&n)
	if err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}
	return n, nil
}

func scanIdentity(row pgx.Row) (*domain.Identity, error) {
	var (
		ident domain.Identity
		role  string
	)
	if err := row.Scan(
		&ident.ID,
		&ident.Email,
		&ident.Name,
		&role,
		&ident.AreaID,
		&ident.SupervisorID,
		&ident.Active,
		&ident.PasswordHash,
		&ident.CreatedAt,
	); err != nil {
		return nil, err
	}
	ident.Role = domain.Role(role)
	return &ident, nil
}
