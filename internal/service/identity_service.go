package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type identityService struct {
	repo   IdentityRepository
	tokens TokenIssuer
	logger *slog.Logger
	now    func() time.Time
}

func NewIdentityService(repo IdentityRepository, tokens TokenIssuer, logger *slog.Logger) IdentityService {
	return &identityService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *identityService) Create(ctx context.Context, req domain.CreateIdentityRequest) (*domain.Identity, error) {
	email := normalizeEmail(req.Email)

	id := &domain.Identity{
		ID:        uuid.New(),
		Email:     email,
		Name:      strings.TrimSpace(req.Name),
		Role:      req.Role,
		Active:    true,
		CreatedAt: s.now(),
	}

	switch req.Role {
	case domain.RoleSupervisor:
		id.AreaID = req.AreaID
	case domain.RoleGuard:
		if req.SupervisorID == nil {
			return nil, e.ErrInvalidInput
		}
		sup, err := s.repo.Get(ctx, *req.SupervisorID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, e.Wrap("supervisor", e.ErrInvalidInput)
			}
			return nil, err
		}
		if sup.Role != domain.RoleSupervisor || !sup.Active {
			return nil, e.Wrap("supervisor", e.ErrInvalidInput)
		}
		supID := sup.ID
		id.SupervisorID = &supID
		id.AreaID = sup.AreaID
	default:
		return nil, e.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap("hash password", err)
	}
	id.PasswordHash = string(hash)

	if err := s.repo.Create(ctx, id); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return nil, e.Wrap("email already registered", e.ErrConflict)
		}
		s.logger.Error("create identity failed", slog.String("email", email), slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("identity created",
		slog.String("id", id.ID.String()),
		slog.String("role", string(id.Role)),
		slog.String("area_id", id.AreaID),
	)
	return id, nil
}

// SetActive flips the active flag. Deactivating a supervisor also
// deactivates its guards; reactivation is per identity.
func (s *identityService) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	ident, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return err
	}
	s.logger.Info("identity active flag changed", slog.String("id", id.String()), slog.Bool("active", active))

	if active || ident.Role != domain.RoleSupervisor {
		return nil
	}
	n, err := s.repo.SetActiveBySupervisor(ctx, id, false)
	if err != nil {
		s.logger.Error("deactivate supervisor guards failed", slog.String("supervisor_id", id.String()), slog.Any("error", err))
		return err
	}
	s.logger.Info("supervisor guards deactivated", slog.String("supervisor_id", id.String()), slog.Int64("guards", n))
	return nil
}

func (s *identityService) List(ctx context.Context, f domain.IdentityFilter) (domain.ListIdentitiesResponse, error) {
	f.Page, f.Limit = normalizePage(f.Page, f.Limit)

	idents, total, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Error("list identities failed", slog.String("role", string(f.Role)), slog.Any("error", err))
		return domain.ListIdentitiesResponse{}, err
	}
	if idents == nil {
		idents = []*domain.Identity{}
	}

	return domain.ListIdentitiesResponse{
		Identities: idents,
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
	}, nil
}

// CreateGuard registers a guard reporting to the calling supervisor.
func (s *identityService) CreateGuard(ctx context.Context, supervisor domain.Principal, req domain.CreateGuardRequest) (*domain.Identity, error) {
	if supervisor.Role != domain.RoleSupervisor {
		return nil, e.ErrForbidden
	}
	supID := supervisor.ID
	return s.Create(ctx, domain.CreateIdentityRequest{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		Role:         domain.RoleGuard,
		SupervisorID: &supID,
	})
}

func (s *identityService) ListGuards(ctx context.Context, supervisor domain.Principal, activeOnly bool, page, limit int) (domain.ListIdentitiesResponse, error) {
	if supervisor.Role != domain.RoleSupervisor {
		return domain.ListIdentitiesResponse{}, e.ErrForbidden
	}
	f := domain.IdentityFilter{
		Role:         domain.RoleGuard,
		SupervisorID: supervisor.ID,
		Page:         page,
		Limit:        limit,
	}
	if activeOnly {
		active := true
		f.Active = &active
	}
	return s.List(ctx, f)
}

func (s *identityService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	ident, err := s.repo.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return domain.LoginResponse{}, e.ErrUnauthorized
		}
		return domain.LoginResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(req.Password)) != nil {
		return domain.LoginResponse{}, e.ErrUnauthorized
	}
	if !ident.Active {
		return domain.LoginResponse{}, e.ErrForbidden
	}

	token, exp, err := s.tokens.Issue(domain.Principal{
		ID:     ident.ID,
		Email:  ident.Email,
		Role:   ident.Role,
		AreaID: ident.AreaID,
	})
	if err != nil {
		return domain.LoginResponse{}, e.Wrap("issue token", err)
	}

	return domain.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   exp,
		Role:        ident.Role,
	}, nil
}

// EnsureAdmin creates the bootstrap admin unless an identity with that email
// already exists. It reports whether a new admin was created.
func (s *identityService) EnsureAdmin(ctx context.Context, email, password string) (bool, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return false, e.ErrInvalidInput
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.Role != domain.RoleAdmin {
			return false, e.Wrap("bootstrap admin email taken by "+string(existing.Role), e.ErrConflict)
		}
		return false, nil
	case !errors.Is(err, e.ErrNotFound):
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, e.Wrap("hash password", err)
	}

	admin := &domain.Identity{
		ID:           uuid.New(),
		Email:        email,
		Name:         "Administrator",
		Role:         domain.RoleAdmin,
		Active:       true,
		PasswordHash: string(hash),
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return false, nil
		}
		return false, err
	}

	s.logger.Info("bootstrap admin created", slog.String("email", email))
	return true, nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
