package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/google/uuid"
)

type IdentityStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]domain.Identity
	byEmail map[string]uuid.UUID
}

func NewIdentityStore() *IdentityStore {
	return &IdentityStore{
		byID:    make(map[uuid.UUID]domain.Identity),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *IdentityStore) Create(_ context.Context, id *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[id.Email]; ok {
		return e.ErrUniqueViolation
	}
	s.byID[id.ID] = *id
	s.byEmail[id.Email] = id.ID
	return nil
}

func (s *IdentityStore) Get(_ context.Context, id uuid.UUID) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ident, ok := s.byID[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return &ident, nil
}

func (s *IdentityStore) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, e.ErrNotFound
	}
	ident := s.byID[id]
	return &ident, nil
}

func (s *IdentityStore) FindGuardByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	ident, err := s.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if ident.Role != domain.RoleGuard {
		return nil, e.ErrNotFound
	}
	return ident, nil
}

func (s *IdentityStore) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, ok := s.byID[id]
	if !ok {
		return e.ErrNotFound
	}
	ident.Active = active
	s.byID[id] = ident
	return nil
}

func (s *IdentityStore) SetActiveBySupervisor(_ context.Context, supervisorID uuid.UUID, active bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, ident := range s.byID {
		if ident.Role != domain.RoleGuard || ident.SupervisorID == nil || *ident.SupervisorID != supervisorID {
			continue
		}
		if ident.Active == active {
			continue
		}
		ident.Active = active
		s.byID[id] = ident
		n++
	}
	return n, nil
}

// List returns identities ordered by creation time, oldest first.
func (s *IdentityStore) List(_ context.Context, f domain.IdentityFilter) ([]*domain.Identity, int64, error) {
	s.mu.RLock()
	matched := make([]*domain.Identity, 0, len(s.byID))
	for _, ident := range s.byID {
		ident := ident
		if identityMatches(ident, f) {
			matched = append(matched, &ident)
		}
	}
	s.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].Email < matched[j].Email
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return paginate(matched, f.Page, f.Limit), int64(len(matched)), nil
}

func identityMatches(ident domain.Identity, f domain.IdentityFilter) bool {
	if f.Role != "" && ident.Role != f.Role {
		return false
	}
	if f.SupervisorID != uuid.Nil && (ident.SupervisorID == nil || *ident.SupervisorID != f.SupervisorID) {
		return false
	}
	if f.AreaID != "" && ident.AreaID != f.AreaID {
		return false
	}
	if f.Active != nil && ident.Active != *f.Active {
		return false
	}
	return true
}

func (s *IdentityStore) CountGuardsInArea(_ context.Context, areaID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, ident := range s.byID {
		if ident.Role == domain.RoleGuard && ident.Active && ident.AreaID == areaID {
			n++
		}
	}
	return n, nil
}
