package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"
)

// QRLocationStore keeps QR locations in memory. It is intended for use in
// tests and single-node dev runs.
type QRLocationStore struct {
	mu     sync.RWMutex
	byID   map[string]*domain.QRLocation
	byArea map[string]string
}

func NewQRLocationStore() *QRLocationStore {
	return &QRLocationStore{
		byID:   make(map[string]*domain.QRLocation),
		byArea: make(map[string]string),
	}
}

func (s *QRLocationStore) Create(_ context.Context, loc *domain.QRLocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[loc.ID]; ok {
		return e.ErrUniqueViolation
	}
	if _, ok := s.byArea[loc.AreaID]; ok {
		return e.ErrUniqueViolation
	}
	if loc.CreatedAt.IsZero() {
		loc.CreatedAt = time.Now().UTC()
	}
	s.byID[loc.ID] = cloneLocation(loc)
	s.byArea[loc.AreaID] = loc.ID
	return nil
}

func (s *QRLocationStore) Get(_ context.Context, id string) (*domain.QRLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.byID[id]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneLocation(loc), nil
}

func (s *QRLocationStore) GetByArea(_ context.Context, areaID string) (*domain.QRLocation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byArea[areaID]
	if !ok {
		return nil, e.ErrNotFound
	}
	return cloneLocation(s.byID[id]), nil
}

func (s *QRLocationStore) List(_ context.Context, page, limit int) ([]*domain.QRLocation, int64, error) {
	s.mu.RLock()
	all := make([]*domain.QRLocation, 0, len(s.byID))
	for _, loc := range s.byID {
		all = append(all, cloneLocation(loc))
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return paginate(all, page, limit), int64(len(all)), nil
}

func (s *QRLocationStore) BindCoordinates(_ context.Context, id string, p domain.GeoPoint, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loc, ok := s.byID[id]
	if !ok {
		return e.ErrNotFound
	}
	if loc.Coordinates != nil {
		return e.ErrConflict
	}
	pt := p
	ts := at
	loc.Coordinates = &pt
	loc.BoundAt = &ts
	return nil
}

func cloneLocation(l *domain.QRLocation) *domain.QRLocation {
	c := *l
	if l.Coordinates != nil {
		pt := *l.Coordinates
		c.Coordinates = &pt
	}
	if l.BoundAt != nil {
		ts := *l.BoundAt
		c.BoundAt = &ts
	}
	return &c
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		return items
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
