package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"

	"github.com/google/uuid"
)

// ScanEventStore is an in-memory append-only log of scan events. It also
// answers the aggregate queries used by dashboards.
type ScanEventStore struct {
	mu     sync.Mutex
	events []domain.ScanEvent
}

func NewScanEventStore() *ScanEventStore {
	return &ScanEventStore{}
}

func (s *ScanEventStore) Save(_ context.Context, ev *domain.ScanEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, *ev)
	return nil
}

// List returns matching events newest first.
func (s *ScanEventStore) List(_ context.Context, f domain.ScanFilter) ([]*domain.ScanEvent, int64, error) {
	s.mu.Lock()
	matched := make([]*domain.ScanEvent, 0)
	for i := range s.events {
		ev := s.events[i]
		if f.AreaID != "" && ev.AreaID != f.AreaID {
			continue
		}
		if f.GuardID != uuid.Nil && ev.GuardID != f.GuardID {
			continue
		}
		matched = append(matched, &ev)
	}
	s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool { return matched[i].ScannedAt.After(matched[j].ScannedAt) })
	return paginate(matched, f.Page, f.Limit), int64(len(matched)), nil
}

// Events returns a copy of all recorded events.  Test-only helper.
func (s *ScanEventStore) Events() []domain.ScanEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ScanEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *ScanEventStore) CountScans(_ context.Context, areaID string, since time.Time) (int64, error) {
	var n int64
	s.each(areaID, since, func(domain.ScanEvent) { n++ })
	return n, nil
}

func (s *ScanEventStore) CountByOutcome(_ context.Context, areaID string, since time.Time) (map[domain.ScanOutcome]int64, error) {
	out := make(map[domain.ScanOutcome]int64)
	s.each(areaID, since, func(ev domain.ScanEvent) { out[ev.Outcome]++ })
	return out, nil
}

func (s *ScanEventStore) TopGuards(_ context.Context, areaID string, since time.Time, limit int) ([]domain.GuardActivity, error) {
	counts := make(map[string]int64)
	s.each(areaID, since, func(ev domain.ScanEvent) {
		if ev.Outcome.CountsAsCheckIn() {
			counts[ev.GuardEmail]++
		}
	})

	out := make([]domain.GuardActivity, 0, len(counts))
	for email, n := range counts {
		out = append(out, domain.GuardActivity{GuardEmail: email, ScanCount: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ScanCount != out[j].ScanCount {
			return out[i].ScanCount > out[j].ScanCount
		}
		return out[i].GuardEmail < out[j].GuardEmail
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *ScanEventStore) AreaSummaries(_ context.Context) ([]domain.AreaSummary, error) {
	byArea := make(map[string]*domain.AreaSummary)
	s.each("", time.Time{}, func(ev domain.ScanEvent) {
		a, ok := byArea[ev.AreaID]
		if !ok {
			a = &domain.AreaSummary{AreaID: ev.AreaID}
			byArea[ev.AreaID] = a
		}
		a.TotalScans++
		if ev.Outcome.CountsAsCheckIn() {
			a.Accepted++
		} else {
			a.Rejected++
		}
	})

	out := make([]domain.AreaSummary, 0, len(byArea))
	for _, a := range byArea {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AreaID < out[j].AreaID })
	return out, nil
}

func (s *ScanEventStore) each(areaID string, since time.Time, fn func(domain.ScanEvent)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ev := range s.events {
		if areaID != "" && ev.AreaID != areaID {
			continue
		}
		if !since.IsZero() && ev.ScannedAt.Before(since) {
			continue
		}
		fn(ev)
	}
}
