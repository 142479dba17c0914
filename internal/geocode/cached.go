package geocode

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
)

var ErrNoAddress = errors.New("no address for coordinates")

//go:generate mockgen -source=cached.go -destination=mocks/mock.go
type Geocoder interface {
	ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error)
}

type Cache interface {
	Get(ctx context.Context, p domain.GeoPoint) (string, bool, error)
	Set(ctx context.Context, p domain.GeoPoint, address string, ttl time.Duration) error
}

// Cached serves repeat lookups from the cache. Cache errors are logged and
// fall through to the upstream geocoder.
type Cached struct {
	next   Geocoder
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewCached(next Geocoder, cache Cache, ttl time.Duration, logger *slog.Logger) *Cached {
	return &Cached{next: next, cache: cache, ttl: ttl, logger: logger}
}

func (c *Cached) ReverseGeocode(ctx context.Context, p domain.GeoPoint) (string, error) {
	addr, ok, err := c.cache.Get(ctx, p)
	if err != nil {
		c.logger.Warn("geocode cache get failed", slog.Any("error", err))
	} else if ok {
		return addr, nil
	}

	addr, err = c.next.ReverseGeocode(ctx, p)
	if err != nil {
		return "", err
	}

	if err := c.cache.Set(ctx, p, addr, c.ttl); err != nil {
		c.logger.Warn("geocode cache set failed", slog.Any("error", err))
	}
	return addr, nil
}
