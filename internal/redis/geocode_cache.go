package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// GeocodeCache stores reverse-geocoded addresses keyed by coordinates
// rounded to about 11 m.
type GeocodeCache struct {
	client *goredis.Client
	prefix string
}

func NewGeocodeCache(r *Redis) *GeocodeCache {
	return &GeocodeCache{
		client: r.Client,
		prefix: "geocode:",
	}
}

func (c *GeocodeCache) key(p domain.GeoPoint) string {
	return fmt.Sprintf("%s%.4f,%.4f", c.prefix, p.Lat, p.Lng)
}

// Get returns ok=false on a cache miss.
func (c *GeocodeCache) Get(ctx context.Context, p domain.GeoPoint) (string, bool, error) {
	addr, err := c.client.Get(ctx, c.key(p)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return addr, true, nil
}

func (c *GeocodeCache) Set(ctx context.Context, p domain.GeoPoint, address string, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(p), address, ttl).Err()
}
