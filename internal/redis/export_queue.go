package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Vinayak4780/Guard/internal/domain"
	"github.com/Vinayak4780/Guard/pkg/e"

	"github.com/redis/go-redis/v9"
)

// ExportQueue is a FIFO list of scan records waiting for the export sink.
type ExportQueue struct {
	client *redis.Client
	key    string
}

func NewExportQueue(client *redis.Client, key string) *ExportQueue {
	return &ExportQueue{client: client, key: key}
}

func (q *ExportQueue) Enqueue(ctx context.Context, rec domain.ExportRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

// BRPop blocks up to timeout for the oldest record. An empty queue yields
// e.ErrExportQueueEmpty.
func (q *ExportQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ExportRecord, error) {
	var rec domain.ExportRecord

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rec, e.ErrExportQueueEmpty
		}
		return rec, err
	}
	if len(res) < 2 {
		return rec, e.ErrExportQueueEmpty
	}
	if err := json.Unmarshal([]byte(res[1]), &rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (q *ExportQueue) Len(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.key).Result()
}
