package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"meeting-task-extractor/internal/review/repository"
	"meeting-task-extractor/pkg/log"
)

// Client is the subset of goredis.Cmdable the repository uses.
type Client interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Get(ctx context.Context, key string) *goredis.StringCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type implRepository struct {
	rdb Client
	l   log.Logger
}

// New creates a Redis-backed draft Repository.
func New(rdb Client, l log.Logger) repository.Repository {
	if rdb == nil {
		panic("review/repository/redis: client is required")
	}
	return &implRepository{rdb: rdb, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("review/repository/redis.%s", method)
}
