package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"mytodo/internal/model"
)

var ErrCacheMiss = errors.New("cache miss")

const (
	listKeyPrefix = "todos:list:"
	listTTL       = 30 * time.Second
)

// TodoCache keeps serialized todo lists in Redis so repeated list requests
// do not hit the database. Concurrent loads for the same key collapse into
// one database query via singleflight. A nil *TodoCache is valid and
// disables caching.
type TodoCache struct {
	client *redis.Client
	sf     singleflight.Group
}

func NewTodoCache(client *redis.Client) *TodoCache {
	return &TodoCache{client: client}
}

// ListKey builds the cache key for one page of the todo list.
func ListKey(skip, limit int, sort string) string {
	return fmt.Sprintf("%s%d:%d:%s", listKeyPrefix, skip, limit, sort)
}

// ListThrough returns the cached list for key, or runs load once (collapsing
// concurrent callers) and caches its result. Cache errors degrade to loading
// from the source; they never fail the request.
func (c *TodoCache) ListThrough(ctx context.Context, key string, load func() ([]model.Todo, error)) ([]model.Todo, error) {
	if c == nil {
		return load()
	}

	v, err, _ := c.sf.Do(key, func() (interface{}, error) {
		if todos, err := c.getList(ctx, key); err == nil {
			return todos, nil
		}
		todos, err := load()
		if err != nil {
			return nil, err
		}
		_ = c.setList(ctx, key, todos)
		return todos, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Todo), nil
}

// Invalidate drops every cached list page. Called after any write.
func (c *TodoCache) Invalidate(ctx context.Context) error {
	if c == nil {
		return nil
	}
	iter := c.client.Scan(ctx, 0, listKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *TodoCache) getList(ctx context.Context, key string) ([]model.Todo, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	var todos []model.Todo
	if err := json.Unmarshal([]byte(data), &todos); err != nil {
		return nil, fmt.Errorf("decode cached list: %w", err)
	}
	return todos, nil
}

func (c *TodoCache) setList(ctx context.Context, key string, todos []model.Todo) error {
	data, err := json.Marshal(todos)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	return c.client.Set(ctx, key, data, listTTL).Err()
}
