package todos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/taskdock/taskdock/internal/shared"
)

// RedisStore persists items in Redis so multiple instances can share one
// collection. Items live in a hash keyed by id; a per-owner set indexes the
// owner's ids for enumeration.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a store on the given client. Prefix namespaces the
// keys; empty means "taskdock".
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "taskdock"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) itemsKey() string {
	return s.prefix + ":items"
}

func (s *RedisStore) ownerKey(ownerID int64) string {
	return fmt.Sprintf("%s:owner:%d", s.prefix, ownerID)
}

// Add stores the item, create-or-replace. A replaced item that changed owner
// is removed from the old owner's index first. The read-then-reindex is best
// effort: two racing replaces of the same id can both miss the cleanup, so
// All treats the stored item as the source of truth and filters stale index
// entries instead of trusting the set.
func (s *RedisStore) Add(ctx context.Context, item Item) error {
	field := strconv.FormatInt(item.ID, 10)

	prev, err := s.client.HGet(ctx, s.itemsKey(), field).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("todos: redis get existing: %w", err)
	}
	if err == nil {
		var old Item
		if uerr := json.Unmarshal([]byte(prev), &old); uerr == nil && old.OwnerID != item.OwnerID {
			if serr := s.client.SRem(ctx, s.ownerKey(old.OwnerID), field).Err(); serr != nil {
				return fmt.Errorf("todos: redis reindex owner: %w", serr)
			}
		}
	}

	payload, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("todos: marshal item %d: %w", item.ID, err)
	}
	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.itemsKey(), field, payload)
	pipe.SAdd(ctx, s.ownerKey(item.OwnerID), field)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("todos: redis add: %w", err)
	}
	return nil
}

// Get returns the item or shared.ErrNotFound.
func (s *RedisStore) Get(ctx context.Context, id int64) (Item, error) {
	raw, err := s.client.HGet(ctx, s.itemsKey(), strconv.FormatInt(id, 10)).Result()
	if errors.Is(err, redis.Nil) {
		return Item{}, fmt.Errorf("todo %d: %w", id, shared.ErrNotFound)
	}
	if err != nil {
		return Item{}, fmt.Errorf("todos: redis get: %w", err)
	}
	var item Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return Item{}, fmt.Errorf("todos: unmarshal item %d: %w", id, err)
	}
	return item, nil
}

// All returns the owner's items in ascending id order. The item hash is the
// source of truth: an index entry whose stored item names another owner is a
// stale leftover from a racing replace and is filtered out, so a reader never
// observes an item in the wrong listing.
func (s *RedisStore) All(ctx context.Context, ownerID int64) ([]Item, error) {
	fields, err := s.client.SMembers(ctx, s.ownerKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("todos: redis owner index: %w", err)
	}
	if len(fields) == 0 {
		return []Item{}, nil
	}
	raws, err := s.client.HMGet(ctx, s.itemsKey(), fields...).Result()
	if err != nil {
		return nil, fmt.Errorf("todos: redis fetch items: %w", err)
	}
	items := make([]Item, 0, len(raws))
	for _, raw := range raws {
		str, ok := raw.(string)
		if !ok {
			// Index entry without a stored item; skip rather than fail the listing.
			continue
		}
		var item Item
		if err := json.Unmarshal([]byte(str), &item); err != nil {
			return nil, fmt.Errorf("todos: unmarshal listed item: %w", err)
		}
		if item.OwnerID != ownerID {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
