package todos

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/taskdock/taskdock/internal/shared"
)

// Store abstracts item persistence. Implementations must be safe for
// concurrent use by independent callers.
type Store interface {
	// Add stores the item, replacing any existing item with the same id.
	Add(ctx context.Context, item Item) error
	// Get returns the item or shared.ErrNotFound.
	Get(ctx context.Context, id int64) (Item, error)
	// All returns every item owned by ownerID in ascending id order.
	All(ctx context.Context, ownerID int64) ([]Item, error)
}

// MemoryStore keeps items in a mutex-guarded map. Enumeration returns a
// snapshot; a concurrent writer is never observable mid-update.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[int64]Item
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[int64]Item)}
}

// Add stores the item under its id, create-or-replace.
func (s *MemoryStore) Add(_ context.Context, item Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return nil
}

// Get returns the item or shared.ErrNotFound.
func (s *MemoryStore) Get(_ context.Context, id int64) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		return Item{}, fmt.Errorf("todo %d: %w", id, shared.ErrNotFound)
	}
	return item, nil
}

// All snapshots the owner's items in ascending id order. Map iteration order
// is nondeterministic, so a stable sort keeps pagination reproducible.
func (s *MemoryStore) All(_ context.Context, ownerID int64) ([]Item, error) {
	s.mu.RLock()
	items := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		if item.OwnerID == ownerID {
			items = append(items, item)
		}
	}
	s.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}
