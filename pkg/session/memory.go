package session

import (
	"context"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries is used when NewMemoryStore is given a size <= 0.
const DefaultMaxEntries = 1000

type stored struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore keeps snapshots in process. When full, the least
// recently saved or loaded entry is evicted.
type MemoryStore struct {
	mu     sync.Mutex
	cache  *lru.Cache[string, stored]
	closed bool
	now    func() time.Time
}

// NewMemoryStore creates a store holding at most size snapshots.
func NewMemoryStore(size int) *MemoryStore {
	if size <= 0 {
		size = DefaultMaxEntries
	}
	cache, err := lru.New[string, stored](size)
	if err != nil {
		// lru.New only fails for non-positive sizes.
		panic(err)
	}
	return &MemoryStore{cache: cache, now: time.Now}
}

// Save copies data so callers may reuse the slice.
func (m *MemoryStore) Save(_ context.Context, id string, data []byte, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed{}
	}
	m.cache.Add(id, stored{data: append([]byte(nil), data...), expiresAt: expiresAt})
	return nil
}

func (m *MemoryStore) Load(_ context.Context, id string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrStoreClosed{}
	}
	entry, ok := m.cache.Get(id)
	if !ok {
		return nil, nil
	}
	if !entry.expiresAt.IsZero() && !m.now().Before(entry.expiresAt) {
		m.cache.Remove(id)
		return nil, nil
	}
	return append([]byte(nil), entry.data...), nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed{}
	}
	m.cache.Remove(id)
	return nil
}

// Len reports the number of entries, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}

func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		m.cache.Purge()
	}
	return nil
}
