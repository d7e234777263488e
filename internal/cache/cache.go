package cache

import "sync"

// Memo is a bounded LRU map from K to V.
type Memo[K comparable, V any] struct {
	mu      sync.Mutex
	limit   int
	entries map[K]*memoEntry[K, V]
	order   lruList[K]
	hits    uint64
	misses  uint64
}

type memoEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a memo holding at most limit entries.
// A limit of 0 or less means unbounded.
func New[K comparable, V any](limit int) *Memo[K, V] {
	return &Memo[K, V]{
		limit:   limit,
		entries: make(map[K]*memoEntry[K, V]),
	}
}

// Get returns the value stored for key and marks it as recently used.
func (m *Memo[K, V]) Get(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		m.misses++
		var zero V
		return zero, false
	}
	m.hits++
	m.order.moveToFront(e.node)
	return e.value, true
}

// Set stores value for key, evicting the oldest entry when over the limit.
func (m *Memo[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setLocked(key, value)
}

// GetOrCreate returns the stored value for key or stores the result of create.
// create runs under the memo lock, so it is called at most once per missing key.
func (m *Memo[K, V]) GetOrCreate(key K, create func() V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[key]; ok {
		m.hits++
		m.order.moveToFront(e.node)
		return e.value, true
	}
	m.misses++
	value := create()
	m.setLocked(key, value)
	return value, false
}

// Len returns the number of stored entries.
func (m *Memo[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Clear drops every entry and resets the counters.
func (m *Memo[K, V]) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[K]*memoEntry[K, V])
	m.order = lruList[K]{}
	m.hits, m.misses = 0, 0
}

// Stats returns a snapshot of the memo counters.
func (m *Memo[K, V]) Stats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Stats{
		Len:    len(m.entries),
		Limit:  m.limit,
		Hits:   m.hits,
		Misses: m.misses,
	}
}

// setLocked stores value for key. Caller must hold m.mu.
func (m *Memo[K, V]) setLocked(key K, value V) {
	if e, ok := m.entries[key]; ok {
		e.value = value
		m.order.moveToFront(e.node)
		return
	}
	m.entries[key] = &memoEntry[K, V]{value: value, node: m.order.pushFront(key)}
	for m.limit > 0 && len(m.entries) > m.limit {
		oldest, ok := m.order.popBack()
		if !ok {
			break
		}
		delete(m.entries, oldest)
	}
}

// Stats holds memo counters.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Limit is the configured entry limit (0 = unbounded).
	Limit int
	// Hits counts lookups that found an entry.
	Hits uint64
	// Misses counts lookups that did not.
	Misses uint64
}
