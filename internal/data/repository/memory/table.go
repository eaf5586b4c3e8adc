package memory

import (
	"sort"
	"sync"

	"filmorate/internal/data/repository"
)

// table is an indexed in-memory entity table: a primary map keyed by id and a
// uniqueness index from business key (film name, user email) to id. Both maps
// mutate under the same lock, so they can never drift apart. Rows are stored
// by value and copied on the way out.
type table[T any] struct {
	mu    sync.RWMutex
	rows  map[int64]T
	index map[string]int64

	key   func(T) string
	getID func(T) int64
	setID func(T, int64) T
}

func newTable[T any](key func(T) string, getID func(T) int64, setID func(T, int64) T) *table[T] {
	return &table[T]{
		rows:  make(map[int64]T),
		index: make(map[string]int64),
		key:   key,
		getID: getID,
		setID: setID,
	}
}

// all returns every row sorted by ascending id.
func (t *table[T]) all() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return t.getID(rows[i]) < t.getID(rows[j])
	})
	return rows
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// create assigns id = max existing id + 1, stores the row and registers its
// uniqueness key.
func (t *table[T]) create(row T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	var maxID int64
	for id := range t.rows {
		if id > maxID {
			maxID = id
		}
	}

	row = t.setID(row, maxID+1)
	t.rows[maxID+1] = row
	t.index[t.key(row)] = maxID + 1
	return row
}

// update replaces the stored row. When the uniqueness key changed, the old
// key is released from the index and the new one registered.
func (t *table[T]) update(row T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.getID(row)
	old, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, repository.ErrNotFound
	}

	if oldKey := t.key(old); oldKey != t.key(row) {
		delete(t.index, oldKey)
	}

	t.rows[id] = row
	t.index[t.key(row)] = id
	return row, nil
}

func (t *table[T]) existsByKey(key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.index[key]
	return ok
}
