package layout

import (
	"sync"

	"github.com/ChicagoDave/neighborhood/pkg/spec"
)

// Memo caches layouts by config. Layouts are immutable, so cached values
// are shared between callers.
type Memo struct {
	mu      sync.Mutex
	limit   int
	layouts map[spec.Config]*Neighborhood
	order   []spec.Config
}

// NewMemo creates a cache holding at most limit layouts, evicting the
// oldest entry first. A limit below 1 is treated as 1.
func NewMemo(limit int) *Memo {
	limit = max(1, limit)
	return &Memo{
		limit:   limit,
		layouts: make(map[spec.Config]*Neighborhood, limit),
	}
}

// Get returns the layout for c, generating it on a miss. Invalid configs
// are not cached.
func (m *Memo) Get(c spec.Config) (*Neighborhood, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n, ok := m.layouts[c]; ok {
		return n, nil
	}

	n, err := Generate(c)
	if err != nil {
		return nil, err
	}

	if len(m.order) >= m.limit {
		oldest := m.order[0]
		m.order = m.order[1:]
		delete(m.layouts, oldest)
	}
	m.layouts[c] = n
	m.order = append(m.order, c)
	return n, nil
}

// Len returns the number of cached layouts.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.layouts)
}
