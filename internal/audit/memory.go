package audit

import (
	"context"
	"slices"
	"sync"

	"github.com/Harika-001-tech/prenatal-app/internal/models"
)

// MemoryLog is the in-process audit store used with APP_STORAGE=memory.
type MemoryLog struct {
	mu      sync.RWMutex
	entries []models.AuditLog
}

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

var (
	_ Sink   = (*MemoryLog)(nil)
	_ Reader = (*MemoryLog)(nil)
)

func (m *MemoryLog) Write(_ context.Context, ev Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := toLog(ev)
	entry.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryLog) List(_ context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(m.entries) - 1; i >= 0; i-- {
		if f.match(m.entries[i]) {
			matched = append(matched, m.entries[i])
		}
	}

	total := int64(len(matched))
	from := min(f.offset(), len(matched))
	to := min(from+f.Limit, len(matched))

	return slices.Clone(matched[from:to]), total, nil
}

// Actions returns the recorded actions in write order.
func (m *MemoryLog) Actions() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Action)
	}
	return out
}
