package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/denisAlshanov/clipgrab/internal/models"
)

// MemoryStore keeps everything in process memory. It is the default driver
// and loses its contents on restart.
type MemoryStore struct {
	mu          sync.RWMutex
	preferences map[string]models.Preferences
	history     []models.HistoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		preferences: make(map[string]models.Preferences),
	}
}

func (m *MemoryStore) GetPreferences(ctx context.Context, clientID string) (*models.Preferences, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefs, ok := m.preferences[clientID]
	if !ok {
		return nil, nil
	}
	return &prefs, nil
}

func (m *MemoryStore) SavePreferences(ctx context.Context, prefs *models.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	prefs.UpdatedAt = time.Now()
	m.preferences[prefs.ClientID] = *prefs
	return nil
}

func (m *MemoryStore) AddHistory(ctx context.Context, entry *models.HistoryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	m.history = append(m.history, *entry)
	return nil
}

func (m *MemoryStore) ListHistory(ctx context.Context, opts models.PaginationOptions) ([]models.HistoryEntry, int, error) {
	opts = normalizePagination(opts)

	m.mu.RLock()
	matched := make([]models.HistoryEntry, 0, len(m.history))
	for _, entry := range m.history {
		if opts.ClientID != "" && entry.ClientID != opts.ClientID {
			continue
		}
		matched = append(matched, entry)
	}
	m.mu.RUnlock()

	// Newest first, matching the SQL and document stores.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := (opts.Page - 1) * opts.Limit
	if start >= total {
		return []models.HistoryEntry{}, total, nil
	}
	end := start + opts.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStore) Close(ctx context.Context) error {
	return nil
}
