package database

import (
	"context"
	"fmt"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/models"
)

// Store persists per-client preferences and the request history. It is never
// consulted to answer a resolve call.
type Store interface {
	// GetPreferences returns nil, nil when the client has no stored preferences.
	GetPreferences(ctx context.Context, clientID string) (*models.Preferences, error)
	SavePreferences(ctx context.Context, prefs *models.Preferences) error

	AddHistory(ctx context.Context, entry *models.HistoryEntry) error
	ListHistory(ctx context.Context, opts models.PaginationOptions) ([]models.HistoryEntry, int, error)

	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open connects to the store selected by STORE_DRIVER.
func Open(cfg *config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := NewPostgresDB(&cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.StoreMongo:
		db, err := NewMongoDB(&cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.StoreMemory, "":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.Store.Driver)
	}
}

func normalizePagination(opts models.PaginationOptions) models.PaginationOptions {
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}
	return opts
}
