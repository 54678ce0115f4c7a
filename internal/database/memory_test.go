package database

import (
	"context"
	"testing"
	"time"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/models"
)

func TestMemoryStorePreferences(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	prefs, err := store.GetPreferences(ctx, "client-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if prefs != nil {
		t.Fatalf("Expected no preferences for unknown client, got %+v", prefs)
	}

	saved := &models.Preferences{ClientID: "client-1", Theme: models.ThemeDark, Locale: models.LocaleFR}
	if err := store.SavePreferences(ctx, saved); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("Expected UpdatedAt to be set on save")
	}

	prefs, err = store.GetPreferences(ctx, "client-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if prefs.Theme != models.ThemeDark || prefs.Locale != models.LocaleFR {
		t.Errorf("Expected dark/FR, got %s/%s", prefs.Theme, prefs.Locale)
	}

	// Mutating the returned copy must not affect the store.
	prefs.Theme = models.ThemeLight
	again, _ := store.GetPreferences(ctx, "client-1")
	if again.Theme != models.ThemeDark {
		t.Errorf("Expected stored theme to stay dark, got %s", again.Theme)
	}
}

func TestMemoryStoreHistory(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		clientID := "client-a"
		if i%2 == 1 {
			clientID = "client-b"
		}
		entry := &models.HistoryEntry{
			ClientID:  clientID,
			Operation: models.OperationDownload,
			URL:       "https://youtu.be/dQw4w9WgXcQ",
			Success:   true,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.AddHistory(ctx, entry); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if entry.ID.String() == "00000000-0000-0000-0000-000000000000" {
			t.Error("Expected an id to be assigned")
		}
	}

	testCases := []struct {
		name      string
		opts      models.PaginationOptions
		wantTotal int
		wantLen   int
		wantFirst time.Time
	}{
		{
			name:      "All entries newest first",
			opts:      models.PaginationOptions{},
			wantTotal: 5,
			wantLen:   5,
			wantFirst: base.Add(4 * time.Minute),
		},
		{
			name:      "Filtered by client",
			opts:      models.PaginationOptions{ClientID: "client-b"},
			wantTotal: 2,
			wantLen:   2,
			wantFirst: base.Add(3 * time.Minute),
		},
		{
			name:      "Second page",
			opts:      models.PaginationOptions{Page: 2, Limit: 2},
			wantTotal: 5,
			wantLen:   2,
			wantFirst: base.Add(2 * time.Minute),
		},
		{
			name:      "Page past the end",
			opts:      models.PaginationOptions{Page: 10, Limit: 2},
			wantTotal: 5,
			wantLen:   0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries, total, err := store.ListHistory(ctx, tc.opts)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if total != tc.wantTotal {
				t.Errorf("Expected total %d, got %d", tc.wantTotal, total)
			}
			if len(entries) != tc.wantLen {
				t.Fatalf("Expected %d entries, got %d", tc.wantLen, len(entries))
			}
			if tc.wantLen > 0 && !entries[0].CreatedAt.Equal(tc.wantFirst) {
				t.Errorf("Expected first entry at %v, got %v", tc.wantFirst, entries[0].CreatedAt)
			}
		})
	}
}

func TestOpenMemoryStore(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: config.StoreMemory}}

	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", store)
	}
	if err := store.Ping(context.Background()); err != nil {
		t.Errorf("Expected ping to succeed, got %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	cfg := &config.Config{Store: config.StoreConfig{Driver: "redis"}}

	if _, err := Open(cfg); err == nil {
		t.Error("Expected an error for an unknown driver")
	}
}
