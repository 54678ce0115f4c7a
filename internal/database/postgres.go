package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/denisAlshanov/clipgrab/internal/config"
	"github.com/denisAlshanov/clipgrab/internal/models"
)

type PostgresDB struct {
	pool *pgxpool.Pool
}

func NewPostgresDB(cfg *config.PostgresConfig) (*PostgresDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	// Build connection string
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	pgdb := &PostgresDB{
		pool: pool,
	}

	// Create tables if they don't exist
	if err := pgdb.createTables(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pgdb, nil
}

func (p *PostgresDB) createTables(ctx context.Context) error {
	createPreferencesTable := `
		CREATE TABLE IF NOT EXISTS preferences (
			client_id VARCHAR(255) PRIMARY KEY,
			theme VARCHAR(16) NOT NULL DEFAULT 'light',
			locale VARCHAR(8) NOT NULL DEFAULT 'EN',
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);
	`

	if _, err := p.pool.Exec(ctx, createPreferencesTable); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}

	createHistoryTable := `
		CREATE TABLE IF NOT EXISTS history (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			client_id VARCHAR(255) NOT NULL DEFAULT '',
			operation VARCHAR(16) NOT NULL CHECK (operation IN ('analyze', 'download')),
			url TEXT NOT NULL,
			video_id VARCHAR(32) NOT NULL DEFAULT '',
			quality VARCHAR(64) NOT NULL DEFAULT '',
			download_type VARCHAR(32) NOT NULL DEFAULT '',
			success BOOLEAN NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_history_client_id ON history(client_id);
		CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at DESC);
	`

	if _, err := p.pool.Exec(ctx, createHistoryTable); err != nil {
		return fmt.Errorf("failed to create history table: %w", err)
	}

	return nil
}

// Preferences operations
func (p *PostgresDB) GetPreferences(ctx context.Context, clientID string) (*models.Preferences, error) {
	prefs := &models.Preferences{}
	query := `
		SELECT client_id, theme, locale, updated_at
		FROM preferences WHERE client_id = $1`

	err := p.pool.QueryRow(ctx, query, clientID).Scan(
		&prefs.ClientID, &prefs.Theme, &prefs.Locale, &prefs.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (p *PostgresDB) SavePreferences(ctx context.Context, prefs *models.Preferences) error {
	prefs.UpdatedAt = time.Now()

	query := `
		INSERT INTO preferences (client_id, theme, locale, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (client_id) DO UPDATE SET
			theme = EXCLUDED.theme, locale = EXCLUDED.locale, updated_at = EXCLUDED.updated_at`

	_, err := p.pool.Exec(ctx, query, prefs.ClientID, prefs.Theme, prefs.Locale, prefs.UpdatedAt)
	return err
}

// History operations
func (p *PostgresDB) AddHistory(ctx context.Context, entry *models.HistoryEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO history (id, client_id, operation, url, video_id, quality,
			download_type, success, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := p.pool.Exec(ctx, query,
		entry.ID, entry.ClientID, entry.Operation, entry.URL, entry.VideoID, entry.Quality,
		entry.DownloadType, entry.Success, entry.Error, entry.CreatedAt,
	)
	return err
}

func (p *PostgresDB) ListHistory(ctx context.Context, opts models.PaginationOptions) ([]models.HistoryEntry, int, error) {
	opts = normalizePagination(opts)
	offset := (opts.Page - 1) * opts.Limit

	// Count total
	var total int
	countQuery := `SELECT COUNT(*) FROM history WHERE ($1::text = '' OR client_id = $1::text)`
	if err := p.pool.QueryRow(ctx, countQuery, opts.ClientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, client_id, operation, url, video_id, quality,
			download_type, success, error_message, created_at
		FROM history
		WHERE ($1::text = '' OR client_id = $1::text)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.pool.Query(ctx, query, opts.ClientID, opts.Limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	entries := []models.HistoryEntry{}
	for rows.Next() {
		var entry models.HistoryEntry
		err := rows.Scan(
			&entry.ID, &entry.ClientID, &entry.Operation, &entry.URL, &entry.VideoID, &entry.Quality,
			&entry.DownloadType, &entry.Success, &entry.Error, &entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// Health check
func (p *PostgresDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close connection
func (p *PostgresDB) Close(ctx context.Context) error {
	p.pool.Close()
	return nil
}
