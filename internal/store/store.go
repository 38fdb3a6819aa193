// Package store caches formatted insights in SQLite. Caching is pure
// memoization: entries are keyed by the content hash of the raw payload
// plus the reference date, so a cache hit is byte-identical to what the
// pipeline would produce.
package store

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"flarecast/internal/core"
)

// Store represents the SQLite-based insight cache
type Store struct {
	db   *sql.DB
	path string
}

// CacheStats summarizes cache contents for the CLI
type CacheStats struct {
	InsightCount int
	DatabaseSize int64
	DatabasePath string
}

// NewStore creates a new store instance with SQLite database
func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "flarecast.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	insightsTable := `
	CREATE TABLE IF NOT EXISTS insights (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		payload_hash TEXT NOT NULL,
		reference_date TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		days_json TEXT NOT NULL DEFAULT '',
		date_generated DATETIME,
		UNIQUE (kind, payload_hash, reference_date)
	);`

	if _, err := s.db.Exec(insightsTable); err != nil {
		return fmt.Errorf("failed to create insights table: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// CacheInsight stores a formatted insight
func (s *Store) CacheInsight(record core.InsightRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.DateGenerated.IsZero() {
		record.DateGenerated = time.Now().UTC()
	}

	query := `
	INSERT OR REPLACE INTO insights
	(id, kind, payload_hash, reference_date, content, days_json, date_generated)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.Exec(query,
		record.ID,
		record.Kind,
		record.PayloadHash,
		record.ReferenceDate,
		record.Content,
		record.DaysJSON,
		record.DateGenerated,
	)
	return err
}

// GetCachedInsight retrieves a formatted insight, or nil on a miss.
func (s *Store) GetCachedInsight(kind, payloadHash, referenceDate string) (*core.InsightRecord, error) {
	query := `
	SELECT id, kind, payload_hash, reference_date, content, days_json, date_generated
	FROM insights
	WHERE kind = ? AND payload_hash = ? AND reference_date = ?`

	row := s.db.QueryRow(query, kind, payloadHash, referenceDate)

	var record core.InsightRecord
	err := row.Scan(
		&record.ID,
		&record.Kind,
		&record.PayloadHash,
		&record.ReferenceDate,
		&record.Content,
		&record.DaysJSON,
		&record.DateGenerated,
	)
	if err == sql.ErrNoRows {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan insight: %w", err)
	}
	return &record, nil
}

// GetCacheStats returns statistics about the cache
func (s *Store) GetCacheStats() (*CacheStats, error) {
	stats := &CacheStats{DatabasePath: s.path}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM insights").Scan(&stats.InsightCount); err != nil {
		return nil, fmt.Errorf("failed to count insights: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.DatabaseSize = info.Size()
	}
	return stats, nil
}

// ClearCache removes all cached insights
func (s *Store) ClearCache() error {
	if _, err := s.db.Exec("DELETE FROM insights"); err != nil {
		return fmt.Errorf("failed to clear insights: %w", err)
	}
	return nil
}

// PayloadHash creates the cache key hash for a raw payload
func PayloadHash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
