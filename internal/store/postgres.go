package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IshanviChauhan/Interview-Bot/internal/types"
)

// Archive stores completed sessions in PostgreSQL for queryable history
// across machines. It is a secondary sink: a session is always written
// to disk first, and archive failures must not roll back that save.
type Archive struct {
	pool *pgxpool.Pool
}

// ConnectArchive establishes a connection pool to the database.
func ConnectArchive(ctx context.Context, databaseURL string) (*Archive, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Archive{pool: pool}, nil
}

// Close closes the connection pool.
func (a *Archive) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

// Migrate creates the sessions table when it does not exist yet.
func (a *Archive) Migrate(ctx context.Context) error {
	_, err := a.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS interview_sessions (
			id UUID PRIMARY KEY,
			role TEXT NOT NULL,
			domain TEXT NOT NULL DEFAULT '',
			interview_type TEXT NOT NULL,
			average_score DOUBLE PRECISION NOT NULL,
			record JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to migrate sessions table: %w", err)
	}
	return nil
}

// SaveSession inserts or replaces one completed session record.
func (a *Archive) SaveSession(ctx context.Context, record types.SessionRecord) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal session record: %w", err)
	}

	_, err = a.pool.Exec(ctx,
		`INSERT INTO interview_sessions (id, role, domain, interview_type, average_score, record)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (id) DO UPDATE SET record = $6, average_score = $5`,
		record.ID, record.Role, record.Domain, string(record.InterviewType), record.AverageScore, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ArchiveEntry is one row of the archived-session listing.
type ArchiveEntry struct {
	ID            uuid.UUID
	Role          string
	Domain        string
	InterviewType types.InterviewType
	AverageScore  float64
	CreatedAt     time.Time
}

// ListSessions returns archived sessions, newest first.
func (a *Archive) ListSessions(ctx context.Context) ([]ArchiveEntry, error) {
	rows, err := a.pool.Query(ctx,
		`SELECT id, role, domain, interview_type, average_score, created_at
		 FROM interview_sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var entries []ArchiveEntry
	for rows.Next() {
		var e ArchiveEntry
		var interviewType string
		if err := rows.Scan(&e.ID, &e.Role, &e.Domain, &interviewType, &e.AverageScore, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		e.InterviewType = types.InterviewType(interviewType)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetSession loads one archived session record by id.
func (a *Archive) GetSession(ctx context.Context, id uuid.UUID) (*types.SessionRecord, error) {
	var jsonBytes []byte
	err := a.pool.QueryRow(ctx,
		`SELECT record FROM interview_sessions WHERE id = $1`, id,
	).Scan(&jsonBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}

	var record types.SessionRecord
	if err := json.Unmarshal(jsonBytes, &record); err != nil {
		return nil, fmt.Errorf("failed to parse session record: %w", err)
	}
	return &record, nil
}
