package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/equicourt/complaint-cli/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS complaints (
	id         TEXT PRIMARY KEY,
	category   TEXT NOT NULL,
	language   TEXT NOT NULL,
	text       TEXT NOT NULL,
	envelope   TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_complaints_category ON complaints(category);
CREATE INDEX IF NOT EXISTS idx_complaints_created_at ON complaints(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) SaveComplaint(ctx context.Context, text string, lang model.LanguageCode, env *model.Envelope) (*model.Complaint, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	envJSON, err := json.Marshal(env)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal envelope")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO complaints (id, category, language, text, envelope, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, string(env.Classification.Category), string(lang), text, string(envJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert complaint")
	}

	return &model.Complaint{
		ID:        id,
		Text:      text,
		Language:  lang,
		Envelope:  env,
		CreatedAt: now,
	}, nil
}

func (s *SQLiteStore) GetComplaint(ctx context.Context, id string) (*model.Complaint, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, language, text, envelope, created_at FROM complaints WHERE id = ?`,
		id,
	)
	return scanComplaint(row)
}

func (s *SQLiteStore) ListComplaints(ctx context.Context, filter HistoryFilter) ([]model.Complaint, error) {
	query := `SELECT id, language, text, envelope, created_at FROM complaints WHERE 1=1`
	var args []any

	if filter.Category != "" {
		query += ` AND category = ?`
		args = append(args, string(filter.Category))
	}
	query += ` ORDER BY created_at DESC, rowid DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list complaints")
	}
	defer rows.Close()

	var complaints []model.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		complaints = append(complaints, *c)
	}
	return complaints, eris.Wrap(rows.Err(), "sqlite: list complaints iterate")
}

func (s *SQLiteStore) Trim(ctx context.Context, keep int) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM complaints WHERE id NOT IN (
			SELECT id FROM complaints ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`,
		keep,
	)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: trim complaints")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "sqlite: rows affected")
}

// helpers

type scannable interface {
	Scan(dest ...any) error
}

func scanComplaint(row scannable) (*model.Complaint, error) {
	var c model.Complaint
	var envJSON string

	err := row.Scan(&c.ID, &c.Language, &c.Text, &envJSON, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.New("complaint not found")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan complaint")
	}

	c.Envelope = &model.Envelope{}
	if err := json.Unmarshal([]byte(envJSON), c.Envelope); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal envelope")
	}
	return &c, nil
}
