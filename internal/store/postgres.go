package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"

	"github.com/equicourt/complaint-cli/internal/model"
)

// Pool abstracts pgxpool.Pool so the store can be exercised against a mock.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// PostgresStore implements Store using pgxpool.
type PostgresStore struct {
	pool    Pool
	closeFn func()
}

// PoolConfig holds optional connection pool tuning parameters.
type PoolConfig struct {
	MaxConns int32 `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns int32 `yaml:"min_conns" mapstructure:"min_conns"`
}

// preparedStatements lists queries to prepare on each new connection for
// faster execution of the hot store operations.
var preparedStatements = map[string]string{
	"insert_complaint": `INSERT INTO complaints (id, category, language, text, envelope, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
	"get_complaint":    `SELECT id, language, text, envelope, created_at FROM complaints WHERE id = $1`,
}

// NewPostgres creates a PostgresStore with a connection pool.
func NewPostgres(ctx context.Context, connString string, poolCfg *PoolConfig) (*PostgresStore, error) {
	pgxCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: parse config")
	}

	maxConns := int32(10)
	minConns := int32(2)
	if poolCfg != nil {
		if poolCfg.MaxConns > 0 {
			maxConns = poolCfg.MaxConns
		}
		if poolCfg.MinConns > 0 {
			minConns = poolCfg.MinConns
		}
	}
	pgxCfg.MaxConns = maxConns
	pgxCfg.MinConns = minConns
	pgxCfg.MaxConnLifetime = 30 * time.Minute
	pgxCfg.MaxConnIdleTime = 5 * time.Minute

	pgxCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		for name, sql := range preparedStatements {
			if _, err := conn.Prepare(ctx, name, sql); err != nil {
				return eris.Wrapf(err, "postgres: prepare %s", name)
			}
		}
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: create pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "postgres: ping")
	}
	return &PostgresStore{pool: pool, closeFn: pool.Close}, nil
}

const postgresMigration = `
CREATE TABLE IF NOT EXISTS complaints (
	id         TEXT PRIMARY KEY,
	category   TEXT NOT NULL,
	language   TEXT NOT NULL,
	text       TEXT NOT NULL,
	envelope   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_complaints_category ON complaints(category);
CREATE INDEX IF NOT EXISTS idx_complaints_created_at ON complaints(created_at DESC);
`

func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, postgresMigration)
	return eris.Wrap(err, "postgres: migrate")
}

func (s *PostgresStore) Close() error {
	if s.closeFn != nil {
		s.closeFn()
	}
	return nil
}

func (s *PostgresStore) SaveComplaint(ctx context.Context, text string, lang model.LanguageCode, env *model.Envelope) (*model.Complaint, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	envJSON, err := json.Marshal(env)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: marshal envelope")
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO complaints (id, category, language, text, envelope, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		id, string(env.Classification.Category), string(lang), text, envJSON, now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: insert complaint")
	}

	return &model.Complaint{
		ID:        id,
		Text:      text,
		Language:  lang,
		Envelope:  env,
		CreatedAt: now,
	}, nil
}

func (s *PostgresStore) GetComplaint(ctx context.Context, id string) (*model.Complaint, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, language, text, envelope, created_at FROM complaints WHERE id = $1`,
		id,
	)

	var c model.Complaint
	var envJSON []byte
	if err := row.Scan(&c.ID, &c.Language, &c.Text, &envJSON, &c.CreatedAt); err != nil {
		return nil, eris.Wrapf(err, "postgres: get complaint %s", id)
	}

	c.Envelope = &model.Envelope{}
	if err := json.Unmarshal(envJSON, c.Envelope); err != nil {
		return nil, eris.Wrap(err, "postgres: unmarshal envelope")
	}
	return &c, nil
}

func (s *PostgresStore) ListComplaints(ctx context.Context, filter HistoryFilter) ([]model.Complaint, error) {
	query := `SELECT id, language, text, envelope, created_at FROM complaints WHERE 1=1`
	var args []any

	if filter.Category != "" {
		args = append(args, string(filter.Category))
		query += fmt.Sprintf(` AND category = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	args = append(args, limit)
	query += fmt.Sprintf(` LIMIT $%d`, len(args))

	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(` OFFSET $%d`, len(args))
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "postgres: list complaints")
	}
	defer rows.Close()

	var complaints []model.Complaint
	for rows.Next() {
		var c model.Complaint
		var envJSON []byte
		if err := rows.Scan(&c.ID, &c.Language, &c.Text, &envJSON, &c.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "postgres: scan complaint")
		}
		c.Envelope = &model.Envelope{}
		if err := json.Unmarshal(envJSON, c.Envelope); err != nil {
			return nil, eris.Wrap(err, "postgres: unmarshal envelope")
		}
		complaints = append(complaints, c)
	}
	return complaints, eris.Wrap(rows.Err(), "postgres: list complaints iterate")
}

func (s *PostgresStore) Trim(ctx context.Context, keep int) (int, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM complaints WHERE id NOT IN (
			SELECT id FROM complaints ORDER BY created_at DESC, id DESC LIMIT $1
		)`,
		keep,
	)
	if err != nil {
		return 0, eris.Wrap(err, "postgres: trim complaints")
	}
	return int(tag.RowsAffected()), nil
}
