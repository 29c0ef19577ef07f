package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equicourt/complaint-cli/internal/model"
)

// newMockPostgresStore creates a PostgresStore backed by pgxmock for unit testing.
func newMockPostgresStore(t *testing.T) (*PostgresStore, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	s := &PostgresStore{pool: mock}
	return s, mock
}

func TestPostgresStore_SaveComplaint(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`INSERT INTO complaints`).
		WithArgs(pgxmock.AnyArg(), "Theft", "en", "someone stole my bag", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	saved, err := s.SaveComplaint(context.Background(), "someone stole my bag", model.LangEnglish, testEnvelope(model.CategoryTheft))
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetComplaint_NotFound(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectQuery(`SELECT id, language, text, envelope, created_at FROM complaints WHERE id = \$1`).
		WithArgs("nonexistent").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetComplaint(context.Background(), "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get complaint")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_ListComplaints(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	envJSON, err := json.Marshal(testEnvelope(model.CategoryAssault))
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{"id", "language", "text", "envelope", "created_at"}).
		AddRow("id-1", "en", "he attacked me", envJSON, time.Now().UTC())

	mock.ExpectQuery(`SELECT id, language, text, envelope, created_at FROM complaints`).
		WithArgs("Assault", 50).
		WillReturnRows(rows)

	got, err := s.ListComplaints(context.Background(), HistoryFilter{Category: model.CategoryAssault})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "he attacked me", got[0].Text)
	assert.Equal(t, model.CategoryAssault, got[0].Envelope.Classification.Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Trim(t *testing.T) {
	s, mock := newMockPostgresStore(t)

	mock.ExpectExec(`DELETE FROM complaints`).
		WithArgs(50).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	deleted, err := s.Trim(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
