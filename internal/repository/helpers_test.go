package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

var fixedTime = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func postRows(id, boardID, authorID uuid.UUID, status string, votes, comments int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "board_id", "author_id", "title", "description", "status", "category",
		"vote_count", "comment_count", "pinned", "merged_into_id", "created_at", "updated_at",
	}).AddRow(
		id.String(), boardID.String(), authorID.String(), "Dark mode", nil, status, nil,
		votes, comments, false, nil, fixedTime, fixedTime,
	)
}
