package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
)

func TestTagRepository_Create(t *testing.T) {
	ctx := context.Background()
	boardID := uuid.New()
	tagID := uuid.New()

	t.Run("falls back to the default color", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagRepository(db)

		mock.ExpectQuery(`INSERT INTO tags \(board_id, name, color\)\s+VALUES \(\$1, \$2, COALESCE\(\$3, '#6366f1'\)\)`).
			WithArgs(boardID, "Bug", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "board_id", "name", "color"}).
				AddRow(tagID.String(), boardID.String(), "Bug", models.DefaultTagColor))

		tag, err := repo.Create(ctx, boardID, "Bug", nil)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultTagColor, tag.Color)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate name is a bad request", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagRepository(db)

		mock.ExpectQuery(`INSERT INTO tags`).WillReturnError(&pq.Error{Code: "23505"})

		color := "#ff0000"
		_, err := repo.Create(ctx, boardID, "Bug", &color)
		require.Error(t, err)
		assert.Equal(t, apperror.KindBadRequest, apperror.KindOf(err))
		assert.Equal(t, msgTagTaken, apperror.PublicMessage(err))
	})
}

func TestTagRepository_ListForPostIDs(t *testing.T) {
	ctx := context.Background()

	t.Run("groups tags by post in one query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagRepository(db)

		boardID := uuid.New()
		first, second, untagged := uuid.New(), uuid.New(), uuid.New()
		bug, ui := uuid.New(), uuid.New()

		rows := sqlmock.NewRows([]string{"post_id", "id", "board_id", "name", "color"}).
			AddRow(first.String(), bug.String(), boardID.String(), "Bug", "#f00").
			AddRow(second.String(), bug.String(), boardID.String(), "Bug", "#f00").
			AddRow(first.String(), ui.String(), boardID.String(), "UI", "#0f0")

		ids := pq.StringArray{first.String(), second.String(), untagged.String()}
		mock.ExpectQuery(`WHERE pt.post_id = ANY\(\$1::uuid\[\]\)`).
			WithArgs(ids).
			WillReturnRows(rows)

		byPost, err := repo.ListForPostIDs(ctx, []uuid.UUID{first, second, untagged})
		require.NoError(t, err)
		assert.Len(t, byPost[first], 2)
		assert.Len(t, byPost[second], 1)
		assert.Empty(t, byPost[untagged])
		assert.Equal(t, "UI", byPost[first][1].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty input skips the query", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagRepository(db)

		byPost, err := repo.ListForPostIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, byPost)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTagRepository_AssignIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTagRepository(db)

	postID, tagID := uuid.New(), uuid.New()

	mock.ExpectExec(`INSERT INTO post_tags \(post_id, tag_id\) VALUES \(\$1, \$2\) ON CONFLICT DO NOTHING`).
		WithArgs(postID, tagID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`ON CONFLICT DO NOTHING`).
		WithArgs(postID, tagID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Assign(context.Background(), postID, tagID))
	require.NoError(t, repo.Assign(context.Background(), postID, tagID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_UnassignMissingIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTagRepository(db)

	postID, tagID := uuid.New(), uuid.New()

	mock.ExpectExec(`DELETE FROM post_tags WHERE post_id = \$1 AND tag_id = \$2`).
		WithArgs(postID, tagID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Unassign(context.Background(), postID, tagID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTagRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTagRepository(db)

	tagID := uuid.New()

	mock.ExpectExec(`DELETE FROM tags WHERE id = \$1`).
		WithArgs(tagID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), tagID)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
