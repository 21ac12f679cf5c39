package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
)

type voteRepository struct {
	db *sqlx.DB
}

func NewVoteRepository(db *sqlx.DB) VoteRepository {
	return &voteRepository{db: db}
}

// Toggle adds or removes the caller's vote. The post row is locked for the
// whole read-modify-write so concurrent toggles on one post serialize,
// toggles on different posts do not contend.
func (r *voteRepository) Toggle(ctx context.Context, postID, userID uuid.UUID) (*models.VoteResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, dbError(err, "begin vote")
	}
	defer tx.Rollback()

	var lockedID uuid.UUID
	err = tx.GetContext(ctx, &lockedID, `SELECT id FROM posts WHERE id = $1 FOR UPDATE`, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(MsgPostNotFound)
		}
		return nil, dbError(err, "lock post")
	}

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM votes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID,
	)
	if err != nil {
		return nil, dbError(err, "check vote")
	}

	result := &models.VoteResult{Voted: !exists}

	if exists {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM votes WHERE post_id = $1 AND user_id = $2`, postID, userID,
		); err != nil {
			return nil, dbError(err, "remove vote")
		}
		err = tx.GetContext(ctx, &result.VoteCount,
			`UPDATE posts SET vote_count = GREATEST(vote_count - 1, 0) WHERE id = $1 RETURNING vote_count`,
			postID,
		)
	} else {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO votes (post_id, user_id) VALUES ($1, $2)`, postID, userID,
		); err != nil {
			return nil, dbError(err, "add vote")
		}
		err = tx.GetContext(ctx, &result.VoteCount,
			`UPDATE posts SET vote_count = vote_count + 1 WHERE id = $1 RETURNING vote_count`,
			postID,
		)
	}
	if err != nil {
		return nil, dbError(err, "update vote count")
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(err, "commit vote")
	}

	return result, nil
}
