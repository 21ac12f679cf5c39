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

const commentColumns = `id, post_id, author_id, body, is_admin_reply, created_at, updated_at`

const (
	msgCommentNotFound = "Comment not found"
	msgNotCommentOwner = "You can only delete your own comments"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create inserts the comment and bumps the post's comment_count in one
// transaction. isAdminReply is stored as given and never recomputed.
func (r *commentRepository) Create(ctx context.Context, postID, authorID uuid.UUID, body string, isAdminReply bool) (*models.Comment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, dbError(err, "begin create comment")
	}
	defer tx.Rollback()

	var comment models.Comment
	err = tx.GetContext(ctx, &comment, `
		INSERT INTO comments (post_id, author_id, body, is_admin_reply)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentColumns,
		postID, authorID, body, isAdminReply,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperror.NotFound(MsgPostNotFound)
		}
		return nil, dbError(err, "create comment")
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE posts SET comment_count = comment_count + 1 WHERE id = $1`, postID,
	)
	if err != nil {
		return nil, dbError(err, "increment comment count")
	}
	n, err := rowsAffected(res, "increment comment count")
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, apperror.NotFound(MsgPostNotFound)
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(err, "commit create comment")
	}

	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthorRow, error) {
	comments := []models.CommentWithAuthorRow{}

	query := `
		SELECT c.id, c.body, c.is_admin_reply, c.created_at,
		       u.id AS author_id, u.name AS author_name, u.avatar_url AS author_avatar_url
		FROM comments c
		LEFT JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`

	if err := r.db.SelectContext(ctx, &comments, query, postID); err != nil {
		return nil, dbError(err, "list comments")
	}

	return comments, nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error) {
	var comment models.Comment

	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`

	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgCommentNotFound)
		}
		return nil, dbError(err, "get comment")
	}

	return &comment, nil
}

// Delete removes the comment with the ownership rule folded into the
// DELETE predicate. Zero affected rows is NotFound for an admin and
// Forbidden for anyone else.
func (r *commentRepository) Delete(ctx context.Context, commentID, callerID uuid.UUID, callerIsAdmin bool, postID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return dbError(err, "begin delete comment")
	}
	defer tx.Rollback()

	var res sql.Result
	if callerIsAdmin {
		res, err = tx.ExecContext(ctx,
			`DELETE FROM comments WHERE id = $1 AND post_id = $2`,
			commentID, postID,
		)
	} else {
		res, err = tx.ExecContext(ctx,
			`DELETE FROM comments WHERE id = $1 AND post_id = $2 AND author_id = $3`,
			commentID, postID, callerID,
		)
	}
	if err != nil {
		return dbError(err, "delete comment")
	}

	n, err := rowsAffected(res, "delete comment")
	if err != nil {
		return err
	}
	if n == 0 {
		if callerIsAdmin {
			return apperror.NotFound(msgCommentNotFound)
		}
		return apperror.Forbidden(msgNotCommentOwner)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE posts SET comment_count = GREATEST(comment_count - 1, 0) WHERE id = $1`, postID,
	); err != nil {
		return dbError(err, "decrement comment count")
	}

	if err := tx.Commit(); err != nil {
		return dbError(err, "commit delete comment")
	}

	return nil
}
