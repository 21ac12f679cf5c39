package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
)

const postColumns = `id, board_id, author_id, title, description, status, category,
	vote_count, comment_count, pinned, merged_into_id, created_at, updated_at`

const MsgPostNotFound = "Post not found"

const (
	SortVotes  = "votes"
	SortRecent = "recent"
	SortOldest = "oldest"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// orderClause maps a sort key to SQL, unknown keys sort by votes.
// Pinned posts always come first.
func orderClause(sort string) string {
	switch sort {
	case SortRecent:
		return "p.pinned DESC, p.created_at DESC"
	case SortOldest:
		return "p.pinned DESC, p.created_at ASC"
	default:
		return "p.pinned DESC, p.vote_count DESC, p.created_at DESC"
	}
}

func InvalidStatusError() error {
	return apperror.BadRequest("Invalid status. Must be one of: " + strings.Join(models.ValidStatuses, ", "))
}

func (r *postRepository) Create(ctx context.Context, boardID, authorID uuid.UUID, title string, description *string) (*models.Post, error) {
	var post models.Post

	query := `
		INSERT INTO posts (board_id, author_id, title, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns

	err := r.db.GetContext(ctx, &post, query, boardID, authorID, title, description, models.StatusOpen)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, apperror.NotFound(msgBoardNotFound)
		}
		return nil, dbError(err, "create post")
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context, boardID, callerID uuid.UUID, filter models.PostListFilter) ([]models.PostListRow, error) {
	args := []interface{}{boardID, callerID}

	var sb strings.Builder
	sb.WriteString(`
		SELECT p.id, p.title, p.description, p.status, p.vote_count, p.comment_count,
		       p.pinned, u.name AS author_name, p.created_at,
		       EXISTS(SELECT 1 FROM votes v WHERE v.post_id = p.id AND v.user_id = $2) AS has_voted
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.board_id = $1`)

	if filter.Status != "" {
		if !models.IsValidStatus(filter.Status) {
			return nil, InvalidStatusError()
		}
		args = append(args, filter.Status)
		fmt.Fprintf(&sb, " AND p.status = $%d", len(args))
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(orderClause(filter.Sort))

	rows := []models.PostListRow{}
	if err := r.db.SelectContext(ctx, &rows, sb.String(), args...); err != nil {
		return nil, dbError(err, "list posts")
	}

	return rows, nil
}

func (r *postRepository) GetDetail(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetailRow, error) {
	var row models.PostDetailRow

	query := `
		SELECT p.id, p.board_id, p.title, p.description, p.status, p.vote_count,
		       p.comment_count, p.pinned, p.created_at, p.updated_at,
		       u.id AS author_id, u.name AS author_name, u.email AS author_email,
		       u.avatar_url AS author_avatar_url,
		       EXISTS(SELECT 1 FROM votes v WHERE v.post_id = p.id AND v.user_id = $2) AS has_voted
		FROM posts p
		LEFT JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`

	err := r.db.GetContext(ctx, &row, query, postID, callerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(MsgPostNotFound)
		}
		return nil, dbError(err, "get post detail")
	}

	return &row, nil
}

func (r *postRepository) GetByID(ctx context.Context, postID uuid.UUID) (*models.Post, error) {
	var post models.Post

	query := `SELECT ` + postColumns + ` FROM posts WHERE id = $1`

	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(MsgPostNotFound)
		}
		return nil, dbError(err, "get post")
	}

	return &post, nil
}

func (r *postRepository) Update(ctx context.Context, postID uuid.UUID, title string, description *string) (*models.Post, error) {
	var post models.Post

	query := `
		UPDATE posts
		SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + postColumns

	err := r.db.GetContext(ctx, &post, query, title, description, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(MsgPostNotFound)
		}
		return nil, dbError(err, "update post")
	}

	return &post, nil
}

// UpdateStatus rejects values outside models.ValidStatuses before touching
// the database.
func (r *postRepository) UpdateStatus(ctx context.Context, postID uuid.UUID, status string) (*models.Post, error) {
	if !models.IsValidStatus(status) {
		return nil, InvalidStatusError()
	}

	var post models.Post

	query := `
		UPDATE posts
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + postColumns

	err := r.db.GetContext(ctx, &post, query, status, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(MsgPostNotFound)
		}
		return nil, dbError(err, "update post status")
	}

	return &post, nil
}

func (r *postRepository) Delete(ctx context.Context, postID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return dbError(err, "delete post")
	}

	n, err := rowsAffected(res, "delete post")
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound(MsgPostNotFound)
	}

	return nil
}
