package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
)

const tagColumns = `id, board_id, name, color`

const (
	msgTagNotFound = "Tag not found"
	msgTagTaken    = "A tag with this name already exists on this board"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) Create(ctx context.Context, boardID uuid.UUID, name string, color *string) (*models.Tag, error) {
	var tag models.Tag

	query := `
		INSERT INTO tags (board_id, name, color)
		VALUES ($1, $2, COALESCE($3, '` + models.DefaultTagColor + `'))
		RETURNING ` + tagColumns

	err := r.db.GetContext(ctx, &tag, query, boardID, name, color)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.BadRequest(msgTagTaken)
		}
		return nil, dbError(err, "create tag")
	}

	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context, boardID uuid.UUID) ([]models.Tag, error) {
	tags := []models.Tag{}

	query := `SELECT ` + tagColumns + ` FROM tags WHERE board_id = $1 ORDER BY name ASC`

	if err := r.db.SelectContext(ctx, &tags, query, boardID); err != nil {
		return nil, dbError(err, "list tags")
	}

	return tags, nil
}

func (r *tagRepository) GetByID(ctx context.Context, tagID uuid.UUID) (*models.Tag, error) {
	var tag models.Tag

	query := `SELECT ` + tagColumns + ` FROM tags WHERE id = $1`

	err := r.db.GetContext(ctx, &tag, query, tagID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgTagNotFound)
		}
		return nil, dbError(err, "get tag")
	}

	return &tag, nil
}

func (r *tagRepository) ListForPost(ctx context.Context, postID uuid.UUID) ([]models.Tag, error) {
	tags := []models.Tag{}

	query := `
		SELECT t.id, t.board_id, t.name, t.color
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = $1
		ORDER BY t.name ASC
	`

	if err := r.db.SelectContext(ctx, &tags, query, postID); err != nil {
		return nil, dbError(err, "list post tags")
	}

	return tags, nil
}

// ListForPostIDs loads the tags of many posts with a single query.
// Posts without tags are absent from the map.
func (r *tagRepository) ListForPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]models.Tag, error) {
	result := make(map[uuid.UUID][]models.Tag, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}

	ids := make(pq.StringArray, len(postIDs))
	for i, id := range postIDs {
		ids[i] = id.String()
	}

	query := `
		SELECT pt.post_id, t.id, t.board_id, t.name, t.color
		FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.id
		WHERE pt.post_id = ANY($1::uuid[])
		ORDER BY t.name ASC
	`

	var rows []models.PostTagRow
	if err := r.db.SelectContext(ctx, &rows, query, ids); err != nil {
		return nil, dbError(err, "list tags for posts")
	}

	for _, row := range rows {
		result[row.PostID] = append(result[row.PostID], row.Tag)
	}

	return result, nil
}

func (r *tagRepository) Delete(ctx context.Context, tagID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tags WHERE id = $1`, tagID)
	if err != nil {
		return dbError(err, "delete tag")
	}

	n, err := rowsAffected(res, "delete tag")
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound(msgTagNotFound)
	}

	return nil
}

// Assign is idempotent, a repeated assignment is silently ignored.
func (r *tagRepository) Assign(ctx context.Context, postID, tagID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, tagID,
	)
	if err != nil {
		return dbError(err, "assign tag")
	}
	return nil
}

func (r *tagRepository) Unassign(ctx context.Context, postID, tagID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM post_tags WHERE post_id = $1 AND tag_id = $2`,
		postID, tagID,
	)
	if err != nil {
		return dbError(err, "unassign tag")
	}
	return nil
}
