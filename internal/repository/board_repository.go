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

const boardColumns = `id, org_id, name, slug, description, is_private, created_at`

const (
	msgBoardNotFound = "Board not found"
	msgBoardTaken    = "A board with this name already exists in this organization"
)

type boardRepository struct {
	db *sqlx.DB
}

func NewBoardRepository(db *sqlx.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) Create(ctx context.Context, orgID uuid.UUID, name, slug string, description *string) (*models.Board, error) {
	var board models.Board

	query := `
		INSERT INTO boards (org_id, name, slug, description)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + boardColumns

	err := r.db.GetContext(ctx, &board, query, orgID, name, slug, description)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.BadRequest(msgBoardTaken)
		}
		return nil, dbError(err, "create board")
	}

	return &board, nil
}

func (r *boardRepository) List(ctx context.Context, orgID uuid.UUID) ([]models.BoardWithPostCount, error) {
	boards := []models.BoardWithPostCount{}

	query := `
		SELECT b.id, b.name, b.slug, b.description, COUNT(p.id) AS post_count
		FROM boards b
		LEFT JOIN posts p ON p.board_id = b.id
		WHERE b.org_id = $1
		GROUP BY b.id
		ORDER BY b.created_at ASC
	`

	if err := r.db.SelectContext(ctx, &boards, query, orgID); err != nil {
		return nil, dbError(err, "list boards")
	}

	return boards, nil
}

func (r *boardRepository) GetBySlug(ctx context.Context, orgID uuid.UUID, slug string) (*models.Board, error) {
	var board models.Board

	query := `SELECT ` + boardColumns + ` FROM boards WHERE org_id = $1 AND slug = $2`

	err := r.db.GetContext(ctx, &board, query, orgID, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgBoardNotFound)
		}
		return nil, dbError(err, "get board by slug")
	}

	return &board, nil
}

func (r *boardRepository) GetByID(ctx context.Context, boardID uuid.UUID) (*models.Board, error) {
	var board models.Board

	query := `SELECT ` + boardColumns + ` FROM boards WHERE id = $1`

	err := r.db.GetContext(ctx, &board, query, boardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgBoardNotFound)
		}
		return nil, dbError(err, "get board")
	}

	return &board, nil
}

func (r *boardRepository) Update(ctx context.Context, boardID uuid.UUID, name, slug string, description *string) (*models.Board, error) {
	var board models.Board

	query := `
		UPDATE boards
		SET name = $1, slug = $2, description = $3
		WHERE id = $4
		RETURNING ` + boardColumns

	err := r.db.GetContext(ctx, &board, query, name, slug, description, boardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgBoardNotFound)
		}
		if isUniqueViolation(err) {
			return nil, apperror.BadRequest(msgBoardTaken)
		}
		return nil, dbError(err, "update board")
	}

	return &board, nil
}

// Delete relies on the affected row count, dependent posts and tags go
// with the board through foreign key cascades.
func (r *boardRepository) Delete(ctx context.Context, boardID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM boards WHERE id = $1`, boardID)
	if err != nil {
		return dbError(err, "delete board")
	}

	n, err := rowsAffected(res, "delete board")
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound(msgBoardNotFound)
	}

	return nil
}
