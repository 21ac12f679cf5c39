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

const userColumns = `id, email, name, avatar_url, password_hash, provider, provider_id, created_at`

const (
	msgUserNotFound = "User not found"
	MsgEmailTaken   = "A user with this email already exists"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateWithWorkspace(ctx context.Context, user *models.User, orgName, orgSlug string) (*models.Organization, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, dbError(err, "begin registration")
	}
	defer tx.Rollback()

	query := `
		INSERT INTO users (id, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns

	err = tx.GetContext(ctx, user, query, user.ID, user.Email, user.Name, user.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.BadRequest(MsgEmailTaken)
		}
		return nil, dbError(err, "create user")
	}

	org, err := insertOrgWithAdmin(ctx, tx, orgName, orgSlug, user.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(err, "commit registration")
	}

	return org, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, dbError(err, "get user by id")
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, dbError(err, "get user by email")
	}

	return &user, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*models.User, error) {
	var user models.User

	query := `UPDATE users SET avatar_url = $1 WHERE id = $2 RETURNING ` + userColumns

	err := r.db.GetContext(ctx, &user, query, avatarURL, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(msgUserNotFound)
		}
		return nil, dbError(err, "update avatar")
	}

	return &user, nil
}
