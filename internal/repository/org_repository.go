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

const (
	orgColumns    = `id, name, slug, logo_url, custom_domain, plan, settings, created_at, updated_at`
	memberColumns = `id, org_id, user_id, role, created_at`
)

const (
	msgOrgTaken      = "An organization with this name already exists"
	msgAlreadyMember = "User is already a member of this organization"
)

type orgRepository struct {
	db *sqlx.DB
}

func NewOrgRepository(db *sqlx.DB) OrgRepository {
	return &orgRepository{db: db}
}

// insertOrgWithAdmin runs inside the caller's transaction so the
// organization never exists without its creating admin.
func insertOrgWithAdmin(ctx context.Context, tx *sqlx.Tx, name, slug string, creatorID uuid.UUID) (*models.Organization, error) {
	var org models.Organization

	err := tx.GetContext(ctx, &org,
		`INSERT INTO organizations (name, slug) VALUES ($1, $2) RETURNING `+orgColumns,
		name, slug,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.BadRequest(msgOrgTaken)
		}
		return nil, dbError(err, "create organization")
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO org_members (org_id, user_id, role) VALUES ($1, $2, $3)`,
		org.ID, creatorID, models.RoleAdmin,
	)
	if err != nil {
		return nil, dbError(err, "add organization admin")
	}

	return &org, nil
}

func (r *orgRepository) Create(ctx context.Context, name, slug string, creatorID uuid.UUID) (*models.Organization, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, dbError(err, "begin create organization")
	}
	defer tx.Rollback()

	org, err := insertOrgWithAdmin(ctx, tx, name, slug, creatorID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, dbError(err, "commit create organization")
	}

	return org, nil
}

func (r *orgRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.OrgWithRole, error) {
	orgs := []models.OrgWithRole{}

	query := `
		SELECT o.id, o.name, o.slug, o.logo_url, m.role
		FROM organizations o
		JOIN org_members m ON m.org_id = o.id
		WHERE m.user_id = $1
		ORDER BY o.created_at ASC
	`

	if err := r.db.SelectContext(ctx, &orgs, query, userID); err != nil {
		return nil, dbError(err, "list organizations")
	}

	return orgs, nil
}

// GetMember fails with Unauthorized when no membership row exists, so a
// caller outside the organization learns nothing about it.
func (r *orgRepository) GetMember(ctx context.Context, orgID, userID uuid.UUID) (*models.OrgMember, error) {
	var member models.OrgMember

	query := `SELECT ` + memberColumns + ` FROM org_members WHERE org_id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &member, query, orgID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.Unauthorized(apperror.MsgNotMember)
		}
		return nil, dbError(err, "get membership")
	}

	return &member, nil
}

func (r *orgRepository) AddMember(ctx context.Context, orgID, userID uuid.UUID, role string) (*models.OrgMember, error) {
	var member models.OrgMember

	query := `
		INSERT INTO org_members (org_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING ` + memberColumns

	err := r.db.GetContext(ctx, &member, query, orgID, userID, role)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.BadRequest(msgAlreadyMember)
		}
		return nil, dbError(err, "add member")
	}

	return &member, nil
}
