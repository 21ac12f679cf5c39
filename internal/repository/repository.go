package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
)

type UserRepository interface {
	// CreateWithWorkspace inserts the user, an organization and the user's
	// admin membership in one transaction.
	CreateWithWorkspace(ctx context.Context, user *models.User, orgName, orgSlug string) (*models.Organization, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*models.User, error)
}

type OrgRepository interface {
	Create(ctx context.Context, name, slug string, creatorID uuid.UUID) (*models.Organization, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.OrgWithRole, error)
	GetMember(ctx context.Context, orgID, userID uuid.UUID) (*models.OrgMember, error)
	AddMember(ctx context.Context, orgID, userID uuid.UUID, role string) (*models.OrgMember, error)
}

type BoardRepository interface {
	Create(ctx context.Context, orgID uuid.UUID, name, slug string, description *string) (*models.Board, error)
	List(ctx context.Context, orgID uuid.UUID) ([]models.BoardWithPostCount, error)
	GetBySlug(ctx context.Context, orgID uuid.UUID, slug string) (*models.Board, error)
	GetByID(ctx context.Context, boardID uuid.UUID) (*models.Board, error)
	Update(ctx context.Context, boardID uuid.UUID, name, slug string, description *string) (*models.Board, error)
	Delete(ctx context.Context, boardID uuid.UUID) error
}

type PostRepository interface {
	Create(ctx context.Context, boardID, authorID uuid.UUID, title string, description *string) (*models.Post, error)
	List(ctx context.Context, boardID, callerID uuid.UUID, filter models.PostListFilter) ([]models.PostListRow, error)
	GetDetail(ctx context.Context, postID, callerID uuid.UUID) (*models.PostDetailRow, error)
	GetByID(ctx context.Context, postID uuid.UUID) (*models.Post, error)
	Update(ctx context.Context, postID uuid.UUID, title string, description *string) (*models.Post, error)
	UpdateStatus(ctx context.Context, postID uuid.UUID, status string) (*models.Post, error)
	Delete(ctx context.Context, postID uuid.UUID) error
}

type VoteRepository interface {
	Toggle(ctx context.Context, postID, userID uuid.UUID) (*models.VoteResult, error)
}

type CommentRepository interface {
	Create(ctx context.Context, postID, authorID uuid.UUID, body string, isAdminReply bool) (*models.Comment, error)
	List(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthorRow, error)
	GetByID(ctx context.Context, commentID uuid.UUID) (*models.Comment, error)
	Delete(ctx context.Context, commentID, callerID uuid.UUID, callerIsAdmin bool, postID uuid.UUID) error
}

type TagRepository interface {
	Create(ctx context.Context, boardID uuid.UUID, name string, color *string) (*models.Tag, error)
	List(ctx context.Context, boardID uuid.UUID) ([]models.Tag, error)
	GetByID(ctx context.Context, tagID uuid.UUID) (*models.Tag, error)
	ListForPost(ctx context.Context, postID uuid.UUID) ([]models.Tag, error)
	ListForPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]models.Tag, error)
	Delete(ctx context.Context, tagID uuid.UUID) error
	Assign(ctx context.Context, postID, tagID uuid.UUID) error
	Unassign(ctx context.Context, postID, tagID uuid.UUID) error
}

type HealthRepository interface {
	Ping(ctx context.Context) error
	CountTables(ctx context.Context) (int, error)
}

type Repository struct {
	User    UserRepository
	Org     OrgRepository
	Board   BoardRepository
	Post    PostRepository
	Vote    VoteRepository
	Comment CommentRepository
	Tag     TagRepository
	Health  HealthRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Org:     NewOrgRepository(db),
		Board:   NewBoardRepository(db),
		Post:    NewPostRepository(db),
		Vote:    NewVoteRepository(db),
		Comment: NewCommentRepository(db),
		Tag:     NewTagRepository(db),
		Health:  NewHealthRepository(db),
	}
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

func isUniqueViolation(err error) bool {
	return pqCode(err) == pgUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	return pqCode(err) == pgForeignKeyViolation
}

// dbError wraps an unexpected storage error, the cause stays server-side.
func dbError(err error, op string) error {
	return apperror.Internal(fmt.Errorf("%s: %w", op, err), op)
}

func rowsAffected(res sql.Result, op string) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, dbError(err, op)
	}
	return n, nil
}
