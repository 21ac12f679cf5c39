package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
	"rivvo/internal/repository"
)

const msgNotOwner = "You do not have permission to modify this post"

// BoardScope is a board together with the caller's membership in its organization.
type BoardScope struct {
	Board  *models.Board
	Member *models.OrgMember
}

// PostScope extends BoardScope with the post the caller is acting on.
type PostScope struct {
	Post   *models.Post
	Board  *models.Board
	Member *models.OrgMember
}

// Gate resolves the caller's membership by walking post -> board -> org.
type Gate struct {
	orgs   repository.OrgRepository
	boards repository.BoardRepository
	posts  repository.PostRepository
}

func NewGate(orgs repository.OrgRepository, boards repository.BoardRepository, posts repository.PostRepository) *Gate {
	return &Gate{orgs: orgs, boards: boards, posts: posts}
}

// Member fails with Unauthorized when the caller has no membership row.
func (g *Gate) Member(ctx context.Context, orgID, callerID uuid.UUID) (*models.OrgMember, error) {
	return g.orgs.GetMember(ctx, orgID, callerID)
}

// Admin is Member followed by RequireAdmin.
func (g *Gate) Admin(ctx context.Context, orgID, callerID uuid.UUID) (*models.OrgMember, error) {
	member, err := g.Member(ctx, orgID, callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireAdmin(member); err != nil {
		return nil, err
	}
	return member, nil
}

func (g *Gate) Board(ctx context.Context, boardID, callerID uuid.UUID) (*BoardScope, error) {
	board, err := g.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}

	member, err := g.Member(ctx, board.OrgID, callerID)
	if err != nil {
		return nil, err
	}

	return &BoardScope{Board: board, Member: member}, nil
}

func (g *Gate) Post(ctx context.Context, postID, callerID uuid.UUID) (*PostScope, error) {
	post, err := g.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	scope, err := g.Board(ctx, post.BoardID, callerID)
	if err != nil {
		return nil, err
	}

	return &PostScope{Post: post, Board: scope.Board, Member: scope.Member}, nil
}

// PostInBoard is Post for board-scoped routes, a post living on another
// board is reported as missing.
func (g *Gate) PostInBoard(ctx context.Context, boardID, postID, callerID uuid.UUID) (*PostScope, error) {
	scope, err := g.Post(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}
	if scope.Post.BoardID != boardID {
		return nil, apperror.NotFound(repository.MsgPostNotFound)
	}
	return scope, nil
}

func RequireAdmin(member *models.OrgMember) error {
	if !member.IsAdmin() {
		return apperror.Unauthorized(apperror.MsgAdminRequired)
	}
	return nil
}

// RequireOwnerOrAdmin passes for the resource's author or an org admin.
func RequireOwnerOrAdmin(member *models.OrgMember, authorID uuid.NullUUID, callerID uuid.UUID) error {
	if authorID.Valid && authorID.UUID == callerID {
		return nil
	}
	if member.IsAdmin() {
		return nil
	}
	return apperror.Forbidden(msgNotOwner)
}
