package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/models"
	"rivvo/internal/repository"
)

type CommentService interface {
	List(ctx context.Context, postID, callerID uuid.UUID) ([]models.CommentWithAuthorRow, error)
	Create(ctx context.Context, postID, callerID uuid.UUID, body string) (*models.CommentWithAuthorRow, error)
	Delete(ctx context.Context, commentID, callerID uuid.UUID) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	userRepo    repository.UserRepository
	gate        *Gate
}

func NewCommentService(commentRepo repository.CommentRepository, userRepo repository.UserRepository, gate *Gate) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		gate:        gate,
	}
}

func (s *commentService) List(ctx context.Context, postID, callerID uuid.UUID) ([]models.CommentWithAuthorRow, error) {
	if _, err := s.gate.Post(ctx, postID, callerID); err != nil {
		return nil, err
	}
	return s.commentRepo.List(ctx, postID)
}

// Create labels the comment as an admin reply from the caller's role at
// this moment, the flag is never recomputed.
func (s *commentService) Create(ctx context.Context, postID, callerID uuid.UUID, body string) (*models.CommentWithAuthorRow, error) {
	scope, err := s.gate.Post(ctx, postID, callerID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, postID, callerID, body, scope.Member.IsAdmin())
	if err != nil {
		return nil, err
	}

	return &models.CommentWithAuthorRow{
		ID:              comment.ID,
		Body:            comment.Body,
		IsAdminReply:    comment.IsAdminReply,
		CreatedAt:       comment.CreatedAt,
		AuthorID:        uuid.NullUUID{UUID: author.ID, Valid: true},
		AuthorName:      &author.Name,
		AuthorAvatarURL: author.AvatarURL,
	}, nil
}

func (s *commentService) Delete(ctx context.Context, commentID, callerID uuid.UUID) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}

	scope, err := s.gate.Post(ctx, comment.PostID, callerID)
	if err != nil {
		return err
	}

	return s.commentRepo.Delete(ctx, commentID, callerID, scope.Member.IsAdmin(), comment.PostID)
}
