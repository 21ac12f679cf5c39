package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
	"rivvo/internal/repository"
)

const msgTagOtherBoard = "Tag does not belong to this post's board"

type TagService interface {
	List(ctx context.Context, boardID, callerID uuid.UUID) ([]models.Tag, error)
	Create(ctx context.Context, boardID, callerID uuid.UUID, name string, color *string) (*models.Tag, error)
	Delete(ctx context.Context, tagID, callerID uuid.UUID) error
	Assign(ctx context.Context, postID, tagID, callerID uuid.UUID) error
	Unassign(ctx context.Context, postID, tagID, callerID uuid.UUID) error
}

type tagService struct {
	tagRepo repository.TagRepository
	gate    *Gate
}

func NewTagService(tagRepo repository.TagRepository, gate *Gate) TagService {
	return &tagService{tagRepo: tagRepo, gate: gate}
}

func (s *tagService) List(ctx context.Context, boardID, callerID uuid.UUID) ([]models.Tag, error) {
	if _, err := s.gate.Board(ctx, boardID, callerID); err != nil {
		return nil, err
	}
	return s.tagRepo.List(ctx, boardID)
}

func (s *tagService) Create(ctx context.Context, boardID, callerID uuid.UUID, name string, color *string) (*models.Tag, error) {
	scope, err := s.gate.Board(ctx, boardID, callerID)
	if err != nil {
		return nil, err
	}
	if err := RequireAdmin(scope.Member); err != nil {
		return nil, err
	}
	return s.tagRepo.Create(ctx, boardID, name, color)
}

func (s *tagService) Delete(ctx context.Context, tagID, callerID uuid.UUID) error {
	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return err
	}

	scope, err := s.gate.Board(ctx, tag.BoardID, callerID)
	if err != nil {
		return err
	}
	if err := RequireAdmin(scope.Member); err != nil {
		return err
	}

	return s.tagRepo.Delete(ctx, tagID)
}

func (s *tagService) Assign(ctx context.Context, postID, tagID, callerID uuid.UUID) error {
	scope, err := s.gate.Post(ctx, postID, callerID)
	if err != nil {
		return err
	}
	if err := RequireAdmin(scope.Member); err != nil {
		return err
	}

	tag, err := s.tagRepo.GetByID(ctx, tagID)
	if err != nil {
		return err
	}
	if tag.BoardID != scope.Post.BoardID {
		return apperror.BadRequest(msgTagOtherBoard)
	}

	return s.tagRepo.Assign(ctx, postID, tagID)
}

func (s *tagService) Unassign(ctx context.Context, postID, tagID, callerID uuid.UUID) error {
	scope, err := s.gate.Post(ctx, postID, callerID)
	if err != nil {
		return err
	}
	if err := RequireAdmin(scope.Member); err != nil {
		return err
	}
	return s.tagRepo.Unassign(ctx, postID, tagID)
}
