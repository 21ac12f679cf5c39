package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
	"rivvo/internal/repository"
	"rivvo/internal/utils"
)

const msgBoardNameInvalid = "Board name must contain letters or digits"

type BoardService interface {
	List(ctx context.Context, orgID, callerID uuid.UUID) ([]models.BoardWithPostCount, error)
	Create(ctx context.Context, orgID, callerID uuid.UUID, name string, description *string) (*models.Board, error)
	GetBySlug(ctx context.Context, orgID, callerID uuid.UUID, slug string) (*models.Board, error)
	Update(ctx context.Context, orgID, callerID uuid.UUID, slug, name string, description *string) (*models.Board, error)
	Delete(ctx context.Context, orgID, callerID uuid.UUID, slug string) error
}

type boardService struct {
	boardRepo repository.BoardRepository
	gate      *Gate
}

func NewBoardService(boardRepo repository.BoardRepository, gate *Gate) BoardService {
	return &boardService{
		boardRepo: boardRepo,
		gate:      gate,
	}
}

func (s *boardService) List(ctx context.Context, orgID, callerID uuid.UUID) ([]models.BoardWithPostCount, error) {
	if _, err := s.gate.Member(ctx, orgID, callerID); err != nil {
		return nil, err
	}
	return s.boardRepo.List(ctx, orgID)
}

func (s *boardService) Create(ctx context.Context, orgID, callerID uuid.UUID, name string, description *string) (*models.Board, error) {
	if _, err := s.gate.Admin(ctx, orgID, callerID); err != nil {
		return nil, err
	}

	slug := utils.Slugify(name)
	if slug == "" {
		return nil, apperror.BadRequest(msgBoardNameInvalid)
	}

	return s.boardRepo.Create(ctx, orgID, name, slug, description)
}

func (s *boardService) GetBySlug(ctx context.Context, orgID, callerID uuid.UUID, slug string) (*models.Board, error) {
	if _, err := s.gate.Member(ctx, orgID, callerID); err != nil {
		return nil, err
	}
	return s.boardRepo.GetBySlug(ctx, orgID, slug)
}

func (s *boardService) Update(ctx context.Context, orgID, callerID uuid.UUID, slug, name string, description *string) (*models.Board, error) {
	if _, err := s.gate.Admin(ctx, orgID, callerID); err != nil {
		return nil, err
	}

	newSlug := utils.Slugify(name)
	if newSlug == "" {
		return nil, apperror.BadRequest(msgBoardNameInvalid)
	}

	board, err := s.boardRepo.GetBySlug(ctx, orgID, slug)
	if err != nil {
		return nil, err
	}

	return s.boardRepo.Update(ctx, board.ID, name, newSlug, description)
}

func (s *boardService) Delete(ctx context.Context, orgID, callerID uuid.UUID, slug string) error {
	if _, err := s.gate.Admin(ctx, orgID, callerID); err != nil {
		return err
	}

	board, err := s.boardRepo.GetBySlug(ctx, orgID, slug)
	if err != nil {
		return err
	}

	return s.boardRepo.Delete(ctx, board.ID)
}
