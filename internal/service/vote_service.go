package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/models"
	"rivvo/internal/repository"
)

type VoteService interface {
	Toggle(ctx context.Context, postID, callerID uuid.UUID) (*models.VoteResult, error)
}

type voteService struct {
	voteRepo repository.VoteRepository
	gate     *Gate
}

func NewVoteService(voteRepo repository.VoteRepository, gate *Gate) VoteService {
	return &voteService{voteRepo: voteRepo, gate: gate}
}

func (s *voteService) Toggle(ctx context.Context, postID, callerID uuid.UUID) (*models.VoteResult, error) {
	if _, err := s.gate.Post(ctx, postID, callerID); err != nil {
		return nil, err
	}
	return s.voteRepo.Toggle(ctx, postID, callerID)
}
