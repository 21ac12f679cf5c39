package service

import (
	"go.uber.org/zap"

	"rivvo/internal/config"
	"rivvo/internal/repository"
	"rivvo/internal/storage"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Org     OrgService
	Board   BoardService
	Post    PostService
	Vote    VoteService
	Comment CommentService
	Tag     TagService
	Health  HealthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage, logger *zap.Logger) *Service {
	gate := NewGate(rep.Org, rep.Board, rep.Post)
	hasher := NewPasswordHasher(DefaultArgonParams, cfg.PasswordHashConcurrency)

	return &Service{
		Auth:    NewAuthService(rep.User, hasher, cfg, logger),
		User:    NewUserService(rep.User, storage, logger),
		Org:     NewOrgService(rep.Org, rep.User, gate),
		Board:   NewBoardService(rep.Board, gate),
		Post:    NewPostService(rep.Post, rep.Tag, gate),
		Vote:    NewVoteService(rep.Vote, gate),
		Comment: NewCommentService(rep.Comment, rep.User, gate),
		Tag:     NewTagService(rep.Tag, gate),
		Health:  NewHealthService(rep.Health),
	}
}
