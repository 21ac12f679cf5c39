package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"rivvo/internal/config"
	"rivvo/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserService    service.UserService
	OrgService     service.OrgService
	BoardService   service.BoardService
	PostService    service.PostService
	VoteService    service.VoteService
	CommentService service.CommentService
	TagService     service.TagService
	HealthService  service.HealthService
	Cfg            *config.Config
	Validate       *validator.Validate
	Logger         *zap.Logger
}

func NewHandlers(service *service.Service, config *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:    service.Auth,
		UserService:    service.User,
		OrgService:     service.Org,
		BoardService:   service.Board,
		PostService:    service.Post,
		VoteService:    service.Vote,
		CommentService: service.Comment,
		TagService:     service.Tag,
		HealthService:  service.Health,
		Cfg:            config,
		Validate:       validator.New(validator.WithRequiredStructEnabled()),
		Logger:         logger,
	}
}
