package service

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
	"rivvo/internal/repository"
	"rivvo/internal/utils"
)

type OrgService interface {
	ListMine(ctx context.Context, callerID uuid.UUID) ([]models.OrgWithRole, error)
	Create(ctx context.Context, callerID uuid.UUID, name string) (*models.Organization, error)
	AddMember(ctx context.Context, orgID, callerID uuid.UUID, email, role string) (*models.OrgMember, error)
}

type orgService struct {
	orgRepo  repository.OrgRepository
	userRepo repository.UserRepository
	gate     *Gate
}

func NewOrgService(orgRepo repository.OrgRepository, userRepo repository.UserRepository, gate *Gate) OrgService {
	return &orgService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		gate:     gate,
	}
}

func (s *orgService) ListMine(ctx context.Context, callerID uuid.UUID) ([]models.OrgWithRole, error) {
	return s.orgRepo.ListForUser(ctx, callerID)
}

func (s *orgService) Create(ctx context.Context, callerID uuid.UUID, name string) (*models.Organization, error) {
	slug := utils.Slugify(name)
	if slug == "" {
		return nil, apperror.BadRequest("Organization name must contain letters or digits")
	}
	return s.orgRepo.Create(ctx, name, slug, callerID)
}

func (s *orgService) AddMember(ctx context.Context, orgID, callerID uuid.UUID, email, role string) (*models.OrgMember, error) {
	if role == "" {
		role = models.RoleMember
	}
	if role != models.RoleAdmin && role != models.RoleMember {
		return nil, apperror.BadRequest("Invalid role. Must be one of: admin, member")
	}

	if _, err := s.gate.Admin(ctx, orgID, callerID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return s.orgRepo.AddMember(ctx, orgID, user.ID, role)
}
