package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"rivvo/internal/apperror"
	"rivvo/internal/config"
	"rivvo/internal/models"
	"rivvo/internal/repository"
	"rivvo/internal/utils"
)

const (
	msgInvalidCredentials = "Invalid email or password"
	msgInvalidToken       = "Invalid or expired token"
)

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error)
	IssueToken(userID uuid.UUID) (string, error)
	VerifyToken(tokenString string) (uuid.UUID, error)
}

type authService struct {
	userRepo repository.UserRepository
	hasher   PasswordHasher
	cfg      *config.Config
	logger   *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, hasher PasswordHasher, cfg *config.Config, logger *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		cfg:      cfg,
		logger:   logger,
	}
}

// WorkspaceName is the name of the organization created at registration.
func WorkspaceName(userName string) string {
	return fmt.Sprintf("%s's Workspace", userName)
}

// WorkspaceSlug suffixes the workspace slug with the start of the user id
// so users sharing a display name do not collide.
func WorkspaceSlug(orgName string, userID uuid.UUID) string {
	return utils.Slugify(orgName) + "-" + userID.String()[:8]
}

func (s *authService) Register(ctx context.Context, email, name, password string) (*models.User, string, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", apperror.BadRequest(repository.MsgEmailTaken)
	}
	if err != nil && !apperror.Is(err, apperror.KindNotFound) {
		return nil, "", err
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("hash password: %w", err), "hash password")
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: &hash,
	}

	orgName := WorkspaceName(name)
	org, err := s.userRepo.CreateWithWorkspace(ctx, user, orgName, WorkspaceSlug(orgName, user.ID))
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("org_id", org.ID.String()),
	)

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, "", apperror.Unauthorized(msgInvalidCredentials)
		}
		return nil, "", err
	}

	if user.PasswordHash == nil {
		return nil, "", apperror.Unauthorized(msgInvalidCredentials)
	}

	ok, err := s.hasher.Verify(ctx, password, *user.PasswordHash)
	if err != nil {
		return nil, "", apperror.Internal(fmt.Errorf("verify password: %w", err), "verify password")
	}
	if !ok {
		return nil, "", apperror.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) CurrentUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *authService) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", apperror.Internal(fmt.Errorf("sign token: %w", err), "sign token")
	}

	return tokenString, nil
}

func (s *authService) VerifyToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return uuid.Nil, apperror.Unauthorized(msgInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, apperror.Unauthorized(msgInvalidToken)
	}

	return userID, nil
}
