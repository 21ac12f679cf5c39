package service

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rivvo/internal/apperror"
	"rivvo/internal/models"
	"rivvo/internal/repository"
	"rivvo/internal/storage"
)

var ErrStorageDisabled = errors.New("object storage is not configured")

type UserService interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string, file io.Reader, size int64) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	storage  storage.Storage
	logger   *zap.Logger
}

// NewUserService accepts a nil storage, uploads then fail as internal errors.
func NewUserService(userRepo repository.UserRepository, storage storage.Storage, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		storage:  storage,
		logger:   logger,
	}
}

func (s *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string, file io.Reader, size int64) (*models.User, error) {
	if s.storage == nil {
		return nil, apperror.Internal(ErrStorageDisabled, "upload avatar")
	}

	objectName, url, err := s.storage.UploadAvatar(ctx, userID, fileName, contentType, file, size)
	if err != nil {
		return nil, apperror.Internal(err, "upload avatar")
	}

	user, err := s.userRepo.UpdateAvatar(ctx, userID, url)
	if err != nil {
		if delErr := s.storage.DeleteObject(context.WithoutCancel(ctx), objectName); delErr != nil {
			s.logger.Warn("Failed to remove orphaned avatar",
				zap.String("object", objectName),
				zap.Error(delErr),
			)
		}
		return nil, err
	}

	return user, nil
}
