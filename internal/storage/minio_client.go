package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"rivvo/internal/config"
)

type Storage interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string, file io.Reader, size int64) (objectName string, url string, err error)
	DeleteObject(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *zap.Logger
}

func NewMinIOClient(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.MinIO.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.MinIO.BucketName, err)
		}
		logger.Info("Bucket created", zap.String("bucket", cfg.MinIO.BucketName))
	}

	publicURL := cfg.MinIO.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.MinIO.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.MinIO.Endpoint)
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.MinIO.BucketName,
		publicURL: publicURL,
		logger:    logger,
	}, nil
}

// ObjectName builds the key an avatar is stored under.
func ObjectName(userID uuid.UUID, fileName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	return fmt.Sprintf("avatars/%s/%d/%02d/%s%s", userID, now.Year(), now.Month(), uuid.New(), ext)
}

func (m *MinIOClient) UploadAvatar(ctx context.Context, userID uuid.UUID, fileName, contentType string, file io.Reader, size int64) (string, string, error) {
	now := time.Now()
	objectName := ObjectName(userID, fileName, now)

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(objectName))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"user-id":           userID.String(),
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("upload avatar: %w", err)
	}

	m.logger.Info("Avatar uploaded",
		zap.String("object", objectName),
		zap.Int64("size", size),
	)

	return objectName, fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, objectName), nil
}

func (m *MinIOClient) DeleteObject(ctx context.Context, objectName string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
