package handlers

import (
	"context"

	"github.com/google/uuid"

	"rivvo/internal/apperror"
)

type contextKey string

const userIDKey contextKey = "userID"

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the caller set by the auth middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, apperror.Unauthorized("Authentication required")
	}
	return userID, nil
}
