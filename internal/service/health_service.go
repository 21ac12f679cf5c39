package service

import (
	"context"

	"rivvo/internal/repository"
)

type HealthStatus struct {
	Database bool
	Tables   int
}

type HealthService interface {
	Check(ctx context.Context) (*HealthStatus, error)
}

type healthService struct {
	healthRepo repository.HealthRepository
}

func NewHealthService(healthRepo repository.HealthRepository) HealthService {
	return &healthService{healthRepo: healthRepo}
}

func (s *healthService) Check(ctx context.Context) (*HealthStatus, error) {
	if err := s.healthRepo.Ping(ctx); err != nil {
		return &HealthStatus{Database: false}, err
	}

	tables, err := s.healthRepo.CountTables(ctx)
	if err != nil {
		return &HealthStatus{Database: false}, err
	}

	return &HealthStatus{Database: true, Tables: tables}, nil
}
