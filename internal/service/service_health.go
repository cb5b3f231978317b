package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/store"
)

type healthService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewHealthService(userRepository store.UserRepository, logger *logger.Logger) HealthService {
	return &healthService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *healthService) CheckReadiness(ctx context.Context) error {
	if err := s.userRepository.Ping(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*healthService.CheckReadiness").Msg("user store is not ready")
		return fmt.Errorf("user store is not ready: %w", err)
	}
	return nil
}
