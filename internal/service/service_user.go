package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/store"
	"github.com/MKhiriev/lookup-gateway/models"
)

// userLookupService is the default [UserLookupService]. It holds only the
// repository handle; every call is independent.
type userLookupService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserLookupService(userRepository store.UserRepository, logger *logger.Logger) UserLookupService {
	logger.Debug().Msg("creating user lookup service")
	return &userLookupService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// FetchUser performs exactly one repository read. Absence is not an error.
func (s *userLookupService) FetchUser(ctx context.Context, userID int64) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	user, found, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*userLookupService.FetchUser").Int64("user_id", userID).Msg("error fetching user")
		return models.User{}, false, fmt.Errorf("error fetching user %d: %w", userID, err)
	}

	log.Debug().Str("func", "*userLookupService.FetchUser").Int64("user_id", userID).Bool("found", found).Msg("user lookup finished")

	return user, found, nil
}
