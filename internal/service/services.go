package service

import (
	"github.com/MKhiriev/lookup-gateway/internal/config"
	"github.com/MKhiriev/lookup-gateway/internal/logger"
	"github.com/MKhiriev/lookup-gateway/internal/store"
)

type Services struct {
	UserLookupService  UserLookupService
	ObjectFetchService ObjectFetchService
	AppInfoService     AppInfoService
	HealthService      HealthService
}

// NewServices wires every service to its backend. The object fetch service
// is wrapped with [ObjectFetchValidationService].
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	if storages == nil || storages.UserRepository == nil || storages.ObjectStorage == nil {
		return nil, ErrNilDependency
	}

	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	objectFetchService := NewObjectFetchValidationService().
		Wrap(NewObjectFetchService(storages.ObjectStorage, logger))

	return &Services{
		UserLookupService:  NewUserLookupService(storages.UserRepository, logger),
		ObjectFetchService: objectFetchService,
		AppInfoService:     appInfoService,
		HealthService:      NewHealthService(storages.UserRepository, logger),
	}, nil
}
