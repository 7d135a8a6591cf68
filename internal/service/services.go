package service

import (
	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
	"github.com/MKhiriev/culinary-server/internal/store"
)

type Services struct {
	AuthService  AuthService
	UserService  UserService
	ClassService ClassService
	CartService  CartService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(cfg.App, logger),
		UserService: NewUserService(storages.UserRepository, logger),
		ClassService: NewClassValidationService().
			Wrap(NewClassService(storages.ClassRepository, logger)),
		CartService: NewCartValidationService().
			Wrap(NewCartService(storages.CartRepository, logger)),
	}
}
