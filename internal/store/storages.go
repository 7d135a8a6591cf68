package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/culinary-server/internal/config"
	"github.com/MKhiriev/culinary-server/internal/logger"
)

// Storages groups the repositories of the selected backend.
type Storages struct {
	UserRepository  UserRepository
	ClassRepository ClassRepository
	CartRepository  CartRepository

	close func(context.Context) error
}

// NewStorages connects to the backend named by cfg.Driver and builds its
// repositories. The postgres backend is migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo, "":
		m, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository:  NewMongoUserRepository(m, log),
			ClassRepository: NewMongoClassRepository(m, log),
			CartRepository:  NewMongoCartRepository(m, log),
			close:           m.Close,
		}, nil

	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			_ = db.Close(ctx)
			return nil, err
		}

		return &Storages{
			UserRepository:  NewUserRepository(db, log),
			ClassRepository: NewClassRepository(db, log),
			CartRepository:  NewCartRepository(db, log),
			close:           db.Close,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s == nil || s.close == nil {
		return nil
	}

	return s.close(ctx)
}
