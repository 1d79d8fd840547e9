package providers

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/totegamma/logistics-backend/internal/config"
	"github.com/totegamma/logistics-backend/internal/domain"
	"github.com/totegamma/logistics-backend/internal/infra/cache"
	"github.com/totegamma/logistics-backend/internal/infra/database"
	"github.com/totegamma/logistics-backend/internal/infra/database/models"
	"github.com/totegamma/logistics-backend/internal/infra/repository"
	"github.com/totegamma/logistics-backend/internal/service"
	"github.com/totegamma/logistics-backend/internal/usecase"
)

// NewDatabase opens a Postgres connection using the configured DSN.
func NewDatabase(conf config.Server, logger *zap.Logger) (*gorm.DB, error) {
	return database.NewPostgres(conf.PostgresDsn, logger)
}

// MigrateDatabase applies migrations for the application models.
func MigrateDatabase(db *gorm.DB) error {
	return database.MigratePostgres(db)
}

// NewDetailCache returns memcached when an address is configured and an
// in-process cache otherwise.
func NewDetailCache(conf config.Config) usecase.DetailCache {
	if conf.Server.MemcachedAddr != "" {
		return cache.NewMemcached(database.NewMemcached(conf.Server.MemcachedAddr), conf.API.CacheTTL)
	}
	return cache.NewLocal(conf.API.CacheTTL)
}

// NewSignalService connects to redis. It returns nil when no address is
// configured; the returned close func is always safe to call.
func NewSignalService(ctx context.Context, conf config.Server, logger *zap.Logger) (*service.SignalService, func(), error) {
	if conf.RedisAddr == "" {
		return nil, func() {}, nil
	}
	rdb, err := database.NewRedis(ctx, conf.RedisAddr, conf.RedisPassword, conf.RedisDB)
	if err != nil {
		return nil, func() {}, err
	}
	return service.NewSignalService(rdb, logger), func() { _ = rdb.Close() }, nil
}

// Usecases is every usecase the API serves.
type Usecases struct {
	Port     *usecase.PortUsecase
	Vessel   *usecase.VesselUsecase
	Customer *usecase.PartyUsecase
	Vendor   *usecase.PartyUsecase
}

// NewUsecases wires the gorm repositories into usecases sharing effects.
func NewUsecases(db *gorm.DB, effects usecase.Effects) Usecases {
	return Usecases{
		Port:   usecase.NewPortUsecase(repository.NewPortRepository(db), effects),
		Vessel: usecase.NewVesselUsecase(repository.NewVesselRepository(db), effects),
		Customer: usecase.NewPartyUsecase(
			domain.CustomerTree,
			repository.NewPartyRepository(db, domain.CustomerTree, models.CustomerTables),
			effects,
		),
		Vendor: usecase.NewPartyUsecase(
			domain.VendorTree,
			repository.NewPartyRepository(db, domain.VendorTree, models.VendorTables),
			effects,
		),
	}
}
