// Package bootstrap wires the configured blob backend to a loaded
// appointment store.
package bootstrap

import (
	"consultas/cmd/internal/config"
	"consultas/cmd/internal/domain/file"
	"consultas/cmd/internal/domain/memory"
	"consultas/cmd/internal/domain/sqlite"
	"consultas/cmd/internal/domain/sqlite/repository"
	"consultas/cmd/internal/service"
	"fmt"

	"github.com/labstack/gommon/log"
)

// OpenRepository returns the blob backend named by cfg.StorageDriver and a
// function releasing it.
func OpenRepository(cfg *config.Config) (service.BlobRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.DriverSQLite:
		db, err := sqlite.Init(cfg.DatabasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewBlobRepository(db), func() error { return sqlite.Close(db) }, nil

	case config.DriverFile:
		repo, err := file.NewBlobRepository(cfg.BlobDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open blob directory: %w", err)
		}
		return repo, noop, nil

	case config.DriverMemory:
		return memory.NewBlobRepository(), noop, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}

// OpenStore opens the backend and loads the appointments persisted in it.
func OpenStore(cfg *config.Config) (*service.AppointmentStore, func() error, error) {
	repo, closeFn, err := OpenRepository(cfg)
	if err != nil {
		return nil, nil, err
	}

	store := service.NewAppointmentStore(repo, service.StoreOptions{
		Key:        cfg.BlobKey,
		StrictLoad: cfg.StrictLoad,
	})
	appts, err := store.Load()
	if err != nil {
		_ = closeFn()
		return nil, nil, err
	}

	log.Infof("loaded %d appointments from %s storage", len(appts), cfg.StorageDriver)
	return store, closeFn, nil
}
