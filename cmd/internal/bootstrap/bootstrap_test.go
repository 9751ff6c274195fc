package bootstrap

import (
	"consultas/cmd/internal/config"
	"consultas/cmd/internal/domain/entity"
	"consultas/cmd/internal/service"
	"consultas/cmd/internal/utils/apierror"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, driver string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		StorageDriver: driver,
		DatabasePath:  filepath.Join(dir, "database.db"),
		BlobDir:       filepath.Join(dir, "data"),
		BlobKey:       service.DefaultBlobKey,
	}
}

func TestOpenStore_PersistsAcrossReopen(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverFile} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)

			store, closeFn, err := OpenStore(cfg)
			require.NoError(t, err)
			appt, err := store.Add(&service.AppointmentRequest{
				Name: "João", IdentifierNumber: "11122233344", Specialty: "Cardio", Date: "2024-01-01", Time: "10:00",
			})
			require.NoError(t, err)
			require.NoError(t, closeFn())

			reopened, closeFn, err := OpenStore(cfg)
			require.NoError(t, err)
			defer closeFn()
			assert.Equal(t, []entity.Appointment{appt}, reopened.All())
		})
	}
}

func TestOpenStore_Memory(t *testing.T) {
	store, closeFn, err := OpenStore(testConfig(t, config.DriverMemory))
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, 0, store.Len())
}

func TestOpenStore_StrictCorruptBlob(t *testing.T) {
	cfg := testConfig(t, config.DriverFile)
	cfg.StrictLoad = true
	require.NoError(t, os.MkdirAll(cfg.BlobDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.BlobDir, cfg.BlobKey+".json"), []byte("garbage"), 0o644))

	_, _, err := OpenStore(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apierror.CorruptStateError))
}

func TestOpenRepository_UnknownDriver(t *testing.T) {
	_, _, err := OpenRepository(testConfig(t, "redis"))
	assert.ErrorContains(t, err, "redis")
}
