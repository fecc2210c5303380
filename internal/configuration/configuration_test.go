package configuration_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/fsprobe/internal/configuration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEnvProvider reads files like the production provider, but serves
// environment lookups from a map.
type fakeEnvProvider struct {
	configuration.GodotenvProvider
	env map[string]string
}

func (f *fakeEnvProvider) LookupEnv(key string) (string, bool) {
	value, ok := f.env[key]

	return value, ok
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fsprobe.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestEstablishConfiguration_Success_File(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `# fsprobe
FSPROBE_MOUNT_TABLE="/proc/mounts"
FSPROBE_REQUIRED_BYTES=1048576
FSPROBE_TEMP_DIR=/mnt/cache/tmp
`)

	handler := configuration.NewHandler(&fakeEnvProvider{})

	config, err := handler.EstablishConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, &configuration.AppConfiguration{
		MountTable:    "/proc/mounts",
		RequiredBytes: 1048576,
		TempDir:       "/mnt/cache/tmp",
	}, config)
}

func TestEstablishConfiguration_Success_EnvOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "FSPROBE_MOUNT_TABLE=/proc/mounts\nFSPROBE_TEMP_DIR=/tmp\n")

	handler := configuration.NewHandler(&fakeEnvProvider{
		env: map[string]string{
			configuration.KeyMountTable:    "/etc/mtab",
			configuration.KeyRequiredBytes: "42",
		},
	})

	config, err := handler.EstablishConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "/etc/mtab", config.MountTable)
	assert.Equal(t, uint64(42), config.RequiredBytes)
	assert.Equal(t, "/tmp", config.TempDir)
}

func TestEstablishConfiguration_Success_MissingFile(t *testing.T) {
	t.Parallel()

	handler := configuration.NewHandler(&fakeEnvProvider{})

	config, err := handler.EstablishConfiguration(filepath.Join(t.TempDir(), "missing.conf"))
	require.NoError(t, err)
	assert.Equal(t, &configuration.AppConfiguration{}, config)
}

func TestEstablishConfiguration_Fail_InvalidBytes(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "FSPROBE_REQUIRED_BYTES=lots\n")
	handler := configuration.NewHandler(&fakeEnvProvider{})

	config, err := handler.EstablishConfiguration(path)
	require.ErrorIs(t, err, configuration.ErrInvalidValue)
	assert.Nil(t, config)
}

func TestEstablishConfiguration_Fail_Unreadable(t *testing.T) {
	t.Parallel()

	handler := configuration.NewHandler(&fakeEnvProvider{})

	config, err := handler.EstablishConfiguration(t.TempDir())
	require.Error(t, err)
	assert.False(t, errors.Is(err, configuration.ErrInvalidValue))
	assert.Nil(t, config)
}

func TestMapKeyToString(t *testing.T) {
	t.Parallel()

	handler := configuration.NewHandler(&fakeEnvProvider{})
	envMap := map[string]string{"A": "1"}

	assert.Equal(t, "1", handler.MapKeyToString(envMap, "A"))
	assert.Empty(t, handler.MapKeyToString(envMap, "B"))
}
