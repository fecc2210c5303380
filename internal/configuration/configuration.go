// Package configuration reads the settings of the probes from an optional
// env-style configuration file, with environment variables taking precedence.
package configuration

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
)

const (
	// DefaultConfigFile is the configuration file read when none is given.
	DefaultConfigFile = "/etc/fsprobe.conf"

	// KeyMountTable selects the mount table to read mount entries from.
	KeyMountTable = "FSPROBE_MOUNT_TABLE"

	// KeyRequiredBytes is the default amount of bytes a space check requires.
	KeyRequiredBytes = "FSPROBE_REQUIRED_BYTES"

	// KeyTempDir is the default directory for temporary files.
	KeyTempDir = "FSPROBE_TEMP_DIR"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
	LookupEnv(key string) (string, bool)
}

// AppConfiguration is the principal structure holding the application
// configuration.
type AppConfiguration struct {
	MountTable    string
	RequiredBytes uint64
	TempDir       string
}

// Handler is the principal implementation for reading configurations.
type Handler struct {
	GenericHandler genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		GenericHandler: genericHandler,
	}
}

// EstablishConfiguration reads the given configuration files into an
// [AppConfiguration]. Files that do not exist are treated as empty. Values
// set in the environment override those of the files.
func (c *Handler) EstablishConfiguration(filenames ...string) (*AppConfiguration, error) {
	envMap, err := c.ReadGeneric(filenames...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("(config) failed to read: %w", err)
		}
		envMap = make(map[string]string)
	}

	for _, key := range []string{KeyMountTable, KeyRequiredBytes, KeyTempDir} {
		if value, ok := c.GenericHandler.LookupEnv(key); ok {
			envMap[key] = value
		}
	}

	config := &AppConfiguration{
		MountTable: c.MapKeyToString(envMap, KeyMountTable),
		TempDir:    c.MapKeyToString(envMap, KeyTempDir),
	}

	if value := c.MapKeyToString(envMap, KeyRequiredBytes); value != "" {
		if config.RequiredBytes, err = strconv.ParseUint(value, 10, 64); err != nil {
			return nil, fmt.Errorf("(config) %w: %s=%q", ErrInvalidValue, KeyRequiredBytes, value)
		}
	}

	return config, nil
}

// ReadGeneric reads generic Unix-type configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.GenericHandler.Read(filenames...)
}

// MapKeyToString returns the value of key, or an empty string if unset.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}
