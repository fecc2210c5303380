package configuration

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// GodotenvProvider reads fsprobe's KEY=VALUE configuration files (such as
// [DefaultConfigFile]) and the process environment that overrides them.
type GodotenvProvider struct{}

// Read parses the given env files into a map, with later files overriding
// keys of earlier ones.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	values, err := godotenv.Read(filenames...)
	if err != nil {
		return values, fmt.Errorf("(config-godotenv) failed to read %v: %w", filenames, err)
	}

	return values, nil
}

// LookupEnv returns an FSPROBE_* override from the environment, if set.
func (*GodotenvProvider) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
