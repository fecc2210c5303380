package configuration

import "errors"

// ErrInvalidValue is an error that occurs when a configuration value cannot be
// interpreted.
var ErrInvalidValue = errors.New("invalid configuration value")
