package pipeline

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("does not exist")
	ErrNotFile      = errors.New("is not a file")
	ErrNotDir       = errors.New("is not a directory")
	ErrOutputIsFile = errors.New("is a file, a directory is required")
	ErrSameAsInput  = errors.New("is the input directory")
)

// ConfigError reports a problem found before any image work starts.
type ConfigError struct {
	Role string // "input", "output" or "" for flag problems
	Path string // absolute path involved, if any
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("the %s path %q %v", e.Role, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is, or wraps, a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
