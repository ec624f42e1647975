package staticfs

import "errors"

var (
	ErrMissingRoot = errors.New("config doesn't contain a root directory")
	ErrInvalidPort = errors.New("port is outside of the valid range (1-65535)")
	ErrInvalidExt  = errors.New("extension has to start with a leading dot")
)
