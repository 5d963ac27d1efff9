package texgen

import "errors"

// Sentinel errors for library operations.
var (
	// Config loading errors.
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrMissingField   = errors.New("missing required field")

	// Content loading errors.
	ErrContentParse    = errors.New("failed to parse content file")
	ErrInvalidRevision = errors.New("invalid revision history")

	// Toolchain errors.
	ErrToolchainNotFound = errors.New("latex toolchain not found")
	ErrRenderFailed      = errors.New("latex compilation failed")
)
