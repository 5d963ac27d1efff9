package main

import (
	"errors"
	"os"

	texgen "github.com/alnah/go-texgen"
)

// Exit codes for the texgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess   = 0 // Successful generation
	ExitGeneral   = 1 // General/unexpected error
	ExitUsage     = 2 // Invalid flags, config, or validation
	ExitIO        = 3 // File not found, permission denied
	ExitToolchain = 4 // latexmk missing or compilation failed
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Toolchain errors (exit 4)
	if errors.Is(err, texgen.ErrToolchainNotFound) ||
		errors.Is(err, texgen.ErrRenderFailed) {
		return ExitToolchain
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, texgen.ErrConfigNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, texgen.ErrConfigParse) ||
		errors.Is(err, texgen.ErrContentParse) ||
		errors.Is(err, texgen.ErrMissingField) ||
		errors.Is(err, texgen.ErrInvalidRevision) ||
		errors.Is(err, ErrNoConfig) {
		return ExitUsage
	}

	return ExitGeneral
}
