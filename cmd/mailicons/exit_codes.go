package main

import (
	"errors"
	"os"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
)

// Exit codes for the mailicons CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// Per-file failures inside a batch do not change the exit code.
const (
	ExitSuccess = 0 // Run completed, including runs with per-file failures
	ExitGeneral = 1 // General/unexpected error, interrupted run
	ExitUsage   = 2 // Invalid flags, config, or icon table
	ExitIO      = 3 // No input matched, destination not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrDestination) ||
		errors.Is(err, os.ErrPermission) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidPattern) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrUnknownIcon) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mailicons.ErrTableNotFound) ||
		errors.Is(err, mailicons.ErrInvalidIconTable) ||
		errors.Is(err, mailicons.ErrInvalidAssetPath) ||
		errors.Is(err, mailicons.ErrInvalidDialect) ||
		errors.Is(err, mailicons.ErrInvalidSource) {
		return ExitUsage
	}

	return ExitGeneral
}
