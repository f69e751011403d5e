package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/alnah/go-mailicons"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now        func() time.Time
	Stdout     io.Writer
	Stderr     io.Writer
	HTTPClient *http.Client // used by fetch
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:        time.Now,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		HTTPClient: &http.Client{Timeout: mailicons.DefaultFetchTimeout},
	}
}
