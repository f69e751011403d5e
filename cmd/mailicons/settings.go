package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
	"github.com/alnah/go-mailicons/internal/fileutil"
	"github.com/alnah/go-mailicons/internal/hints"
)

// loadConfig returns the named config, or DefaultConfig when name is empty.
// A missing config gets a hint listing where to create it.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(userConfigPaths(name), config.PresetNames()))
		}
		return nil, err
	}
	return cfg, nil
}

// userConfigPaths returns the per-user locations searched for a config name.
func userConfigPaths(name string) []string {
	if fileutil.IsFilePath(name) {
		return nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(dir, "go-mailicons", name+".yaml")}
}

// loadTable loads the icon table and attaches hints to lookup failures.
func loadTable(nameOrPath, assetPath string) (*mailicons.IconTable, error) {
	table, err := mailicons.LoadIconTable(nameOrPath, assetPath)
	if err != nil {
		switch {
		case errors.Is(err, mailicons.ErrTableNotFound):
			return nil, fmt.Errorf("%w%s", err, hints.ForTableNotFound(mailicons.AvailableTables()))
		case errors.Is(err, mailicons.ErrInvalidAssetPath):
			return nil, fmt.Errorf("%w%s", err, hints.ForAssetPath())
		}
		return nil, err
	}
	return table, nil
}

// mergeWorkers applies --workers over batch.workers.
func mergeWorkers(set setFlags, batch batchFlags, cfg *config.Config) error {
	if !set.has("workers") {
		return nil
	}
	if err := validateWorkers(batch.workers); err != nil {
		return err
	}
	cfg.Batch.Workers = batch.workers
	return nil
}

// mergeTableFlags applies --table and --asset-path over the config.
func mergeTableFlags(set setFlags, f tableFlags, cfg *config.Config) {
	if set.has("table") {
		cfg.Icons.Table = f.table
	}
	if set.has("asset-path") {
		cfg.Assets.BasePath = f.assetPath
	}
}
