package main

import (
	"fmt"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/assets"
	"github.com/alnah/go-mailicons/internal/yamlutil"
)

// runTable prints the resolved icon table as YAML, in the format
// accepted by --table. With --list it prints the built-in table names.
func runTable(args []string, env *Environment) error {
	flags, _, err := parseTableFlags(args)
	if err != nil {
		return err
	}

	if flags.list {
		for _, name := range mailicons.AvailableTables() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeTableFlags(flags.set, flags.tables, cfg)

	table, err := loadTable(cfg.Icons.Table, cfg.Assets.BasePath)
	if err != nil {
		return err
	}

	doc := assets.Table{Icons: make([]assets.Entry, 0, table.Len())}
	for _, e := range table.Entries() {
		doc.Icons = append(doc.Icons, assets.Entry{Name: e.Name, Path: e.Path})
	}
	data, err := yamlutil.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding table: %w", err)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Table %q: %d icons\n", table.Name(), table.Len())
	}
	_, err = env.Stdout.Write(data)
	return err
}
