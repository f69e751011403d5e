package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/alnah/go-mailicons"
	"github.com/alnah/go-mailicons/internal/config"
	"github.com/alnah/go-mailicons/internal/fileutil"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string     `json:"status"` // "ready", "warnings", "errors"
	Config   configInfo `json:"config"`
	Table    tableInfo  `json:"table"`
	Assets   assetInfo  `json:"assets"`
	Input    inputInfo  `json:"input"`
	System   systemInfo `json:"system"`
	Warnings []string   `json:"warnings,omitempty"`
	Errors   []string   `json:"errors,omitempty"`
}

// configInfo holds config loading results.
type configInfo struct {
	Source string `json:"source"` // "defaults" or the -c value
	Valid  bool   `json:"valid"`
}

// tableInfo holds icon table loading results.
type tableInfo struct {
	Loaded bool   `json:"loaded"`
	Name   string `json:"name,omitempty"`
	Icons  int    `json:"icons"`
}

// assetInfo holds local SVG presence results.
type assetInfo struct {
	Root    string   `json:"root"`
	Present int      `json:"present"`
	Remote  int      `json:"remote"` // entries whose path is already a URL
	Missing []string `json:"missing,omitempty"`
}

// inputInfo holds template discovery results.
type inputInfo struct {
	Patterns []string `json:"patterns"`
	Files    int      `json:"files"`
}

// systemInfo holds runtime details.
type systemInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	GOMAXPROCS int    `json:"gomaxprocs"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found, 2 = bad flags.
func runDoctorCmd(args []string, env *Environment) int {
	flags, _, err := parseDoctorFlags(args)
	if err != nil {
		if errors.Is(err, errHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		return ExitUsage
	}

	result := runDoctor(flags)

	if flags.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(flags *doctorFlags) *doctorResult {
	result := &doctorResult{
		Status: "ready",
		System: systemInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			GOMAXPROCS: runtime.GOMAXPROCS(0),
		},
	}

	cfg := checkConfig(result, flags)
	table := checkTable(result, cfg)
	if table != nil {
		checkAssets(result, table, flags.root)
	}
	checkInput(result, cfg)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkConfig loads and validates the config. On failure the defaults
// are used for the remaining checks.
func checkConfig(result *doctorResult, flags *doctorFlags) *config.Config {
	result.Config.Source = "defaults"
	if flags.common.config != "" {
		result.Config.Source = flags.common.config
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Config: %v", err))
		cfg = config.DefaultConfig()
	} else {
		result.Config.Valid = true
	}

	mergeTableFlags(flags.set, flags.tables, cfg)
	return cfg
}

// checkTable loads the configured icon table.
func checkTable(result *doctorResult, cfg *config.Config) *mailicons.IconTable {
	table, err := loadTable(cfg.Icons.Table, cfg.Assets.BasePath)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Icon table: %v", err))
		return nil
	}
	result.Table = tableInfo{Loaded: true, Name: table.Name(), Icons: table.Len()}
	return table
}

// checkAssets verifies that every local table path exists under root.
func checkAssets(result *doctorResult, table *mailicons.IconTable, root string) {
	result.Assets.Root = root
	for _, e := range table.Entries() {
		if fileutil.IsURL(e.Path) {
			result.Assets.Remote++
			continue
		}
		if fileutil.FileExists(filepath.Join(root, filepath.FromSlash(e.Path))) {
			result.Assets.Present++
			continue
		}
		result.Assets.Missing = append(result.Assets.Missing, e.Path)
	}

	if n := len(result.Assets.Missing); n > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("%d icon assets missing under %s. Run 'mailicons fetch' from the project root", n, root))
	}
}

// checkInput reports how many templates the configured patterns match.
func checkInput(result *doctorResult, cfg *config.Config) {
	result.Input.Patterns = cfg.Input.Patterns
	files, err := discoverFiles(cfg.Input.Patterns)
	if err != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("No template matched %v", cfg.Input.Patterns))
		return
	}
	result.Input.Files = len(files)
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "mailicons doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config")
	if r.Config.Valid {
		fmt.Fprintf(w, "  [OK] Source: %s\n", r.Config.Source)
	} else {
		fmt.Fprintf(w, "  [ERROR] Source: %s\n", r.Config.Source)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Icon table")
	if r.Table.Loaded {
		fmt.Fprintf(w, "  [OK] %s: %d icons\n", r.Table.Name, r.Table.Icons)
		if len(r.Assets.Missing) == 0 {
			fmt.Fprintf(w, "  [OK] Assets: %d present under %s\n", r.Assets.Present, r.Assets.Root)
		} else {
			fmt.Fprintf(w, "  [ERROR] Assets: %d present, %d missing under %s\n", r.Assets.Present, len(r.Assets.Missing), r.Assets.Root)
			for _, p := range r.Assets.Missing {
				fmt.Fprintf(w, "          %s\n", p)
			}
		}
		if r.Assets.Remote > 0 {
			fmt.Fprintf(w, "  [OK] Remote: %d\n", r.Assets.Remote)
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not loaded")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Templates")
	if r.Input.Files > 0 {
		fmt.Fprintf(w, "  [OK] %d files match %v\n", r.Input.Files, r.Input.Patterns)
	} else {
		fmt.Fprintf(w, "  [WARN] No files match %v\n", r.Input.Patterns)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.System.OS, r.System.Arch)
	fmt.Fprintf(w, "  [OK] GOMAXPROCS: %d\n", r.System.GOMAXPROCS)
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case "ready":
		fmt.Fprintln(w, "Status: Ready")
	case "warnings":
		fmt.Fprintln(w, "Status: Ready with warnings")
	case "errors":
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
