package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// errHelp is returned by the parsers for -h and --help.
var errHelp = flag.ErrHelp

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// batchFlags holds flags for commands that rewrite template files.
type batchFlags struct {
	dryRun  bool
	workers int
}

// tableFlags selects the icon table.
type tableFlags struct {
	table     string // Name or path of the icon table
	assetPath string // Override table directory
}

// iconsFlags holds all flags for the icons command.
type iconsFlags struct {
	common   commonFlags
	batch    batchFlags
	tables   tableFlags
	baseURL  string
	encoded  bool
	keepFont bool
	watch    bool
	set      setFlags
}

// urlsFlags holds all flags for the urls command.
type urlsFlags struct {
	common commonFlags
	batch  batchFlags
	from   string
	to     string
	set    setFlags
}

// repairFlags holds all flags for the repair command.
type repairFlags struct {
	common commonFlags
	batch  batchFlags
	prefix string
	set    setFlags
}

// fetchFlags holds all flags for the fetch command.
type fetchFlags struct {
	common       commonFlags
	tables       tableFlags
	dest         string
	sources      []string
	skipExisting bool
	set          setFlags
}

// doctorFlags holds all flags for the doctor command.
type doctorFlags struct {
	common commonFlags
	tables tableFlags
	root   string
	json   bool
	set    setFlags
}

// tableCmdFlags holds all flags for the table command.
type tableCmdFlags struct {
	common commonFlags
	tables tableFlags
	list   bool
	set    setFlags
}

// setFlags records which flags were given on the command line.
// Only those override config values.
type setFlags map[string]bool

func (s setFlags) has(name string) bool { return s[name] }

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name, path, or preset")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors and unknown icons")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file detail and timing")
}

// addBatchFlags adds flags for file-rewriting commands.
func addBatchFlags(fs *flag.FlagSet, f *batchFlags) {
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report changes without writing files")
	fs.IntVarP(&f.workers, "workers", "w", 1, "parallel workers (0 = auto)")
}

// addTableFlags adds icon table selection flags.
func addTableFlags(fs *flag.FlagSet, f *tableFlags) {
	fs.StringVarP(&f.table, "table", "t", "", "icon table name or YAML path")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory containing tables/{name}.yaml")
}

// newFlagSet creates a FlagSet that reports errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseFlagSet parses args and collects the names of flags that were set.
func parseFlagSet(fs *flag.FlagSet, args []string) (setFlags, []string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, errHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	set := setFlags{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, fs.Args(), nil
}

// parseIconsFlags parses flags for the icons command.
// args excludes the command name.
func parseIconsFlags(args []string) (*iconsFlags, []string, error) {
	f := &iconsFlags{}
	fs := newFlagSet("icons")
	addCommonFlags(fs, &f.common)
	addBatchFlags(fs, &f.batch)
	addTableFlags(fs, &f.tables)
	fs.StringVar(&f.baseURL, "base-url", "", "prefix icon paths with this URL")
	fs.BoolVar(&f.encoded, "encoded", false, "match entity-encoded markup")
	fs.BoolVar(&f.keepFont, "keep-font", false, "keep the icon font directives")
	fs.BoolVar(&f.watch, "watch", false, "keep running and rewrite templates as they change")

	set, positional, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.set = set
	return f, positional, nil
}

// parseURLsFlags parses flags for the urls command.
func parseURLsFlags(args []string) (*urlsFlags, []string, error) {
	f := &urlsFlags{}
	fs := newFlagSet("urls")
	addCommonFlags(fs, &f.common)
	addBatchFlags(fs, &f.batch)
	fs.StringVar(&f.from, "from", "", "src prefix to replace")
	fs.StringVar(&f.to, "to", "", "replacement src prefix")

	set, positional, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.set = set
	return f, positional, nil
}

// parseRepairFlags parses flags for the repair command.
func parseRepairFlags(args []string) (*repairFlags, []string, error) {
	f := &repairFlags{}
	fs := newFlagSet("repair")
	addCommonFlags(fs, &f.common)
	addBatchFlags(fs, &f.batch)
	fs.StringVar(&f.prefix, "prefix", "", "src prefix identifying icon images")

	set, positional, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.set = set
	return f, positional, nil
}

// parseFetchFlags parses flags for the fetch command.
func parseFetchFlags(args []string) (*fetchFlags, []string, error) {
	f := &fetchFlags{}
	fs := newFlagSet("fetch")
	addCommonFlags(fs, &f.common)
	addTableFlags(fs, &f.tables)
	fs.StringVarP(&f.dest, "dest", "d", "", "destination directory for SVG files")
	fs.StringArrayVar(&f.sources, "source", nil, "URL template with {name} (repeatable)")
	fs.BoolVar(&f.skipExisting, "skip-existing", false, "keep SVG files already present")

	set, positional, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.set = set
	return f, positional, nil
}

// parseDoctorFlags parses flags for the doctor command.
func parseDoctorFlags(args []string) (*doctorFlags, []string, error) {
	f := &doctorFlags{}
	fs := newFlagSet("doctor")
	addCommonFlags(fs, &f.common)
	addTableFlags(fs, &f.tables)
	fs.StringVar(&f.root, "root", ".", "project root holding the icon assets")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")

	set, positional, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.set = set
	return f, positional, nil
}

// parseTableFlags parses flags for the table command.
func parseTableFlags(args []string) (*tableCmdFlags, []string, error) {
	f := &tableCmdFlags{}
	fs := newFlagSet("table")
	addCommonFlags(fs, &f.common)
	addTableFlags(fs, &f.tables)
	fs.BoolVarP(&f.list, "list", "l", false, "list built-in tables")

	set, positional, err := parseFlagSet(fs, args)
	if err != nil {
		return nil, nil, err
	}
	f.set = set
	return f, positional, nil
}
