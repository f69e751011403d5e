package main

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnknownCommand is returned for unrecognized command names.
var ErrUnknownCommand = errors.New("unknown command")

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons <command> [flags] [patterns...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  icons      Replace icon font markup with <img> tags")
	fmt.Fprintln(w, "  urls       Rewrite icon src prefixes")
	fmt.Fprintln(w, "  repair     Remove stray font-size text from icon <img> tags")
	fmt.Fprintln(w, "  fetch      Download the SVG assets of an icon table")
	fmt.Fprintln(w, "  table      Print an icon table as YAML")
	fmt.Fprintln(w, "  doctor     Check config, icon table and assets")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mailicons help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config name, path, or preset (newsletters, download-pages)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors and unknown icons")
	fmt.Fprintln(w, "  -v, --verbose             Show per-file detail and timing")
}

// printBatchUsage prints the flags of file-rewriting commands.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "  -n, --dry-run             Report changes without writing files")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, default 1)")
	fmt.Fprintln(w)
}

// printTableFlagsUsage prints the icon table selection flags.
func printTableFlagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Icon Table:")
	fmt.Fprintln(w, "  -t, --table <name>        Table name or YAML path (default: material)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory containing tables/{name}.yaml")
	fmt.Fprintln(w)
}

// printPatternsUsage explains positional patterns.
func printPatternsUsage(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  patterns   Files or glob patterns (default: input.patterns from config,")
	fmt.Fprintln(w, "             emails/newsletters/*.html without config)")
	fmt.Fprintln(w)
}

// printIconsUsage prints usage for the icons command.
func printIconsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons icons [flags] [patterns...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace <span class=\"material-icons\">NAME</span> with <img> tags")
	fmt.Fprintln(w, "pointing at the SVG of NAME, then remove the icon font directives.")
	fmt.Fprintln(w, "Files are only written when their content changes.")
	fmt.Fprintln(w)
	printPatternsUsage(w)
	printTableFlagsUsage(w)
	fmt.Fprintln(w, "Rewrite:")
	fmt.Fprintln(w, "      --base-url <url>      Prefix icon paths with this URL")
	fmt.Fprintln(w, "      --encoded             Match entity-encoded markup (&lt;span ...&gt;)")
	fmt.Fprintln(w, "      --keep-font           Keep font imports, links and .material-icons rules")
	fmt.Fprintln(w, "      --watch               Keep running and rewrite templates as they are saved")
	fmt.Fprintln(w)
	printBatchUsage(w)
	printCommonUsage(w)
}

// printURLsUsage prints usage for the urls command.
func printURLsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons urls --to <prefix> [flags] [patterns...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Replace src=\"FROM...\" with src=\"TO...\" in plain and encoded markup.")
	fmt.Fprintln(w)
	printPatternsUsage(w)
	fmt.Fprintln(w, "Rewrite:")
	fmt.Fprintln(w, "      --from <prefix>       Prefix to replace (default: assets/images/icons/)")
	fmt.Fprintln(w, "      --to <prefix>         Replacement prefix (required unless set in config)")
	fmt.Fprintln(w)
	printBatchUsage(w)
	printCommonUsage(w)
}

// printRepairUsage prints usage for the repair command.
func printRepairUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons repair [flags] [patterns...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rebuild icon <img> tags that carry stray font-size text after the")
	fmt.Fprintln(w, "style attribute, keeping src, alt and a cleaned style.")
	fmt.Fprintln(w)
	printPatternsUsage(w)
	fmt.Fprintln(w, "Repair:")
	fmt.Fprintln(w, "      --prefix <prefix>     src prefix of icon images (default: assets/images/icons/)")
	fmt.Fprintln(w)
	printBatchUsage(w)
	printCommonUsage(w)
}

// printFetchUsage prints usage for the fetch command.
func printFetchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons fetch [flags] [icon names...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Download {dest}/{name}.svg for every icon of the table, or only the")
	fmt.Fprintln(w, "named icons. Sources are tried in order, once each.")
	fmt.Fprintln(w)
	printTableFlagsUsage(w)
	fmt.Fprintln(w, "Download:")
	fmt.Fprintln(w, "  -d, --dest <dir>          Destination directory (default: assets/images/icons)")
	fmt.Fprintln(w, "      --source <url>        URL template with {name}, repeatable")
	fmt.Fprintln(w, "      --skip-existing       Keep SVG files already present")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printTableUsage prints usage for the table command.
func printTableUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons table [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the resolved icon table as YAML. Save the output under")
	fmt.Fprintln(w, "{asset-path}/tables/ to extend it.")
	fmt.Fprintln(w)
	printTableFlagsUsage(w)
	fmt.Fprintln(w, "  -l, --list                List built-in tables")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mailicons doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that the config is valid, the icon table loads, every icon")
	fmt.Fprintln(w, "asset exists under the project root and templates are found.")
	fmt.Fprintln(w)
	printTableFlagsUsage(w)
	fmt.Fprintln(w, "Doctor:")
	fmt.Fprintln(w, "      --root <dir>          Project root holding the assets (default: .)")
	fmt.Fprintln(w, "      --json                Print results as JSON")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "icons":
		printIconsUsage(env.Stdout)
	case "urls":
		printURLsUsage(env.Stdout)
	case "repair":
		printRepairUsage(env.Stdout)
	case "fetch":
		printFetchUsage(env.Stdout)
	case "table":
		printTableUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mailicons version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mailicons help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
