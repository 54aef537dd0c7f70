// Where: internal/commands/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package commands

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/alice-bot/alice-new/internal/elixir"
	"github.com/alice-bot/alice-new/internal/interaction"
	"github.com/alice-bot/alice-new/internal/namespace"
	"github.com/alice-bot/alice-new/internal/version"
)

// Dependencies holds all injected dependencies required for CLI command
// execution. This structure enables dependency injection for testing and
// allows swapping implementations of various subsystems.
type Dependencies struct {
	Out io.Writer
	// Lookup answers whether a module name is already defined. When nil
	// the per-user registry file is loaded.
	Lookup namespace.Lookup
	// Confirm asks the overwrite question. When nil the interactive
	// default is used.
	Confirm namespace.ConfirmFunc
	// ElixirProbe supplies the `elixir --version` output. When nil the
	// real toolchain is probed.
	ElixirProbe elixir.VersionProbe
	// ConfigPath overrides the global config location for the
	// generated-project ledger. Empty means the default path.
	ConfigPath string
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Path   string `arg:"" optional:"" help:"Path for the new handler project"`
	Name   string `help:"Handler name (defaults to the last path segment)"`
	Module string `help:"Handler module (defaults to the camelized handler name)"`
}

// Run is the main entry point for CLI command execution. It parses the
// command-line arguments and dispatches to the new-project flow.
// Returns 0 on success, 1 on error.
func Run(args []string, deps Dependencies) int {
	out := deps.Out
	if out == nil {
		out = os.Stdout
	}

	// Version query form: exactly -v or --version as the sole argument.
	if len(args) == 1 && (args[0] == "-v" || args[0] == "--version") {
		writeLine(out, version.Banner())
		return 0
	}

	// Handle no arguments: show usage and exit cleanly.
	if len(args) == 0 {
		return runNoArgs(out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli)
	if err != nil {
		return exitWithError(out, err)
	}

	if _, err := parser.Parse(args); err != nil {
		return handleParseError(args, err, out)
	}

	if cli.Path == "" {
		return runNoArgs(out)
	}

	// Load .env if present; it may carry the config home or registry
	// overrides.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			writeLine(out, "Warning: failed to load .env: "+err.Error())
		}
	}

	if deps.Confirm == nil {
		deps.Confirm = interaction.DefaultConfirm
	}

	return runNew(cli, deps, out)
}

// runNoArgs handles the case when alice-new is invoked without a path.
func runNoArgs(out io.Writer) int {
	writeLine(out, "Usage:")
	writeLine(out, "  alice-new <path> [--name <handler_name>] [--module <Module.Name>]")
	writeLine(out, "")
	writeLine(out, "Generates a new Alice handler project at <path>, prefixed with alice_.")
	writeLine(out, "")
	writeLine(out, "Options:")
	writeLine(out, "  --name      Handler name (defaults to the last path segment)")
	writeLine(out, "  --module    Handler module (defaults to the camelized handler name)")
	writeLine(out, "  -v, --version   Print the version and exit")
	return 0
}

// handleParseError provides user-friendly error messages for parse
// failures, reporting unknown flags in the form they were typed.
func handleParseError(args []string, err error, out io.Writer) int {
	if offender := firstUnknownOption(args); offender != "" {
		writeLine(out, "Invalid option: "+offender)
		return 1
	}
	return exitWithError(out, err)
}

// firstUnknownOption scans raw argv for the first flag token the CLI
// does not recognize, keeping any =value part as typed.
func firstUnknownOption(args []string) string {
	skipNext := false
	for _, arg := range args {
		if skipNext {
			skipNext = false
			continue
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		switch {
		case arg == "--name", arg == "--module":
			skipNext = true
		case strings.HasPrefix(arg, "--name="), strings.HasPrefix(arg, "--module="):
		default:
			return arg
		}
	}
	return ""
}
