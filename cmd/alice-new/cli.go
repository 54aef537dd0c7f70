// Where: cmd/alice-new/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/alice-bot/alice-new/internal/commands"
	"github.com/alice-bot/alice-new/internal/elixir"
	"github.com/alice-bot/alice-new/internal/interaction"
)

// buildDependencies constructs the runtime dependencies of the CLI.
// The namespace lookup is left nil so the registry file is loaded
// lazily, after any .env overrides have been applied.
func buildDependencies() commands.Dependencies {
	return commands.Dependencies{
		Out:         os.Stdout,
		Confirm:     interaction.DefaultConfirm,
		ElixirProbe: elixir.Detect,
	}
}
