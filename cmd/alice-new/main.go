// Where: cmd/alice-new/main.go
// What: CLI entrypoint.
// Why: Execute the generator with configured dependencies.
package main

import (
	"os"

	"github.com/alice-bot/alice-new/internal/commands"
)

func main() {
	os.Exit(commands.Run(os.Args[1:], buildDependencies()))
}
