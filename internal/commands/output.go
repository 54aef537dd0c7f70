// Where: internal/commands/output.go
// What: Output helpers for command adapters.
// Why: Centralize console usage and raw line output.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/alice-bot/alice-new/internal/ui"
)

func console(out io.Writer) *ui.Console {
	return ui.New(out)
}

func writeLine(out io.Writer, line string) {
	if out == nil {
		return
	}
	if strings.HasSuffix(line, "\n") {
		_, _ = io.WriteString(out, line)
		return
	}
	_, _ = io.WriteString(out, line+"\n")
}

func exitWithError(out io.Writer, err error) int {
	writeLine(out, fmt.Sprintf("✗ %v", err))
	return 1
}
