// Where: internal/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PromptYesNo prints a confirmation prompt and returns true for yes.
func PromptYesNo(message string) (bool, error) {
	reader := bufio.NewReader(os.Stdin)
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", message)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return ParseYesNo(line), nil
}

// ParseYesNo interprets a typed confirmation answer.
func ParseYesNo(answer string) bool {
	trimmed := strings.TrimSpace(strings.ToLower(answer))
	return trimmed == "y" || trimmed == "yes"
}

// DefaultConfirm picks the confirmation surface for the current
// process: the huh form on a terminal, a plain stdin prompt otherwise.
func DefaultConfirm(message string) (bool, error) {
	if IsTerminal(os.Stdin) {
		return HuhConfirm(message)
	}
	return PromptYesNo(message)
}
