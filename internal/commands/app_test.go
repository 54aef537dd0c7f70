// Where: internal/commands/app_test.go
// What: Tests for CLI run behavior.
// Why: Ensure dispatch, version, and usage handling remain stable.
package commands

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"
)

func TestRunVersionFlag(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	for _, flag := range []string{"-v", "--version"} {
		var out bytes.Buffer
		exitCode := Run([]string{flag}, Dependencies{Out: &out})
		if exitCode != 0 {
			t.Fatalf("expected exit code 0 for %s, got %d", flag, exitCode)
		}
		line := strings.TrimSpace(out.String())
		if !regexp.MustCompile(`^Alice v\d+\.\d+\.\d+$`).MatchString(line) {
			t.Fatalf("unexpected version output: %q", line)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("version query must not write files, found %v", entries)
	}
}

func TestRunNoArgsShowsUsage(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run(nil, Dependencies{Out: &out})
	if exitCode != 0 {
		t.Fatalf("expected exit code 0, got %d", exitCode)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage text, got %q", out.String())
	}
	if !strings.Contains(out.String(), "--name") {
		t.Fatalf("expected option listing, got %q", out.String())
	}
}

func TestRunUnknownOption(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"my_handler", "--frob=yes"}, Dependencies{Out: &out})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if !strings.Contains(out.String(), "Invalid option: --frob=yes") {
		t.Fatalf("expected invalid option message, got %q", out.String())
	}
}

func TestRunUnknownOptionWithoutValue(t *testing.T) {
	var out bytes.Buffer
	exitCode := Run([]string{"--frob", "my_handler"}, Dependencies{Out: &out})
	if exitCode == 0 {
		t.Fatalf("expected non-zero exit code")
	}
	if !strings.Contains(out.String(), "Invalid option: --frob") {
		t.Fatalf("expected invalid option message, got %q", out.String())
	}
}

func TestFirstUnknownOptionSkipsKnownFlags(t *testing.T) {
	args := []string{"--name", "custom", "--module", "Foo.Bar", "my_handler"}
	if got := firstUnknownOption(args); got != "" {
		t.Fatalf("expected no offender, got %q", got)
	}
	args = []string{"--name=custom", "--wat", "my_handler"}
	if got := firstUnknownOption(args); got != "--wat" {
		t.Fatalf("expected --wat, got %q", got)
	}
}
