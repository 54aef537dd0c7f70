// Where: internal/generator/generator.go
// What: Materialize the fixed template set into a project tree.
// Why: Turn a validated request into files, reporting exactly what was written.
package generator

import (
	"fmt"
	"path/filepath"

	"github.com/alice-bot/alice-new/internal/fileops"
)

// spec binds a template to its output location. The table, not per-file
// branches, is the single place a new generated file gets added.
type spec struct {
	template   string
	outputPath func(handlerName string) string
}

func fixed(path string) func(string) string {
	return func(string) string { return path }
}

var specs = []spec{
	{"formatter.tmpl", fixed(".formatter.exs")},
	{"gitignore.tmpl", fixed(".gitignore")},
	{"readme.tmpl", fixed("README.md")},
	{"mix.tmpl", fixed("mix.exs")},
	{"config.tmpl", fixed(filepath.Join("config", "config.exs"))},
	{"handler.tmpl", func(h string) string {
		return filepath.Join("lib", "alice", "handlers", h+".ex")
	}},
	{"handler_test.tmpl", func(h string) string {
		return filepath.Join("test", "alice", "handlers", h+"_test.exs")
	}},
}

// Generate renders every template and writes it under the request's
// target path, creating intermediate directories as needed. It returns
// the paths written, in order. On a write failure the remaining files
// are skipped and the partial list is returned alongside the error;
// nothing already written is rolled back.
func Generate(req Request) ([]string, error) {
	vars := req.Vars()
	written := make([]string, 0, len(specs))
	for _, s := range specs {
		relPath := s.outputPath(req.HandlerName)
		content, err := Render(s.template, vars)
		if err != nil {
			return written, err
		}
		outPath := filepath.Join(req.TargetPath, relPath)
		if err := fileops.WriteFile(outPath, content); err != nil {
			return written, fmt.Errorf("write %s: %w", outPath, err)
		}
		written = append(written, outPath)
	}
	return written, nil
}
