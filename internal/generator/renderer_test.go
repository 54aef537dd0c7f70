// Where: internal/generator/renderer_test.go
// What: Tests for template rendering.
// Why: Output must be deterministic and substitute every variable.
package generator

import (
	"strings"
	"testing"
)

func testVars() map[string]string {
	return Request{
		TargetPath:    "alice_my_handler",
		HandlerName:   "my_handler",
		Module:        "Alice.Handlers.MyHandler",
		AppName:       "alice_my_handler",
		ToolVersion:   "0.4.2",
		ElixirVersion: "1.14",
	}.Vars()
}

func TestRenderHandlerSource(t *testing.T) {
	content, err := Render("handler.tmpl", testVars())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(content, "defmodule Alice.Handlers.MyHandler do") {
		t.Fatalf("expected module definition, got: %s", content)
	}
	if !strings.Contains(content, "use Alice.Router") {
		t.Fatalf("expected Alice.Router usage, got: %s", content)
	}
	if !strings.Contains(content, "my_handler") {
		t.Fatalf("expected handler name substitution, got: %s", content)
	}
}

func TestRenderMixManifest(t *testing.T) {
	content, err := Render("mix.tmpl", testVars())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(content, "app: :alice_my_handler") {
		t.Fatalf("expected app name, got: %s", content)
	}
	if !strings.Contains(content, `elixir: "~> 1.14"`) {
		t.Fatalf("expected elixir requirement, got: %s", content)
	}
}

func TestRenderDeterministic(t *testing.T) {
	for _, name := range []string{"formatter.tmpl", "gitignore.tmpl", "readme.tmpl", "mix.tmpl", "config.tmpl", "handler.tmpl", "handler_test.tmpl"} {
		first, err := Render(name, testVars())
		if err != nil {
			t.Fatalf("render %s: %v", name, err)
		}
		second, err := Render(name, testVars())
		if err != nil {
			t.Fatalf("render %s again: %v", name, err)
		}
		if first != second {
			t.Fatalf("rendering %s twice differed", name)
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	if _, err := Render("nope.tmpl", testVars()); err == nil {
		t.Fatalf("expected error for unknown template")
	}
}
