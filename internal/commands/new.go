// Where: internal/commands/new.go
// What: New-project command flow.
// Why: Build a validated generation request and materialize the project.
package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/alice-bot/alice-new/internal/config"
	"github.com/alice-bot/alice-new/internal/elixir"
	"github.com/alice-bot/alice-new/internal/fileops"
	"github.com/alice-bot/alice-new/internal/generator"
	"github.com/alice-bot/alice-new/internal/meta"
	"github.com/alice-bot/alice-new/internal/namespace"
	"github.com/alice-bot/alice-new/internal/validate"
)

// runNew executes the whole generation pipeline: runtime gate, request
// building, file generation, summary, ledger.
func runNew(cli CLI, deps Dependencies, out io.Writer) int {
	// The runtime gate runs before any other work so a stale toolchain
	// never leaves a half-written tree behind.
	elixirVersion, err := elixir.Check(deps.ElixirProbe)
	if err != nil {
		return exitWithError(out, err)
	}

	req, err := buildRequest(cli, elixirVersion, deps)
	if err != nil {
		return exitWithError(out, err)
	}

	ui := console(out)
	ui.Header("🛠", fmt.Sprintf("Generating %s", req.AppName))

	written, err := generator.Generate(req)
	for _, path := range written {
		ui.ItemPlain("* creating " + path)
	}
	if err != nil {
		if len(written) > 0 {
			ui.Warn(fmt.Sprintf("%d file(s) were written before the failure; clean up or re-run as needed", len(written)))
		}
		return exitWithError(out, err)
	}

	ui.Success(fmt.Sprintf("Generated %s in %s", req.AppName, req.TargetPath))
	if req.TargetPath != "." {
		ui.Info("cd " + req.TargetPath)
	}
	ui.Info("mix deps.get")

	recordProject(req, deps, out)
	return 0
}

// buildRequest applies the default/precedence rules, validates every
// field, runs the collision checks, and creates the target directory.
// It fails on the first invalid field.
func buildRequest(cli CLI, elixirVersion string, deps Dependencies) (generator.Request, error) {
	cleaned := filepath.Clean(cli.Path)
	isCwd := cleaned == "."

	basename := filepath.Base(cleaned)
	targetPath := cleaned
	if !isCwd {
		targetPath = filepath.Join(filepath.Dir(cleaned), meta.AppPrefix+basename)
	}

	handlerName := cli.Name
	explicit := handlerName != ""
	if !explicit {
		handlerName = basename
	}
	if err := validate.HandlerName(handlerName, !explicit); err != nil {
		return generator.Request{}, err
	}

	moduleName := cli.Module
	if moduleName == "" {
		moduleName = validate.Camelize(handlerName)
	}
	if err := validate.ModuleName(moduleName); err != nil {
		return generator.Request{}, err
	}
	fullModule := meta.NamespaceRoot + "." + moduleName

	lookup := deps.Lookup
	if lookup == nil {
		registryPath, err := namespace.RegistryPath()
		if err != nil {
			return generator.Request{}, err
		}
		registry, err := namespace.LoadRegistry(registryPath)
		if err != nil {
			return generator.Request{}, err
		}
		lookup = registry.LookupFunc()
	}
	if err := namespace.CheckModuleAvailable(fullModule, lookup); err != nil {
		return generator.Request{}, err
	}

	if !isCwd {
		if err := namespace.CheckDirectoryAvailable(targetPath, deps.Confirm); err != nil {
			return generator.Request{}, err
		}
		if err := fileops.EnsureDir(targetPath); err != nil {
			return generator.Request{}, err
		}
	}

	return generator.Request{
		TargetPath:    targetPath,
		HandlerName:   handlerName,
		ExplicitName:  explicit,
		Module:        fullModule,
		AppName:       meta.AppPrefix + handlerName,
		ToolVersion:   meta.ToolVersion,
		ElixirVersion: elixirVersion,
	}, nil
}

// recordProject notes the generated project in the global config.
// Ledger failures are warnings; the project itself was generated fine.
func recordProject(req generator.Request, deps Dependencies, out io.Writer) {
	configPath := deps.ConfigPath
	if configPath == "" {
		var err error
		configPath, err = config.GlobalConfigPath()
		if err != nil {
			console(out).Warn("could not resolve global config path: " + err.Error())
			return
		}
	}
	if err := config.RecordProject(configPath, req.AppName, req.TargetPath); err != nil {
		console(out).Warn("could not record project in " + configPath + ": " + err.Error())
	}
}
