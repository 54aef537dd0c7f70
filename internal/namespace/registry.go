// Where: internal/namespace/registry.go
// What: Load the per-user handler module registry.
// Why: Give collision checks a concrete, file-backed namespace view.
package namespace

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	yaml "gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/alice-bot/alice-new/internal/meta"
)

// Registry is the on-disk view of already-installed handler modules.
type Registry struct {
	Version int      `yaml:"version"`
	Modules []string `yaml:"modules,omitempty"`
}

//go:embed registry_schema.json
var registrySchemaJSON string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// RegistryPath returns the registry file location, honoring the
// environment overrides.
func RegistryPath() (string, error) {
	if override := strings.TrimSpace(os.Getenv(meta.EnvRegistry)); override != "" {
		if !filepath.IsAbs(override) {
			if abs, err := filepath.Abs(override); err == nil {
				return abs, nil
			}
		}
		return override, nil
	}
	if home := strings.TrimSpace(os.Getenv(meta.EnvConfigHome)); home != "" {
		return filepath.Join(home, meta.RegistryFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, meta.HomeDir, meta.RegistryFile), nil
}

// LoadRegistry reads and validates the registry file. A missing file
// yields an empty registry: a fresh environment has no handlers yet.
func LoadRegistry(path string) (Registry, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Registry{Version: 1}, nil
	}
	if err != nil {
		return Registry{}, err
	}
	if err := validateRegistry(content); err != nil {
		return Registry{}, fmt.Errorf("invalid registry %s: %w", path, err)
	}
	var reg Registry
	if err := yaml.Unmarshal(content, &reg); err != nil {
		return Registry{}, fmt.Errorf("parse registry %s: %w", path, err)
	}
	return reg, nil
}

// LookupFunc builds an exact-membership Lookup over the registry's
// module list.
func (r Registry) LookupFunc() Lookup {
	set := make(map[string]struct{}, len(r.Modules))
	for _, name := range r.Modules {
		set[strings.TrimSpace(name)] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[name]
		return ok
	}
}

func validateRegistry(content []byte) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("registry_schema.json", strings.NewReader(registrySchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("registry_schema.json")
	})
	return compiledSchema, schemaErr
}
