// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep brand and layout conventions in one place.
package meta

const (
	// Project Identity
	AppName     = "alice-new"
	BotName     = "Alice"
	ToolVersion = "0.4.2"

	// Naming Conventions
	AppPrefix     = "alice_"
	ReservedName  = "alice"
	NamespaceRoot = "Alice.Handlers"

	// Directory Layout
	HomeDir      = ".alice_new"
	RegistryFile = "registry.yaml"
	ConfigFile   = "config.yaml"

	// Runtime Requirements
	MinElixirVersion = "1.7"

	// Environment Overrides
	EnvConfigHome = "ALICE_NEW_CONFIG_HOME"
	EnvRegistry   = "ALICE_NEW_REGISTRY"
)
