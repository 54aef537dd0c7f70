// Where: internal/generator/request.go
// What: The validated generation request consumed by Generate.
// Why: Keep parsed/derived inputs independent from command parsing.
package generator

// Request captures everything a generation run needs. Built once by
// the new-project command after validation; never mutated afterwards.
type Request struct {
	// TargetPath is the directory the project is written into. "." means
	// the current working directory and suppresses top-level dir creation.
	TargetPath string
	// HandlerName is the snake_case handler name.
	HandlerName string
	// ExplicitName records whether HandlerName came from --name rather
	// than the path.
	ExplicitName bool
	// Module is the fully qualified handler module, e.g.
	// Alice.Handlers.MyHandler.
	Module string
	// AppName is the OTP application name, alice_ + HandlerName.
	AppName string
	// ToolVersion is the generator's own version.
	ToolVersion string
	// ElixirVersion is the detected runtime version in
	// major.minor[-prerelease] form.
	ElixirVersion string
}

// Vars returns the variable mapping handed to every template.
func (r Request) Vars() map[string]string {
	return map[string]string{
		"AppName":       r.AppName,
		"HandlerName":   r.HandlerName,
		"Module":        r.Module,
		"ToolVersion":   r.ToolVersion,
		"ElixirVersion": r.ElixirVersion,
	}
}
