// Where: internal/version/version.go
// What: Version banner for the CLI.
// Why: One authoritative rendering of the tool's version string.
package version

import "github.com/alice-bot/alice-new/internal/meta"

// Banner returns the version line printed by -v/--version.
func Banner() string {
	return meta.BotName + " v" + meta.ToolVersion
}
