// Where: internal/elixir/elixir.go
// What: Detect the installed Elixir toolchain and gate on its version.
// Why: Generated mix projects require Elixir 1.7 or newer.
package elixir

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/alice-bot/alice-new/internal/meta"
)

var (
	ErrNotDetected   = errors.New("elixir not detected")
	ErrVersionTooOld = errors.New("elixir version too old")
)

// VersionProbe returns the raw output of an `elixir --version` run.
// Injected so tests never shell out.
type VersionProbe func() (string, error)

// Detect is the default probe, shelling out to the elixir binary.
func Detect() (string, error) {
	out, err := exec.Command("elixir", "--version").CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDetected, err)
	}
	return string(out), nil
}

var versionPattern = regexp.MustCompile(`Elixir (\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?)`)

// Check runs the probe, enforces the minimum supported version, and
// returns the detected version reduced to major.minor[-prerelease]
// form, as embedded into the generated mix.exs.
func Check(probe VersionProbe) (string, error) {
	if probe == nil {
		probe = Detect
	}
	raw, err := probe()
	if err != nil {
		return "", err
	}

	match := versionPattern.FindStringSubmatch(raw)
	if match == nil {
		return "", fmt.Errorf("%w: could not find a version in %q", ErrNotDetected, strings.TrimSpace(raw))
	}

	version, err := semver.NewVersion(match[1])
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNotDetected, err)
	}

	// Compare, not a constraint check: constraints reject prerelease
	// versions outright, and 1.15.0-rc.0 must still pass a 1.7 floor.
	minimum, err := semver.NewVersion(meta.MinElixirVersion)
	if err != nil {
		return "", err
	}
	if version.Compare(minimum) < 0 {
		return "", fmt.Errorf("%w: Elixir >= %s is required, detected %s",
			ErrVersionTooOld, meta.MinElixirVersion, version)
	}

	return ShortVersion(version), nil
}

// ShortVersion renders major.minor, keeping any prerelease tag.
func ShortVersion(v *semver.Version) string {
	short := fmt.Sprintf("%d.%d", v.Major(), v.Minor())
	if pre := v.Prerelease(); pre != "" {
		short += "-" + pre
	}
	return short
}
