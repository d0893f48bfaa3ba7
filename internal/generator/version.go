package generator

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/runner"
)

var versionPattern = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[0-9A-Za-z.-]+)?`)

// Version asks the generator for its version and parses the first
// semver-looking token in the output.
func Version(ctx context.Context, r runner.Runner, inv Invocation, dir string) (*semver.Version, error) {
	result, err := r.Run(ctx, inv.Command(dir, false, "--version"))
	if err != nil {
		return nil, fmt.Errorf("querying %s version: %w", inv, err)
	}
	if !result.Success() {
		return nil, fmt.Errorf("querying %s version: exit status %d", inv, result.ExitCode)
	}
	return ParseVersion(result.Stdout + "\n" + result.Stderr)
}

// ParseVersion extracts a version from free-form tool output such as
// "uniffi-bindgen-react-native 0.29.0-1".
func ParseVersion(output string) (*semver.Version, error) {
	token := versionPattern.FindString(output)
	if token == "" {
		return nil, fmt.Errorf("no version found in %q", strings.TrimSpace(output))
	}
	v, err := semver.NewVersion(strings.TrimPrefix(token, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", token, err)
	}
	return v, nil
}

// MeetsMinimum reports whether v is at least minimum. Only the core
// major.minor.patch is compared: the generator tags releases as 0.29.0-1,
// where the suffix is a build counter rather than a pre-release.
func MeetsMinimum(v *semver.Version, minimum string) (bool, error) {
	floor, err := semver.NewVersion(strings.TrimPrefix(minimum, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", minimum, err)
	}
	core, err := semver.NewVersion(fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Patch()))
	if err != nil {
		return false, err
	}
	return core.Compare(floor) >= 0, nil
}
