package manifest

import (
	"fmt"
	"io"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/platform"
)

// MissingSources returns the shipped source files absent under root, in
// manifest order.
func (m *FileManifest) MissingSources(root string) []string {
	var missing []string
	for _, rel := range m.Sources {
		if !platform.ExistsUnder(root, rel) {
			missing = append(missing, rel)
		}
	}
	return missing
}

// Verify checks every file in the manifest under root and writes one status
// line per file to w. iOS artifacts are only checked on hosts that can build
// them. The report is OK when all shipped sources are present; artifact
// absence is informational.
func (m *FileManifest) Verify(w io.Writer, root string, host platform.Kind) *Report {
	report := &Report{OK: true}

	fmt.Fprintln(w, "Checking required files...")
	for _, rel := range m.Sources {
		c := check(root, rel, true)
		if c.Present() {
			fmt.Fprintf(w, "  [ OK ] %s\n", rel)
		} else {
			fmt.Fprintf(w, "  [MISS] Missing: %s\n", rel)
			report.OK = false
		}
		report.Sources = append(report.Sources, c)
	}

	if host.CanBuildApple() {
		fmt.Fprintln(w, "Checking iOS framework...")
		for _, rel := range m.Artifacts.IOS {
			c := check(root, rel, false)
			if c.Present() {
				fmt.Fprintf(w, "  [ OK ] %s\n", rel)
			} else {
				fmt.Fprintln(w, "  [WARN] iOS framework not built yet (will be built on first use)")
			}
			report.IOS = append(report.IOS, c)
		}
	} else {
		for _, rel := range m.Artifacts.IOS {
			report.IOS = append(report.IOS, Check{Path: rel, Status: StatusSkipped})
		}
	}

	fmt.Fprintln(w, "Checking Android libraries...")
	for _, rel := range m.Artifacts.Android {
		c := check(root, rel, false)
		if c.Present() {
			fmt.Fprintf(w, "  [ OK ] %s\n", rel)
		} else {
			fmt.Fprintf(w, "  [ -- ] %s\n", rel)
		}
		report.Android = append(report.Android, c)
	}

	if built := report.AndroidBuilt(); built == 0 {
		fmt.Fprintln(w, "  [WARN] Android libraries not built yet (may be due to missing NDK)")
	} else {
		printer.Fprintf(w, "  Found %d/%d Android libraries\n", built, len(m.Artifacts.Android))
	}

	return report
}

func check(root, rel string, required bool) Check {
	status := StatusMissing
	if platform.ExistsUnder(root, rel) {
		status = StatusPresent
	}
	return Check{Path: rel, Status: status, Required: required}
}
