//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/manifest"
)

// testEnv holds paths to an isolated package root and a bin directory that
// is placed first on PATH.
type testEnv struct {
	PackageRoot string
	BinDir      string
	CallLog     string // every fake generator invocation is appended here
}

// setupTestEnv creates the package root with all shipped sources, a bin
// directory on PATH, and clears the variables that gate the install.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake generator scripts require a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}

	env := &testEnv{
		PackageRoot: t.TempDir(),
		BinDir:      t.TempDir(),
	}
	env.CallLog = filepath.Join(env.BinDir, "calls.log")

	for _, name := range []string{"CI", "BUILD_NATIVE_LIBS", "ANDROID_NDK_ROOT", "NDK_HOME"} {
		t.Setenv(name, "")
	}
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	m, err := manifest.Default()
	if err != nil {
		t.Fatalf("loading manifest: %v", err)
	}
	for _, rel := range m.Sources {
		writeFile(t, filepath.Join(env.PackageRoot, filepath.FromSlash(rel)), "// shipped\n")
	}

	return env
}

// installFakeRunner writes an `npx` script that logs its arguments and, for
// build commands, creates the artifacts the real generator would produce.
// androidExit is the exit status for `build android`.
func installFakeRunner(t *testing.T, env *testEnv, androidExit int) {
	t.Helper()

	script := `#!/bin/sh
echo "npx $*" >> "` + env.CallLog + `"
case "$*" in
  *"--help"*) exit 0 ;;
  *"build ios"*)
    mkdir -p ios/DdkRn.xcframework && touch ios/DdkRn.xcframework/Info.plist
    exit 0 ;;
  *"build android"*)
    if [ ` + strconv.Itoa(androidExit) + ` -ne 0 ]; then echo "ndk-build failed" >&2; exit ` + strconv.Itoa(androidExit) + `; fi
    for abi in arm64-v8a armeabi-v7a x86 x86_64; do
      mkdir -p android/src/main/$abi && touch android/src/main/$abi/libddk_ffi.a
    done
    exit 0 ;;
esac
exit 1
`
	path := filepath.Join(env.BinDir, "npx")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake npx: %v", err)
	}
}

// calls returns the logged fake generator invocations.
func calls(t *testing.T, env *testEnv) []string {
	t.Helper()
	data, err := os.ReadFile(env.CallLog)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatal(err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

// writeFile creates a file with the given content, creating parent dirs.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists checks that a file exists at the given path.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

// readFile returns a file's content as a string.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
