// Package patch repairs known defects in files emitted by the binding generator.
package patch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// BindingsFile is the generated turbo-module source, relative to the package root.
const BindingsFile = "cpp/bennyblader-ddk-rn.cpp"

const (
	badInclude  = `#include "/ddk_ffi.hpp"`
	goodInclude = `#include "ddk_ffi.hpp"`
)

// FixIncludePath rewrites the root-absolute ddk_ffi.hpp include in the
// bindings file to a relative one. It reports whether the file changed; a
// missing file or an already-correct file is a no-op.
func FixIncludePath(w io.Writer, root string) (bool, error) {
	path := filepath.Join(root, filepath.FromSlash(BindingsFile))

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("inspecting %s: %w", BindingsFile, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", BindingsFile, err)
	}

	content := string(data)
	if !strings.Contains(content, badInclude) {
		return false, nil
	}

	fixed := strings.Replace(content, badInclude, goodInclude, 1)
	if err := os.WriteFile(path, []byte(fixed), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("writing %s: %w", BindingsFile, err)
	}

	fmt.Fprintln(w, "[FIX ] Fixed include path in C++ bindings")
	return true, nil
}
