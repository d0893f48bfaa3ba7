package platform

import (
	"os"
	"path/filepath"
)

// Exists reports whether path exists. Any stat error other than "not exist"
// (permissions, broken mounts) is treated as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExistsUnder reports whether rel, a slash-separated path, exists below root.
func ExistsUnder(root, rel string) bool {
	return Exists(filepath.Join(root, filepath.FromSlash(rel)))
}
