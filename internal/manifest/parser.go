package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

//go:embed files.yaml
var defaultFiles []byte

// Default returns the manifest compiled into the binary.
func Default() (*FileManifest, error) {
	m, err := Parse(defaultFiles)
	if err != nil {
		return nil, fmt.Errorf("embedded files.yaml: %w", err)
	}
	return m, nil
}

// Parse decodes data and checks it against the schema. Schema violations
// are returned as *InvalidError.
func Parse(data []byte) (*FileManifest, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	issues, err := checkSchema(doc)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		return nil, &InvalidError{Issues: issues}
	}

	var m FileManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// ParseFile reads and parses a manifest file.
func ParseFile(path string) (*FileManifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
