// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName             string `yaml:"cli_name"`
	DisplayName         string `yaml:"display_name"`
	Description         string `yaml:"description"`
	EnvPrefix           string `yaml:"env_prefix"`
	PackageName         string `yaml:"package_name"`
	Generator           string `yaml:"generator"`
	PackageRunner       string `yaml:"package_runner"`
	MinGeneratorVersion string `yaml:"min_generator_version"`
	IssuesURL           string `yaml:"issues_url"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:             "ddkrn-postinstall",
			DisplayName:         "DDK-RN",
			Description:         "Post-install native library builder for the DDK React Native package",
			EnvPrefix:           "DDKRN",
			PackageName:         "@bennyblader/ddk-rn",
			Generator:           "uniffi-bindgen-react-native",
			PackageRunner:       "npx",
			MinGeneratorVersion: "0.28.0",
			IssuesURL:           "https://github.com/bennyhodl/ddk-ffi/issues",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "ddkrn-postinstall").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "DDK-RN").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix for settings (e.g., "DDKRN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// PackageName returns the npm package this binary ships with.
func PackageName() string { load(); return defaults.PackageName }

// Generator returns the binding generator executable name.
func Generator() string { load(); return defaults.Generator }

// PackageRunner returns the ephemeral package runner preferred over a global
// generator install (e.g., "npx").
func PackageRunner() string { load(); return defaults.PackageRunner }

// MinGeneratorVersion returns the oldest generator release doctor accepts.
func MinGeneratorVersion() string { load(); return defaults.MinGeneratorVersion }

// IssuesURL returns where users are asked to report install failures.
func IssuesURL() string { load(); return defaults.IssuesURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("root") → "DDKRN_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
