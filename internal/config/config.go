package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bennyhodl/ddk-rn-postinstall/internal/branding"
	"github.com/bennyhodl/ddk-rn-postinstall/internal/platform"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "ddkrn"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyCI              = "ci"
	KeyBuildNativeLibs = "build_native_libs"
	KeyAndroidNDKRoot  = "android_ndk_root"
	KeyNDKHome         = "ndk_home"
	KeyRoot            = "root"
	KeyRunner          = "runner"
	KeyGenerator       = "generator"
	KeyVerbose         = "verbose"
)

// Snapshot is the installer's view of its environment, captured once.
type Snapshot struct {
	CI              bool          `yaml:"ci"`
	BuildNativeLibs bool          `yaml:"build_native_libs"`
	NDKPresent      bool          `yaml:"ndk_present"`
	Platform        platform.Kind `yaml:"platform"`
	PackageRoot     string        `yaml:"package_root"`
	Runner          string        `yaml:"runner"`
	Generator       string        `yaml:"generator"`
	Verbose         bool          `yaml:"verbose"`
}

// SkipInCI reports whether native builds should be skipped because the
// install runs under CI without an explicit BUILD_NATIVE_LIBS override.
func (s Snapshot) SkipInCI() bool {
	return s.CI && !s.BuildNativeLibs
}

// New returns a Viper instance wired to the installer's environment
// variables. CI, BUILD_NATIVE_LIBS, ANDROID_NDK_ROOT and NDK_HOME are read
// by their exact names; everything else uses the DDKRN_ prefix.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	_ = v.BindEnv(KeyCI, "CI")
	_ = v.BindEnv(KeyBuildNativeLibs, "BUILD_NATIVE_LIBS")
	_ = v.BindEnv(KeyAndroidNDKRoot, "ANDROID_NDK_ROOT")
	_ = v.BindEnv(KeyNDKHome, "NDK_HOME")

	v.SetDefault(KeyRunner, branding.PackageRunner())
	v.SetDefault(KeyGenerator, branding.Generator())
	return v
}

// BindFlags binds the --root and --verbose flags of fs, when defined, so
// they override environment and file values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyRoot, KeyVerbose} {
		flag := fs.Lookup(key)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", key, err)
		}
	}
	return nil
}

// FilePath returns the location of the optional settings file under root.
func FilePath(root string) string {
	return filepath.Join(root, fileName+"."+fileType)
}

// ResolveRoot returns the absolute package root: the configured root if set,
// otherwise the working directory. The result must be an existing directory.
func ResolveRoot(v *viper.Viper) (string, error) {
	root := v.GetString(KeyRoot)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determining working directory: %w", err)
		}
		root = wd
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolving package root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("package root %s: %w (set --root or %s)", abs, err, branding.EnvVar(KeyRoot))
	}
	if !info.IsDir() {
		return "", fmt.Errorf("package root %s is not a directory (set --root or %s)", abs, branding.EnvVar(KeyRoot))
	}
	return abs, nil
}

// Capture resolves the package root, merges ddkrn.yaml from it when present,
// and returns the Snapshot for host, normally platform.Host().
func Capture(v *viper.Viper, host platform.Kind) (Snapshot, error) {
	root, err := ResolveRoot(v)
	if err != nil {
		return Snapshot{}, err
	}

	if err := readFile(v, FilePath(root)); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		CI:              isSet(v, KeyCI),
		BuildNativeLibs: isSet(v, KeyBuildNativeLibs),
		NDKPresent:      isSet(v, KeyAndroidNDKRoot) || isSet(v, KeyNDKHome),
		Platform:        host,
		PackageRoot:     root,
		Runner:          v.GetString(KeyRunner),
		Generator:       v.GetString(KeyGenerator),
		Verbose:         v.GetBool(KeyVerbose),
	}, nil
}

// readFile merges the settings file into v. A missing file is not an error.
func readFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// isSet treats any non-empty value as set, so CI=1, CI=true and CI=yes all count.
func isSet(v *viper.Viper, key string) bool {
	return v.GetString(key) != ""
}
