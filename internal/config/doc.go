// Package config captures everything the installer reads from its
// surroundings (CI flags, NDK variables, host platform, package root, and
// optional ddkrn.yaml settings) into one Snapshot at startup. Decision code
// receives the Snapshot explicitly and never consults the process
// environment itself.
package config
