// Package platform identifies the host operating system the installer runs on
// and provides the small filesystem probes every install step relies on.
// Decisions take a Kind value captured once at startup, never runtime.GOOS
// directly, so tests can pretend to be any host.
package platform
