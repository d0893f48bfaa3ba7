// Package cli defines the Cobra command tree for ddkrn-postinstall. Each
// file registers one command with the root. Commands capture the
// environment through internal/config and delegate the actual work to
// internal packages; they only handle flags and output wiring.
package cli
