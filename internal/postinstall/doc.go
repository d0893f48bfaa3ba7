// Package postinstall sequences the DDK-RN install: CI gate, generator
// prerequisite, shipped-source check, include patch, platform builds, and
// final verification. Sequencer.Run is the one place where failures become
// user-facing messages; a nil return means exit status 0, anything else 1.
package postinstall
