package platform

import "runtime"

// Kind is a host operating system family.
type Kind string

const (
	Darwin  Kind = "darwin"
	Linux   Kind = "linux"
	Windows Kind = "windows"
	Other   Kind = "other"
)

// FromGOOS maps a GOOS value to a Kind. Unrecognized values map to Other.
func FromGOOS(goos string) Kind {
	switch goos {
	case "darwin":
		return Darwin
	case "linux":
		return Linux
	case "windows":
		return Windows
	default:
		return Other
	}
}

// Host returns the Kind of the running process.
func Host() Kind {
	return FromGOOS(runtime.GOOS)
}

// CanBuildApple reports whether the Apple toolchain (Xcode) can exist on this host.
func (k Kind) CanBuildApple() bool {
	return k == Darwin
}

// String returns the kind's identifier.
func (k Kind) String() string {
	return string(k)
}
