package manifest

// FileManifest lists the files an installed package is checked for.
// All paths are slash-separated and relative to the package root.
type FileManifest struct {
	Sources   []string  `yaml:"sources"`
	Artifacts Artifacts `yaml:"artifacts"`
}

// Artifacts are files produced by platform builds.
type Artifacts struct {
	IOS     []string `yaml:"ios"`
	Android []string `yaml:"android"`
}

// Status of a single checked file.
type Status string

const (
	StatusPresent Status = "present"
	StatusMissing Status = "missing"
	StatusSkipped Status = "skipped"
)

// Check is the outcome for one file.
type Check struct {
	Path     string
	Status   Status
	Required bool
}

// Present reports whether the file was found.
func (c Check) Present() bool {
	return c.Status == StatusPresent
}

// Report is the result of Verify.
type Report struct {
	Sources []Check
	IOS     []Check
	Android []Check

	// OK is true when every required (shipped source) file is present.
	OK bool
}

// Missing returns the required files that were not found.
func (r *Report) Missing() []string {
	var missing []string
	for _, c := range r.Sources {
		if c.Required && !c.Present() {
			missing = append(missing, c.Path)
		}
	}
	return missing
}

// AndroidBuilt counts Android libraries found.
func (r *Report) AndroidBuilt() int {
	n := 0
	for _, c := range r.Android {
		if c.Present() {
			n++
		}
	}
	return n
}
