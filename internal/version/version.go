// Package version provides version information for the sitewise tools
package version

// These variables are set via ldflags during build time
var (
	// Version is the semantic version
	Version = "dev"

	// GitCommit is the git commit SHA
	GitCommit = "unknown"

	// BuildDate is the date when the binary was built
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = "unknown"

	// APIVersion is the service API version the model was generated from
	APIVersion = "2019-12-02"
)

// GetVersion returns the version string
func GetVersion() string {
	if Version == "" {
		return "dev"
	}
	return Version
}

// GetFullVersion returns the full version information
func GetFullVersion() string {
	v := GetVersion()
	if GitCommit != "unknown" && GitCommit != "" {
		v += "-" + GitCommit
	}
	return v
}

// Info contains all version information
type Info struct {
	Version    string `json:"version" yaml:"version"`
	GitCommit  string `json:"gitCommit" yaml:"gitCommit"`
	BuildDate  string `json:"buildDate" yaml:"buildDate"`
	GoVersion  string `json:"goVersion" yaml:"goVersion"`
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
}

// GetInfo returns all version information
func GetInfo() Info {
	return Info{
		Version:    Version,
		GitCommit:  GitCommit,
		BuildDate:  BuildDate,
		GoVersion:  GoVersion,
		APIVersion: APIVersion,
	}
}
