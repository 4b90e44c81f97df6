// Package version reports the nbpack build version.
package version

// Version is set at build time with -ldflags "-X github.com/appmode/nbpack/internal/version.Version=...".
var Version = "dev"

// GetVersion returns the nbpack version string.
func GetVersion() string {
	return Version
}
