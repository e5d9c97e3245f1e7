// Package version carries build metadata stamped in with -ldflags
package version

// BuildInfo identifies a build
type BuildInfo struct {
	Service string `json:"service" example:"langrelay-api"`
	Version string `json:"version" example:"v0.1.0"`
	Commit  string `json:"commit"  example:"3f2c1ab"`
	Date    string `json:"date"    example:"2026-10-01"`
}

// set with -ldflags "-X langrelay/internal/core/version.version=v0.1.0 -X ...commit=... -X ...date=..."
var (
	service = "langrelay-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Info returns the stamped build metadata
func Info() BuildInfo {
	return BuildInfo{Service: service, Version: version, Commit: commit, Date: date}
}

// String renders the version for logs and CLI output
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}
