// Package buildinfo carries the firmware build stamp, set via -ldflags -X.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the most specific identifier available: a release version,
// else the commit, else "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Describe is the full stamp printed by --version.
func Describe() string {
	s := "watch " + Short()
	if Commit != "" && Commit != "unknown" && Commit != Short() {
		s += " " + Commit
	}
	if Date != "" && Date != "unknown" {
		s += " built " + Date
	}
	return s
}
