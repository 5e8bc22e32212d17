package buildconfig

import "fmt"

// Build-time variables injected via ldflags:
//
//	-X github.com/YahelOmesi/Variable-Elimination/internal/buildconfig.version=v1.2.0
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// VersionInfo is the build description served by /health.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": version,
		"commit":  commit,
		"date":    date,
	}
}

// String is the one-line form printed by `bayes version`.
func String() string {
	return fmt.Sprintf("bayes %s (commit %s, built %s)", version, commit, date)
}
