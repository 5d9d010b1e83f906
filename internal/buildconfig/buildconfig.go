package buildconfig

import "fmt"

// Build-time variables injected via ldflags:
//
//	go build -ldflags "-X github.com/Harshitk-cp/evidence/internal/buildconfig.version=v1.0.0"
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version
func Version() string {
	return version
}

// Commit returns the git commit hash
func Commit() string {
	return commit
}

// String is the one-line form printed by `fusion version`.
func String() string {
	return fmt.Sprintf("fusion %s (%s)", version, commit)
}
