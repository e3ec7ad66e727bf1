// Package buildinfo carries version information set at link time with
// -ldflags "-X github.com/soypat/eurorack/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("ephelper %s (commit=%s, date=%s)", Version, Commit, Date)
}
