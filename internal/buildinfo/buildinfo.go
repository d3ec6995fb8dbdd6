package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/katalvlaran/gradviz/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("gradviz %s (commit=%s, date=%s)", Version, Commit, Date)
}
