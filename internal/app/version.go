package app

import "fmt"

// Set via ldflags, e.g.
// go build -ldflags "-X github.com/heartmarshall/records-api/internal/app.Version=1.0.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is reported by /health and the startup log.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
