package app

import (
	"fmt"
	"log/slog"

	"github.com/heartmarshall/intercom-backend/internal/metrics"
)

// Build identifiers, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/intercom-backend/internal/app.Version=1.4.0 -X github.com/heartmarshall/intercom-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version string reported by /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// buildAttrs groups the build identifiers for the startup log line.
func buildAttrs() slog.Attr {
	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("built", BuildTime),
	)
}

// exportBuildInfo publishes intercom_build_info so dashboards can tell
// which build answered a ring.
func exportBuildInfo(m *metrics.Metrics) {
	m.BuildInfo.WithLabelValues(Version, Commit).Set(1)
}
