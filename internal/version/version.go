package version

import "fmt"

// Заполняются линкером через -ldflags -X.
var (
	Version     = "dev"
	BuildCommit string
	BuildDate   string // YYYY-MM-DD (UTC)
)

// BuildInfo describes the build metadata in structured form.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns structured build information. Safe to call at any time.
func Info() BuildInfo {
	return BuildInfo{
		Version: Version,
		Commit:  coalesce(BuildCommit, "unknown"),
		Date:    coalesce(BuildDate, "unknown"),
	}
}

// String returns a human-readable build string.
func String() string {
	info := Info()
	return fmt.Sprintf("Outcasted %s commit[%s] built[%s]", info.Version, info.Commit, info.Date)
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
