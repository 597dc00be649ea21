package version

import (
	"errors"
	"fmt"
	"time"
)

// Service is reported in /version and the startup banner.
const Service = "skirmish-server"

// Set with -ldflags "-X skirmish-server/internal/version.BuildDate=..." at build time.
var (
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// Build numbers count days since the first engine build.
var buildEpoch = time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)

var ErrNoBuildDate = errors.New("build date not set")

// VersionInfo is the JSON body of /version.
type VersionInfo struct {
	Service    string `json:"service"`
	BuildID    int    `json:"buildId"`
	BuildDate  string `json:"buildDate,omitempty"`
	Commit     string `json:"commit,omitempty"`
	Branch     string `json:"branch,omitempty"`
	Calculated bool   `json:"calculated"`
	Error      string `json:"error,omitempty"`
}

// BuildNumber converts BuildDate into a day number relative to the epoch.
func BuildNumber() (int, error) {
	if BuildDate == "" {
		return 0, ErrNoBuildDate
	}

	t, err := time.ParseInLocation(time.DateOnly, BuildDate, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("invalid build date %q: %w", BuildDate, err)
	}
	if t.Before(buildEpoch) {
		return 0, fmt.Errorf("build date %s is before %s", BuildDate, buildEpoch.Format(time.DateOnly))
	}

	return int(t.Sub(buildEpoch).Hours() / 24), nil
}

func Info() VersionInfo {
	info := VersionInfo{
		Service:   Service,
		BuildDate: BuildDate,
		Commit:    BuildCommit,
		Branch:    BuildBranch,
	}

	id, err := BuildNumber()
	if err != nil {
		info.Error = err.Error()
		return info
	}

	info.BuildID = id
	info.Calculated = true
	return info
}

// String is the one-line banner logged at startup.
func String() string {
	info := Info()
	if !info.Calculated {
		return fmt.Sprintf("%s dev build (%s)", Service, info.Error)
	}
	return fmt.Sprintf("%s build %d (%s) commit[%s] branch[%s]",
		Service, info.BuildID, info.BuildDate,
		orDefault(info.Commit, "unknown"),
		orDefault(info.Branch, "unknown"),
	)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
