// Package version formats the build version injected via ldflags.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Info describes the running binary.
type Info struct {
	Version    string `json:"version"`
	Commit     string `json:"commit"`
	Date       string `json:"date"`
	Prerelease bool   `json:"prerelease"`
}

// New builds Info, normalizing version through semver when it parses.
// Development builds ("dev") are kept verbatim and flagged as prerelease.
func New(version, commit, date string) Info {
	info := Info{Version: version, Commit: commit, Date: date, Prerelease: true}
	if v, err := Parse(version); err == nil {
		info.Version = v.String()
		info.Prerelease = v.Prerelease() != ""
	}
	return info
}

// Parse strips a leading "v" and parses the version string.
func Parse(version string) (*semver.Version, error) {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return v, nil
}
