// Package version reports the build identity of the bfapi binary.
package version

import (
	"runtime/debug"
	"strings"
)

// Info is the build identity. Commit and Date are empty when unknown.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit,omitempty"`
	Date    string `json:"date,omitempty"`
}

// Get resolves the identity from -ldflags values, filling gaps from the module build info.
func Get(version string, commit string, date string) Info {
	return fill(Info{
		Version: clean(version, "dev", "(devel)"),
		Commit:  clean(commit, "unknown"),
		Date:    clean(date, "unknown"),
	}, readBuildInfo())
}

// String formats a version line such as "v1.2.3 (abc123) 2026-01-01T00:00:00Z".
func String(version string, commit string, date string) string {
	return Get(version, commit, date).String()
}

func (i Info) String() string {
	out := i.Version
	if i.Commit != "" {
		out += " (" + i.Commit + ")"
	}
	if i.Date != "" {
		out += " " + i.Date
	}
	return out
}

// UserAgent is the User-Agent value sent to the exchange.
func (i Info) UserAgent() string {
	return "bfapi/" + i.Version
}

func clean(v string, placeholders ...string) string {
	v = strings.TrimSpace(v)
	for _, p := range placeholders {
		if v == p {
			return ""
		}
	}
	return v
}

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

func fill(i Info, info *debug.BuildInfo) Info {
	if info != nil {
		if i.Version == "" {
			i.Version = clean(info.Main.Version, "(devel)")
		}
		if i.Commit == "" {
			i.Commit = buildSetting(info, "vcs.revision")
		}
		if i.Date == "" {
			i.Date = buildSetting(info, "vcs.time")
		}
	}
	if i.Version == "" {
		i.Version = "dev"
	}
	return i
}

func buildSetting(info *debug.BuildInfo, key string) string {
	for _, s := range info.Settings {
		if s.Key == key {
			return strings.TrimSpace(s.Value)
		}
	}
	return ""
}
