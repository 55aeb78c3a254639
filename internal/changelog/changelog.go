// Package changelog parses the release notes embedded in the binary so the
// panel can announce what changed after an update.
package changelog

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is the release notes for a single version.
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// headerRegex matches version headers like "## v0.3.0 (2026-08-18)" or "## 0.3.0"
var headerRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts release entries from changelog markdown. Lines that are
// neither version headers nor bullet items are ignored.
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)

		if m := headerRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{Version: m[1], Date: m[2]}
			continue
		}

		if current != nil && strings.HasPrefix(line, "- ") {
			current.Changes = append(current.Changes, strings.TrimPrefix(line, "- "))
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// EntriesSince returns the entries newer than the lastSeen version, preserving
// the file's newest-first order. An empty lastSeen returns every entry.
func EntriesSince(lastSeen string, entries []Entry) []Entry {
	if lastSeen == "" {
		return entries
	}

	var newer []Entry
	for _, entry := range entries {
		if CompareVersions(entry.Version, lastSeen) > 0 {
			newer = append(newer, entry)
		}
	}
	return newer
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	av := parseVersion(a)
	bv := parseVersion(b)

	for i := 0; i < 3; i++ {
		if av[i] < bv[i] {
			return -1
		}
		if av[i] > bv[i] {
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch], tolerating a leading "v" and
// missing or non-numeric components.
func parseVersion(v string) [3]int {
	v = strings.TrimPrefix(v, "v")

	var out [3]int
	parts := strings.Split(v, ".")
	for i := 0; i < 3 && i < len(parts); i++ {
		out[i], _ = strconv.Atoi(parts[i])
	}
	return out
}
