package release

import (
	"fmt"
	"strings"
)

// InvalidFormatError is returned when a requested version string
// matches none of the accepted tag shapes. It carries the full remote
// tag list so callers can print it as remediation.
type InvalidFormatError struct {
	Requested string
	Available []string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid version %q (expected calendar version like placeos-1.2312.5, month version like placeos-1.2312, or channel: nightly, preview, latest)", e.Requested)
}

// NoReleaseError is returned when the remote tag listing contains no
// calendar-versioned release to default to.
type NoReleaseError struct {
	Available []string
}

func (e *NoReleaseError) Error() string {
	if len(e.Available) == 0 {
		return "no release tags found in remote listing"
	}
	return fmt.Sprintf("no calendar-versioned release in remote listing (only: %s)", strings.Join(e.Available, ", "))
}

// Resolve selects the version to act on. Pure selection over the
// already-fetched tag list; no side effects.
//
// An empty requested version picks the newest stable release: the
// first entry in tags (which the remote listing provides in descending
// version order) that does not name a floating channel. A non-empty
// requested version is validated against the union of accepted shapes
// and returned unchanged.
//
// The returned version, when non-empty, always satisfies one of the
// three tag shapes.
func Resolve(requested string, tags []string) (string, error) {
	if requested == "" {
		for _, tag := range tags {
			if IsChannel(tag) {
				continue
			}
			if !IsValid(tag) {
				continue
			}
			return tag, nil
		}
		return "", &NoReleaseError{Available: tags}
	}

	if !IsValid(requested) {
		return "", &InvalidFormatError{Requested: requested, Available: tags}
	}

	return requested, nil
}
