// Package changelog fetches the PlaceOS changelog document and
// extracts the section for a resolved release version. The changelog
// is a markdown file with `## <version>` headers in descending
// chronological order; it is externally owned and fetched fresh on
// every invocation. Both operations here are single-pass, stateless
// transformations over the fetched text.
package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// headerPattern matches a full calendar-version section header, e.g.
// "## 1.2312.5" or "## 1.2401.0-rc2". Channel names never appear as
// headers.
var headerPattern = regexp.MustCompile(`^## \d+\.\d{6}\.\d+(?:-rc\d+)?$`)

// VersionNotFoundError is returned when no section header matches the
// requested version. It carries the versions that do appear as headers
// so callers can print them as remediation.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	if len(e.AvailableVersions) == 0 {
		return fmt.Sprintf("version %q not found in changelog", e.Version)
	}
	return fmt.Sprintf("version %q not found in changelog (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// Excerpt is the extracted slice of the changelog for one version.
type Excerpt struct {
	// Header is the anchor header line, e.g. "## 1.2312.5".
	Header string
	// Body is the excerpt text starting at the anchor header.
	Body string
}

// Version returns the version string of the excerpt with the header
// markup stripped.
func (e *Excerpt) Version() string {
	return strings.TrimPrefix(e.Header, "## ")
}

// normalizeVersion strips the placeos- tag prefix so a resolved tag
// can be matched against bare changelog headers.
func normalizeVersion(version string) string {
	return strings.TrimPrefix(version, "placeos-")
}

// ExtractSection locates the section for version in the changelog
// document. The anchor header is the first line exactly matching
// "## <version>" after the tag prefix is stripped. With includeAllPrior
// the excerpt runs from the anchor to end of document; otherwise it
// stops before the next full calendar-version header. The oldest entry
// has no next header, so its excerpt is the remainder of the document
// either way.
func ExtractSection(document, version string, includeAllPrior bool) (*Excerpt, error) {
	want := "## " + normalizeVersion(version)
	lines := strings.Split(document, "\n")

	anchor := -1
	for i, line := range lines {
		if line == want {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return nil, &VersionNotFoundError{
			Version:           normalizeVersion(version),
			AvailableVersions: HeaderVersions(document),
		}
	}

	section := lines[anchor:]
	end := len(section)
	if !includeAllPrior {
		for i := 1; i < len(section); i++ {
			if headerPattern.MatchString(section[i]) {
				end = i
				break
			}
		}
	}

	return &Excerpt{
		Header: want,
		Body:   strings.Join(section[:end], "\n"),
	}, nil
}

// LatestVersionHeader returns the version string of the newest section
// in the document: the first line matching the full calendar-version
// header pattern, with the "## " prefix stripped.
func LatestVersionHeader(document string) (string, error) {
	for _, line := range strings.Split(document, "\n") {
		if headerPattern.MatchString(line) {
			return strings.TrimPrefix(line, "## "), nil
		}
	}
	return "", &VersionNotFoundError{Version: "latest"}
}

// HeaderVersions lists every version that appears as a section header,
// in document order (newest first).
func HeaderVersions(document string) []string {
	var versions []string
	for _, line := range strings.Split(document, "\n") {
		if headerPattern.MatchString(line) {
			versions = append(versions, strings.TrimPrefix(line, "## "))
		}
	}
	return versions
}

// Anchor derives the GitHub fragment identifier for a section header
// by removing whitespace, periods and '#' characters. The
// transformation must match GitHub's anchor generation for the
// corresponding markdown header: "## 1.2312.5" becomes "123125".
func Anchor(header string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '#', r == '.':
			return -1
		case r == ' ', r == '\t':
			return -1
		default:
			return r
		}
	}, header)
}

// DeepLink builds a URL pointing directly at the section for the given
// header on the hosted changelog page.
func DeepLink(baseURL, header string) string {
	return baseURL + "#" + Anchor(header)
}
