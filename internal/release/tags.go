// Package release resolves PlaceOS release versions from remote tag
// listings. Tags come in three shapes: full calendar versions
// (placeos-1.2312.5, optionally -rcN), month-only calendar versions
// (placeos-1.2312), and floating channel names (nightly, preview,
// latest). The shapes form a closed set so that version validation is
// exhaustive and testable independently of any remote state.
package release

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// TagPrefix is prepended to calendar-version tag names from the remote
// listing so operators address releases the same way the platform
// images are tagged.
const TagPrefix = "placeos-"

// Shape identifies which of the accepted tag patterns a string matches.
type Shape int

const (
	// ShapeInvalid means the string matches none of the accepted patterns.
	ShapeInvalid Shape = iota
	// ShapeFullCalver is a full calendar version: placeos-<major>.<YYYYMM>.<patch>[-rc<N>].
	ShapeFullCalver
	// ShapeMonthCalver is a month-only calendar version: placeos-<major>.<YYYYMM>.
	ShapeMonthCalver
	// ShapeChannel is a floating release train name: nightly, preview or latest.
	ShapeChannel
)

// String returns a human-readable name for the tag shape.
func (s Shape) String() string {
	switch s {
	case ShapeFullCalver:
		return "calendar version"
	case ShapeMonthCalver:
		return "month version"
	case ShapeChannel:
		return "channel"
	default:
		return "invalid"
	}
}

var (
	fullCalverPattern  = regexp.MustCompile(`^placeos-(\d+)\.(\d{6})\.(\d+)(?:-rc(\d+))?$`)
	monthCalverPattern = regexp.MustCompile(`^placeos-(\d+)\.(\d{6})$`)
	channelPattern     = regexp.MustCompile(`^(nightly|preview|latest)$`)

	// calverSubstring matches a bare calendar-version substring in a raw
	// remote tag name (before the placeos- prefix is applied).
	calverSubstring = regexp.MustCompile(`\d+\.\d{6}(?:\.\d+(?:-rc\d+)?)?`)
)

// ParseTag classifies a tag string into one of the accepted shapes.
// Full calendar versions are checked before month versions so the
// longer pattern wins.
func ParseTag(s string) Shape {
	switch {
	case fullCalverPattern.MatchString(s):
		return ShapeFullCalver
	case monthCalverPattern.MatchString(s):
		return ShapeMonthCalver
	case channelPattern.MatchString(s):
		return ShapeChannel
	default:
		return ShapeInvalid
	}
}

// IsValid reports whether s matches the union of the three accepted
// tag shapes.
func IsValid(s string) bool {
	return ParseTag(s) != ShapeInvalid
}

// IsChannel reports whether s names a floating release channel.
func IsChannel(s string) bool {
	return channelPattern.MatchString(s)
}

// RewriteTag applies the placeos- prefix to the calendar-version
// substring of a raw remote tag name. Channel names and tags without a
// calendar-version substring pass through unchanged.
func RewriteTag(name string) string {
	return calverSubstring.ReplaceAllString(name, TagPrefix+"${0}")
}

// calverKey is the numeric sort key extracted from a calendar-version
// tag. rc is 0 for pre-releases and maxInt for final releases so that
// placeos-1.2312.5 orders above placeos-1.2312.5-rc2.
type calverKey struct {
	major, month, patch, rc int
}

const finalRelease = int(^uint(0) >> 1)

func calverSortKey(tag string) (calverKey, bool) {
	m := fullCalverPattern.FindStringSubmatch(tag)
	if m != nil {
		key := calverKey{rc: finalRelease}
		key.major, _ = strconv.Atoi(m[1])
		key.month, _ = strconv.Atoi(m[2])
		key.patch, _ = strconv.Atoi(m[3])
		if m[4] != "" {
			key.rc, _ = strconv.Atoi(m[4])
		}
		return key, true
	}

	m = monthCalverPattern.FindStringSubmatch(tag)
	if m != nil {
		key := calverKey{patch: -1, rc: finalRelease}
		key.major, _ = strconv.Atoi(m[1])
		key.month, _ = strconv.Atoi(m[2])
		return key, true
	}

	return calverKey{}, false
}

func (a calverKey) less(b calverKey) bool {
	if a.major != b.major {
		return a.major < b.major
	}
	if a.month != b.month {
		return a.month < b.month
	}
	if a.patch != b.patch {
		return a.patch < b.patch
	}
	return a.rc < b.rc
}

// SortTags orders tags descending by version: newest calendar version
// first, channel and unrecognized names after all calendar versions in
// lexical order. The sort is stable so equal keys keep their remote
// listing order.
func SortTags(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		ki, iCalver := calverSortKey(tags[i])
		kj, jCalver := calverSortKey(tags[j])

		switch {
		case iCalver && jCalver:
			return kj.less(ki)
		case iCalver:
			return true
		case jCalver:
			return false
		default:
			return strings.Compare(tags[i], tags[j]) < 0
		}
	})
}
