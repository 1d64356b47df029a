// Package release tests tag shape classification, remote tag
// rewriting and version ordering.
// Related: internal/release/tags.go
// Tags: release, calver, tags
package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTag(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tag  string
		want Shape
	}{
		"full calver": {
			tag:  "placeos-1.2312.5",
			want: ShapeFullCalver,
		},
		"full calver with rc": {
			tag:  "placeos-1.2401.0-rc2",
			want: ShapeFullCalver,
		},
		"month calver": {
			tag:  "placeos-1.2312",
			want: ShapeMonthCalver,
		},
		"nightly channel": {
			tag:  "nightly",
			want: ShapeChannel,
		},
		"preview channel": {
			tag:  "preview",
			want: ShapeChannel,
		},
		"latest channel": {
			tag:  "latest",
			want: ShapeChannel,
		},
		"missing prefix": {
			tag:  "1.2312.5",
			want: ShapeInvalid,
		},
		"five digit month": {
			tag:  "placeos-1.23125.0",
			want: ShapeInvalid,
		},
		"seven digit month": {
			tag:  "placeos-1.2312015.0",
			want: ShapeInvalid,
		},
		"semver": {
			tag:  "v1.2.3",
			want: ShapeInvalid,
		},
		"empty": {
			tag:  "",
			want: ShapeInvalid,
		},
		"rc without number": {
			tag:  "placeos-1.2312.5-rc",
			want: ShapeInvalid,
		},
		"trailing garbage": {
			tag:  "placeos-1.2312.5x",
			want: ShapeInvalid,
		},
		"unknown channel": {
			tag:  "stable",
			want: ShapeInvalid,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParseTag(tt.tag))
		})
	}
}

func TestIsChannel(t *testing.T) {
	t.Parallel()

	assert.True(t, IsChannel("nightly"))
	assert.True(t, IsChannel("preview"))
	assert.True(t, IsChannel("latest"))
	assert.False(t, IsChannel("placeos-1.2312.5"))
	assert.False(t, IsChannel("Nightly"))
}

func TestRewriteTag(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		name string
		want string
	}{
		"bare full calver": {
			name: "1.2312.5",
			want: "placeos-1.2312.5",
		},
		"bare rc calver": {
			name: "1.2401.0-rc2",
			want: "placeos-1.2401.0-rc2",
		},
		"bare month calver": {
			name: "1.2312",
			want: "placeos-1.2312",
		},
		"channel passes through": {
			name: "nightly",
			want: "nightly",
		},
		"no calver substring": {
			name: "some-feature-tag",
			want: "some-feature-tag",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RewriteTag(tt.name))
		})
	}
}

func TestSortTags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		tags []string
		want []string
	}{
		"newest first": {
			tags: []string{"placeos-1.2311.2", "placeos-1.2312.5", "placeos-1.2312.4"},
			want: []string{"placeos-1.2312.5", "placeos-1.2312.4", "placeos-1.2311.2"},
		},
		"rc orders below final": {
			tags: []string{"placeos-1.2312.5-rc2", "placeos-1.2312.5", "placeos-1.2312.5-rc1"},
			want: []string{"placeos-1.2312.5", "placeos-1.2312.5-rc2", "placeos-1.2312.5-rc1"},
		},
		"month version below its patches": {
			tags: []string{"placeos-1.2312", "placeos-1.2312.0"},
			want: []string{"placeos-1.2312.0", "placeos-1.2312"},
		},
		"channels after calvers": {
			tags: []string{"nightly", "placeos-1.2311.0", "latest", "placeos-1.2312.1"},
			want: []string{"placeos-1.2312.1", "placeos-1.2311.0", "latest", "nightly"},
		},
		"major beats month": {
			tags: []string{"placeos-1.2412.9", "placeos-2.2301.0"},
			want: []string{"placeos-2.2301.0", "placeos-1.2412.9"},
		},
		"empty": {
			tags: []string{},
			want: []string{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tags := append([]string(nil), tt.tags...)
			SortTags(tags)
			assert.Equal(t, tt.want, tags)
		})
	}
}
