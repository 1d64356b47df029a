package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDevBuild(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "dev"
	assert.True(t, IsDevBuild())

	Version = "1.2.0"
	assert.False(t, IsDevBuild())
}
