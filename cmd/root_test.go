package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCmd()
	require.NotNil(t, root)
	assert.Equal(t, "episode-api", root.Use)

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}

	assert.True(t, names["serve"])
	assert.True(t, names["segment"])
	assert.True(t, names["synthesize"])
	assert.True(t, names["version"])
}
