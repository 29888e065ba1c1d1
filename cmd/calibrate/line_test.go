package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "line", "eightwo", "a1b2c3", "abcdef")
	require.NoError(t, err)
	assert.Equal(t, "eightwo: 82\na1b2c3: 13\nabcdef: no digits\n", stdout)
}

func TestLineCommand_Verbose(t *testing.T) {
	stdout, _, err := runCLI(t, "line", "--verbose", "a1b2c3")
	require.NoError(t, err)
	assert.Equal(t, "a1b2c3: 13 (first 1 at 1, last 3 at 5)\n", stdout)
}

func TestLineCommand_RequiresArgument(t *testing.T) {
	_, _, err := runCLI(t, "line")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
