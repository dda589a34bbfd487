package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	var opts Flags
	_, err := flags.NewParser(&opts, flags.None).ParseArgs(args)
	require.NoError(t, err)
	return &opts
}

func TestFlagDefaults(t *testing.T) {
	opts := parseFlags(t)
	assert.Equal(t, 10, opts.Num)
	assert.Equal(t, "Medium", opts.Level)
	assert.Equal(t, "High School", opts.Grade)
	assert.False(t, opts.Serve)
}

func TestVerboseIsRepeatable(t *testing.T) {
	opts := parseFlags(t, "-t", "photosynthesis", "-vvv")
	assert.Len(t, opts.Verbose, 3)
	assert.Equal(t, "photosynthesis", opts.Topic)
}

func TestResolveContentRequiresInput(t *testing.T) {
	_, err := resolveContent(&Flags{})
	require.Error(t, err)

	_, err = resolveContent(&Flags{Topic: "   "})
	require.Error(t, err)
}

func TestResolveContentFromTopic(t *testing.T) {
	content, err := resolveContent(&Flags{Topic: "the water cycle"})
	require.NoError(t, err)
	assert.Equal(t, "the water cycle", content)
}

func TestResolveContentFileWinsOverTopic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("file content"), 0o600))

	content, err := resolveContent(&Flags{Topic: "ignored", File: path})
	require.NoError(t, err)
	assert.Equal(t, "file content", content)
}
