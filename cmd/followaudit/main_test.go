package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"followaudit/pkg/config"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"maybe\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := confirm(strings.NewReader(tt.input), &out, "Unfollow these 2 accounts?")
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Unfollow these 2 accounts? [y/N]: ")
	}
}

func TestExampleConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(exampleConfig), 0644))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseURL, cfg.Threads.BaseURL)
	assert.Equal(t, time.Duration(0), cfg.Threads.Timeout)
	assert.NotEmpty(t, cfg.Storage.CacheFile)
}

func TestCommandFlagsOnlyChanged(t *testing.T) {
	require.NoError(t, checkCmd.ParseFlags([]string{"--cache-file", "/tmp/list.json", "--timeout", "5s"}))

	flags := commandFlags(checkCmd)
	assert.Equal(t, "/tmp/list.json", flags["cache-file"])
	assert.Equal(t, 5*time.Second, flags["timeout"])
	assert.NotContains(t, flags, "token")
	assert.NotContains(t, flags, "base-url")
}
