package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigDir(t *testing.T) {
	t.Run("XDG_CONFIG_HOMEを優先する", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		assert.Equal(t, filepath.Join(xdg, "issue-transfer"), ConfigDir())
	})

	t.Run("XDG_CONFIG_HOMEがなければホームディレクトリ配下", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)

		assert.Equal(t, filepath.Join(home, ".config", "issue-transfer"), ConfigDir())
	})
}

func TestConfigSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	assert.Equal(t, []string{filepath.Join(home, ".config", "issue-transfer"), "."}, ConfigSearchPaths())
}
