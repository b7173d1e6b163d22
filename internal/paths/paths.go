package paths

import (
	"os"
	"path/filepath"
)

// AppName は設定ディレクトリ名などに使うアプリケーション名
const AppName = "issue-transfer"

// ConfigDir は設定ファイルを置くディレクトリを返します
// XDG_CONFIG_HOMEが設定されていればそれを、なければ ~/.config を基準にします
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigSearchPaths は設定ファイルを探すディレクトリを優先順に返します
func ConfigSearchPaths() []string {
	dirs := make([]string, 0, 2)
	if dir := ConfigDir(); dir != "" {
		dirs = append(dirs, dir)
	}
	return append(dirs, ".")
}
