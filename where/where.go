// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"

	"github.com/wangjh9712/fullbr115/constant"
	"github.com/wangjh9712/fullbr115/filesystem"
)

// EnvConfigPath is the environment variable that overrides the default configuration directory.
const EnvConfigPath = "FULLBR115_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// It follows os.UserConfigDir (XDG on Linux, user profile paths on Darwin and Windows)
// unless overridden via the FULLBR115_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Fullbr115))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		// Fall back to a local cache directory if the system path is inaccessible.
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Fullbr115))
}

// Responses resolves the directory holding cached server response entries.
func Responses() string {
	return ensureDir(filepath.Join(Cache(), "responses"))
}

// Logs resolves the absolute path to the directory used for diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Queries resolves the absolute path to the search query suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp resolves a volatile filesystem path for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Fullbr115))
}
