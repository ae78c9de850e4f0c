package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "STIXGRAPH_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "stixgraph.yaml"
	// ConfigDirName is the directory under XDG, ~/.config and /etc
	ConfigDirName = "stixgraph"

	userConfigName = "config.yaml"
)

// SearchPaths lists config candidates in priority order:
// 1. $STIXGRAPH_CONFIG
// 2. ./stixgraph.yaml
// 3. $XDG_CONFIG_HOME/stixgraph/config.yaml
// 4. ~/.config/stixgraph/config.yaml
// 5. /etc/stixgraph/config.yaml
func SearchPaths() []string {
	var paths []string
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		paths = append(paths, explicit)
	}

	local := ConfigFileName
	if abs, err := filepath.Abs(ConfigFileName); err == nil {
		local = abs
	}
	paths = append(paths, local)

	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		paths = append(paths, filepath.Join(xdgHome, ConfigDirName, userConfigName))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, userConfigName))
	}

	return append(paths, filepath.Join("/etc", ConfigDirName, userConfigName))
}

// FindConfigPath returns the first of SearchPaths that exists, or "" when
// there is none
func FindConfigPath() string {
	for _, path := range SearchPaths() {
		if isFile(path) {
			return path
		}
	}
	return ""
}

// DefaultConfigPath is where config init writes: the XDG config home, else
// ~/.config, else the working directory
func DefaultConfigPath() string {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, ConfigDirName, userConfigName)
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", ConfigDirName, userConfigName)
	}
	return ConfigFileName
}

// EnsureConfigDir creates the parent directory of configPath
func EnsureConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), 0o755)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
