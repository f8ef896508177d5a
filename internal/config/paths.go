package config

import (
	"os"
	"path/filepath"
)

const (
	// ProjectDirName is the per-project state directory.
	ProjectDirName = ".promptwing"

	// ConfigName is the config file name without extension.
	ConfigName = ".promptwing"

	// ConfigType is the config file format.
	ConfigType = "yaml"

	// EnvPrefix prefixes every environment variable read by promptwing.
	EnvPrefix = "PROMPTWING"
)

// GetGlobalConfigDir returns the directory holding the global config file
// (the user's home directory). It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	return os.UserHomeDir()
}

// ProjectConfigPath returns ./.promptwing/.promptwing.yaml under dir.
func ProjectConfigPath(dir string) string {
	return filepath.Join(dir, ProjectDirName, ConfigName+"."+ConfigType)
}

// GlobalConfigPath returns $HOME/.promptwing.yaml.
func GlobalConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigName+"."+ConfigType), nil
}

// SearchPaths lists the directories searched for the config file, in
// priority order: the project state directory, home, then the working
// directory.
func SearchPaths() []string {
	paths := []string{ProjectDirName}
	if home, err := GetGlobalConfigDir(); err == nil {
		paths = append(paths, home)
	}
	return append(paths, ".")
}

// CrashLogBase returns the base directory for crash logs under dir.
func CrashLogBase(dir string) string {
	return filepath.Join(dir, ProjectDirName)
}
