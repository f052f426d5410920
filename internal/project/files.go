package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// configDirName is the directory under the home directory holding the
// config, the template store and the session.
const configDirName = ".airframedesk"

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.airframedesk/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, configDirName)
}

// ConfigFile returns the path of name inside DefaultConfigDir.
func ConfigFile(name string) string {
	return filepath.Join(DefaultConfigDir(), name)
}

// writeFile writes data to path, creating missing parent directories.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, data, 0644)
}

// writeJSON writes v to path as indented JSON.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	return writeFile(path, data)
}

// readJSON decodes the JSON file at path into v. A missing file is reported
// as found == false with a nil error, leaving v untouched.
func readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
