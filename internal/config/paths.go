// ABOUTME: Location of the optional settings file
// ABOUTME: The file lives in the directory the terminal is started from

package config

import "path/filepath"

// FileName is the settings file looked up in the working directory.
const FileName = ".scriptterm.yaml"

// ProjectConfigFile returns the settings file for a working directory.
func ProjectConfigFile(root string) string {
	return filepath.Join(root, FileName)
}
