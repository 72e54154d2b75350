package paths

import (
	"os"
	"path/filepath"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// DataDir returns ~/.wstdesk.
func DataDir() string {
	return filepath.Join(home(), ".wstdesk")
}

// StoreFile returns ~/.wstdesk/profiles.json, the profile store document.
func StoreFile() string {
	return filepath.Join(DataDir(), "profiles.json")
}
