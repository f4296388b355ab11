package utils

import (
	"os"
	"path/filepath"
)

func GetDefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// No home or XDG config dir, keep data next to the working directory
		return ".datealingo"
	}
	return filepath.Join(dir, "datealingo")
}
