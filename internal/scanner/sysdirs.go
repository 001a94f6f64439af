package scanner

import (
	"os"
	"path/filepath"
	"runtime"
)

// SystemFontDirs returns the platform's conventional font directories,
// filtered to the ones that exist. Used when a run names no library
// sources.
func SystemFontDirs() []string {
	var dirs []string

	switch runtime.GOOS {
	case "windows":
		if windir := os.Getenv("WINDIR"); windir != "" {
			dirs = append(dirs, filepath.Join(windir, "Fonts"))
		}
	case "darwin":
		home, _ := os.UserHomeDir()
		dirs = append(dirs,
			"/System/Library/Fonts",
			"/Library/Fonts",
			filepath.Join(home, "Library", "Fonts"),
		)
	default:
		home, _ := os.UserHomeDir()
		dirs = append(dirs,
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
		)
	}

	existing := dirs[:0]
	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			existing = append(existing, dir)
		}
	}
	return existing
}
