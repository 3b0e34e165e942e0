package director

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// DefaultTakeDir is where takes are looked up when none is given.
var DefaultTakeDir = filepath.Join("input", "takes")

// GenerateTakePath creates a timestamped take filename in dir
func GenerateTakePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("take_%s.yaml", timestamp))
}

// FindLatestTake finds the most recent take file in dir
func FindLatestTake(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read takes directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var takes []candidate
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if entry.IsDir() || !(strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		takes = append(takes, candidate{filepath.Join(dir, entry.Name()), info.ModTime()})
	}

	if len(takes) == 0 {
		return "", fmt.Errorf("no take files found in %s", dir)
	}

	// Newest first
	sort.Slice(takes, func(i, j int) bool {
		return takes[i].modTime.After(takes[j].modTime)
	})

	return takes[0].path, nil
}

// OutputName turns an object name into a file name for export-all mode.
func OutputName(objectName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, objectName)
	if name == "" || name == "." || name == ".." {
		name = "camera"
	}
	return name + ".json"
}
