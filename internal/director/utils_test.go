package director

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestGenerateTakePath(t *testing.T) {
	path := GenerateTakePath(DefaultTakeDir)

	if !strings.Contains(path, "take_") {
		t.Errorf("Path should contain 'take_': %s", path)
	}

	if !strings.HasPrefix(path, filepath.Join("input", "takes")) {
		t.Errorf("Path should be in input/takes: %s", path)
	}

	t.Logf("Generated path: %s", path)
}

func TestFindLatestTake(t *testing.T) {
	testDir := t.TempDir()

	// Create test files with different timestamps
	files := []string{
		filepath.Join(testDir, "take_2026-02-12_10-00-00.yaml"),
		filepath.Join(testDir, "take_2026-02-13_01-00-00.yml"),
		filepath.Join(testDir, "take_2026-02-11_15-30-00.yaml"),
	}

	for i, f := range files {
		if err := os.WriteFile(f, []byte("test"), 0644); err != nil {
			t.Fatal(err)
		}
		modTime := time.Now().Add(time.Duration(i) * time.Hour)
		os.Chtimes(f, modTime, modTime)
	}
	// not a take
	os.WriteFile(filepath.Join(testDir, "notes.txt"), []byte("x"), 0644)

	latest, err := FindLatestTake(testDir)
	if err != nil {
		t.Fatalf("FindLatestTake failed: %v", err)
	}

	t.Logf("Latest take: %s", latest)

	if latest != files[len(files)-1] {
		t.Errorf("Expected latest to be %s, got %s", files[len(files)-1], latest)
	}
}

func TestFindLatestTakeEmpty(t *testing.T) {
	if _, err := FindLatestTake(t.TempDir()); err == nil {
		t.Error("Expected error for a directory without takes")
	}
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Camera", "Camera.json"},
		{"rig/main", "rig_main.json"},
		{"", "camera.json"},
		{"..", "camera.json"},
	}

	for _, tt := range tests {
		if got := OutputName(tt.in); got != tt.want {
			t.Errorf("OutputName(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}
