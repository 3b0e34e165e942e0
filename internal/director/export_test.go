package director

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ivlev/pcrcam/internal/pcr"
)

func TestExportAll(t *testing.T) {
	model := pcr.New()
	for _, name := range []string{"Wide", "Close", "rig/top", "rig_top"} {
		cam := model.Data.Cameras.New(name)
		cam.Lens = pcr.Number(24)
		cam.KeyframeInsert("lens")
		model.Data.Objects.New(name, cam)
	}

	dir := t.TempDir()
	paths, err := ExportAll(context.Background(), model, dir, pcr.LayoutByProperty, 2)
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}

	want := []string{"Wide.json", "Close.json", "rig_top.json", "rig_top_2.json"}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %v", len(want), paths)
	}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Errorf("Path %d: expected %s, got %s", i, name, paths[i])
		}
		raw, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Errorf("%s is not valid JSON: %v", name, err)
		}
	}
}

func TestExportAllAvoidsSuffixClash(t *testing.T) {
	model := pcr.New()
	for i, name := range []string{"a/b", "a_b", "a_b_2"} {
		cam := model.Data.Cameras.New(name)
		cam.Lens = pcr.Number(float64(20 + i))
		model.Data.Objects.New(name, cam)
	}

	dir := t.TempDir()
	paths, err := ExportAll(context.Background(), model, dir, pcr.LayoutByProperty, 3)
	if err != nil {
		t.Fatalf("ExportAll failed: %v", err)
	}

	want := []string{"a_b.json", "a_b_2.json", "a_b_2_2.json"}
	for i, name := range want {
		if paths[i] != filepath.Join(dir, name) {
			t.Errorf("Path %d: expected %s, got %s", i, name, paths[i])
		}
		raw, err := os.ReadFile(paths[i])
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		var doc struct {
			Camera struct {
				Name string `json:"name"`
				Data struct {
					Lens float64 `json:"lens"`
				} `json:"data"`
			} `json:"camera"`
		}
		if err := json.Unmarshal(raw, &doc); err != nil {
			t.Fatalf("%s is not valid JSON: %v", name, err)
		}
		if doc.Camera.Data.Lens != float64(20+i) {
			t.Errorf("%s: expected lens %d, got %v", name, 20+i, doc.Camera.Data.Lens)
		}
	}
}

func TestExportAllFailsOnBadDir(t *testing.T) {
	model := pcr.New()
	model.Data.Objects.New("Camera", model.Data.Cameras.New("Camera"))

	_, err := ExportAll(context.Background(), model, filepath.Join(t.TempDir(), "missing"), pcr.LayoutByFrame, 1)
	if err == nil {
		t.Error("Expected error for a missing output directory")
	}
}
