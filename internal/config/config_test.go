package config

import (
	"testing"

	"github.com/ivlev/pcrcam/internal/pcr"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		layout  pcr.Layout
		wantErr bool
	}{
		{"defaults", Config{Workers: 1}, pcr.LayoutByProperty, false},
		{"frame layout", Config{Layout: "frame", Easing: "ease", Workers: 4, BakeStep: 2}, pcr.LayoutByFrame, false},
		{"bad layout", Config{Layout: "grid", Workers: 1}, 0, true},
		{"bad easing", Config{Easing: "bounce", Workers: 1}, 0, true},
		{"negative bake", Config{BakeStep: -1, Workers: 1}, 0, true},
		{"no workers", Config{Workers: 0}, 0, true},
		{"camera with all", Config{CameraName: "Camera", ExportAll: true, Workers: 1}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.cfg.Resolve()
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if p.Layout != tt.layout {
				t.Errorf("Expected layout %v, got %v", tt.layout, p.Layout)
			}
			if p.Easing == nil {
				t.Error("Expected an easing function")
			}
		})
	}
}
