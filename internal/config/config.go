package config

import (
	"fmt"

	"github.com/ivlev/pcrcam/internal/director"
	"github.com/ivlev/pcrcam/internal/pcr"
)

type Config struct {
	TakePath     string
	OutputPath   string // file, or directory with ExportAll
	CameraName   string
	Layout       string
	ExportAll    bool
	BakeStep     int
	Easing       string
	Workers      int
	LogLevel     string
	BuildVersion string
}

// ExportParams is the resolved form of the export flags.
type ExportParams struct {
	Layout pcr.Layout
	Easing director.Easing
}

// Resolve validates the configuration and parses its enumerated options.
func (c *Config) Resolve() (ExportParams, error) {
	var p ExportParams

	layout, err := pcr.ParseLayout(c.Layout)
	if err != nil {
		return p, err
	}
	p.Layout = layout

	easing, err := director.ParseEasing(c.Easing)
	if err != nil {
		return p, err
	}
	p.Easing = easing

	if c.BakeStep < 0 {
		return p, fmt.Errorf("bake step must not be negative, got %d", c.BakeStep)
	}
	if c.Workers < 1 {
		return p, fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.ExportAll && c.CameraName != "" {
		return p, fmt.Errorf("-camera and -all are mutually exclusive")
	}
	return p, nil
}
