package director

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteTake writes a take to a YAML file
func WriteTake(take *Take, path string) error {
	data, err := yaml.Marshal(take)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadTake reads a take from a YAML file
func ReadTake(path string) (*Take, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var take Take
	if err := yaml.Unmarshal(data, &take); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := take.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &take, nil
}

// Validate checks that every camera is named.
func (t *Take) Validate() error {
	if len(t.Cameras) == 0 {
		return fmt.Errorf("take has no cameras")
	}
	for i, cam := range t.Cameras {
		if cam.Name == "" {
			return fmt.Errorf("camera %d has no name", i+1)
		}
	}
	return nil
}
