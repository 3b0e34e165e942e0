package director

import (
	"fmt"

	"github.com/ivlev/pcrcam/internal/pcr"
	log "github.com/sirupsen/logrus"
)

// Director replays takes into a scene model the way an exporter add-on
// drives the host application frame by frame.
type Director struct {
	Model  *pcr.PCR
	Logger log.FieldLogger
}

// NewDirector creates a Director for model
func NewDirector(model *pcr.PCR) *Director {
	return &Director{
		Model:  model,
		Logger: log.StandardLogger(),
	}
}

// Replay registers every camera of the take, links it into the scene
// collection and records its keys. Cameras are replayed in take order and
// keys in the order they are listed.
func (d *Director) Replay(take *Take) error {
	for i := range take.Cameras {
		if err := d.replayCamera(&take.Cameras[i]); err != nil {
			return fmt.Errorf("camera %s: %w", take.Cameras[i].Name, err)
		}
	}
	return nil
}

func (d *Director) replayCamera(ct *CameraTake) error {
	cam := d.Model.Data.Cameras.New(ct.Name)
	obj := d.Model.Data.Objects.New(ct.ObjectKey(), cam)
	d.Model.Context.Collection.Objects.Link(obj)

	if err := applyAll(cam.Set, ct.Data, "data"); err != nil {
		return err
	}
	if err := applyAll(obj.Set, ct.Object, "object"); err != nil {
		return err
	}

	logger := d.logger().WithField("camera", ct.Name)
	scene := d.Model.Context.Scene
	for _, key := range ct.Keys {
		scene.FrameSet(key.Frame)

		if err := applyAll(cam.Set, key.Data, "data"); err != nil {
			return fmt.Errorf("frame %d: %w", key.Frame, err)
		}
		for _, attr := range key.Data {
			cam.KeyframeInsert(attr.Name)
		}

		if err := applyAll(obj.Set, key.Object, "object"); err != nil {
			return fmt.Errorf("frame %d: %w", key.Frame, err)
		}
		for _, attr := range key.Object {
			obj.KeyframeInsert(attr.Name)
		}

		logger.WithFields(log.Fields{
			"frame":  key.Frame,
			"data":   len(key.Data),
			"object": len(key.Object),
		}).Debug("keyframes inserted")
	}

	logger.WithFields(log.Fields{
		"keys":   len(ct.Keys),
		"object": obj.Name,
	}).Info("camera replayed")
	return nil
}

func (d *Director) logger() log.FieldLogger {
	if d.Logger == nil {
		return log.StandardLogger()
	}
	return d.Logger
}

func applyAll(set func(string, pcr.Value) bool, attrs Attributes, record string) error {
	for _, attr := range attrs {
		if !set(attr.Name, attr.Value) {
			return fmt.Errorf("unsupported %s property %q (value %v)", record, attr.Name, attr.Value)
		}
	}
	return nil
}
