package director

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/ivlev/pcrcam/internal/pcr"
)

func TestReplay(t *testing.T) {
	take, err := ReadTake(writeSample(t))
	if err != nil {
		t.Fatalf("ReadTake failed: %v", err)
	}

	model := pcr.New()
	if err := NewDirector(model).Replay(take); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	cam, ok := model.Data.Cameras.Get("Camera")
	if !ok {
		t.Fatal("Camera data not registered")
	}
	obj, ok := model.Data.Objects.Get("Camera")
	if !ok {
		t.Fatal("Camera object not registered")
	}
	if obj.Data != cam {
		t.Error("Object should reference the replayed camera data")
	}
	if model.Context.Collection.Objects.Len() != 1 {
		t.Errorf("Expected 1 linked object, got %d", model.Context.Collection.Objects.Len())
	}
	if model.Context.Scene.CurrentFrame() != 10 {
		t.Errorf("Expected scene at frame 10, got %d", model.Context.Scene.CurrentFrame())
	}

	if v, _ := cam.ClipStart.Float(); v != 0.1 {
		t.Errorf("Expected clip_start 0.1, got %v", cam.ClipStart)
	}
	if !cam.DOF.FocusDistance.Equal(pcr.Number(4)) {
		t.Errorf("Expected focus distance 4 after the last key, got %v", cam.DOF.FocusDistance)
	}

	lens := cam.Track("lens")
	if len(lens) != 2 || lens[0].Frame != 1 || lens[1].Frame != 10 {
		t.Fatalf("Unexpected lens track: %v", lens)
	}
	if !lens[1].Value.Equal(pcr.Number(35)) {
		t.Errorf("Expected lens 35 at frame 10, got %v", lens[1].Value)
	}
	if n := len(obj.Track("location")); n != 1 {
		t.Errorf("Expected 1 location keyframe, got %d", n)
	}

	var buf bytes.Buffer
	if err := model.Encode(&buf, "Camera", pcr.LayoutByFrame); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var doc struct {
		Camera struct {
			Data struct {
				Lens      float64                   `json:"lens"`
				Keyframes map[string]map[string]any `json:"keyframes"`
			} `json:"data"`
		} `json:"camera"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	want := map[string]map[string]any{
		"1":  {"lens": 50.0},
		"10": {"lens": 35.0, "dof.focus_distance": 4.0},
	}
	if !reflect.DeepEqual(doc.Camera.Data.Keyframes, want) {
		t.Errorf("Unexpected frame index: %v", doc.Camera.Data.Keyframes)
	}
}

func TestReplayUnsupportedProperty(t *testing.T) {
	take := &Take{Cameras: []CameraTake{{
		Name: "Camera",
		Keys: []Key{{Frame: 3, Data: Attributes{{Name: "sensor_width", Value: pcr.Number(36)}}}},
	}}}

	err := NewDirector(pcr.New()).Replay(take)
	if err == nil {
		t.Fatal("Expected error for unsupported property")
	}
	if !strings.Contains(err.Error(), "sensor_width") {
		t.Errorf("Error should name the property: %v", err)
	}
}

func TestReplaySharedObjectName(t *testing.T) {
	take := &Take{Cameras: []CameraTake{
		{Name: "Main", ObjectName: "Rig"},
		{Name: "Backup", ObjectName: "Rig"},
	}}

	model := pcr.New()
	if err := NewDirector(model).Replay(take); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}

	obj, _ := model.Data.Objects.Get("Rig")
	if obj.Data.Name != "Backup" {
		t.Errorf("Expected later camera to replace the object, got %s", obj.Data.Name)
	}
	if model.Data.Cameras.Len() != 2 {
		t.Errorf("Expected 2 camera data blocks, got %d", model.Data.Cameras.Len())
	}
	if model.Context.Collection.Objects.Len() != 2 {
		t.Errorf("Expected both objects linked, got %d", model.Context.Collection.Objects.Len())
	}
}

func TestReplayWithoutLogger(t *testing.T) {
	take, err := ReadTake(writeSample(t))
	if err != nil {
		t.Fatalf("ReadTake failed: %v", err)
	}

	model := pcr.New()
	d := &Director{Model: model}
	if err := d.Replay(take); err != nil {
		t.Fatalf("Replay failed: %v", err)
	}
	if _, ok := model.Data.Objects.Get("Camera"); !ok {
		t.Error("Camera object not registered")
	}
}
