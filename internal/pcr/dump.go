package pcr

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// DefaultFilename is written when Dump is called without a filename.
const DefaultFilename = "camera.json"

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrNoCameraData   = errors.New("object has no camera data")
)

// Layout selects how keyframes appear in a dump.
type Layout int

const (
	// LayoutByProperty lists keyframes per property in insertion order.
	LayoutByProperty Layout = iota
	// LayoutByFrame maps each frame to the properties keyframed on it.
	LayoutByFrame
)

func (l Layout) String() string {
	if l == LayoutByFrame {
		return "frame"
	}
	return "property"
}

// ParseLayout accepts "property" or "frame".
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(s) {
	case "", "property":
		return LayoutByProperty, nil
	case "frame":
		return LayoutByFrame, nil
	default:
		return LayoutByProperty, fmt.Errorf("unknown keyframe layout: %s", s)
	}
}

// dumpAPI writes two-space indented JSON and leaves <, > and & unescaped.
var dumpAPI = jsoniter.Config{
	IndentionStep: 2,
	EscapeHTML:    false,
}.Froze()

// Dump writes the camera object registered as cameraName to filename with
// keyframes listed per property.
func (p *PCR) Dump(cameraName, filename string) error {
	return p.DumpLayout(cameraName, filename, LayoutByProperty)
}

// DumpIndexOnFrame writes the same document as Dump, with keyframes indexed
// by frame instead.
func (p *PCR) DumpIndexOnFrame(cameraName, filename string) error {
	return p.DumpLayout(cameraName, filename, LayoutByFrame)
}

// DumpLayout writes the camera object to filename, creating or truncating
// it. Nothing is written if the camera cannot be resolved or encoded.
func (p *PCR) DumpLayout(cameraName, filename string, layout Layout) error {
	if filename == "" {
		filename = DefaultFilename
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf, cameraName, layout); err != nil {
		return err
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

// Encode writes the camera object registered as cameraName to w.
func (p *PCR) Encode(w io.Writer, cameraName string, layout Layout) error {
	obj, err := p.lookup(cameraName)
	if err != nil {
		return err
	}
	if err := writeCamera(w, obj, layout); err != nil {
		return fmt.Errorf("encode %q: %w", cameraName, err)
	}
	return nil
}

func (p *PCR) lookup(cameraName string) (*Object, error) {
	obj, ok := p.Data.Objects.Get(cameraName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrObjectNotFound, cameraName)
	}
	if obj.Data == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoCameraData, cameraName)
	}
	return obj, nil
}

func writeCamera(w io.Writer, obj *Object, layout Layout) error {
	stream := jsoniter.NewStream(dumpAPI, w, 4096)
	cam := obj.Data

	writeKeyframes := func(k *Keyframes) {
		if layout == LayoutByFrame {
			k.writeSnapshots(stream)
		} else {
			k.writeTracks(stream)
		}
	}
	field := func(name string, v Value) {
		stream.WriteObjectField(name)
		v.write(stream)
		stream.WriteMore()
	}

	stream.WriteObjectStart()
	stream.WriteObjectField("camera")
	stream.WriteObjectStart()

	stream.WriteObjectField("name")
	stream.WriteString(obj.Name)
	stream.WriteMore()

	stream.WriteObjectField("data")
	stream.WriteObjectStart()
	field("lens", cam.Lens)
	field("shift_x", cam.ShiftX)
	field("shift_y", cam.ShiftY)
	stream.WriteObjectField("dof")
	stream.WriteObjectStart()
	stream.WriteObjectField("focus_distance")
	cam.DOF.FocusDistance.write(stream)
	stream.WriteObjectEnd()
	stream.WriteMore()
	field("clip_start", cam.ClipStart)
	field("clip_end", cam.ClipEnd)
	field("display_size", cam.DisplaySize)
	stream.WriteObjectField("keyframes")
	writeKeyframes(&cam.Keyframes)
	stream.WriteObjectEnd()
	stream.WriteMore()

	stream.WriteObjectField("object")
	stream.WriteObjectStart()
	field("hide_render", obj.HideRender)
	stream.WriteObjectField("keyframes")
	writeKeyframes(&obj.Keyframes)
	stream.WriteObjectEnd()

	stream.WriteObjectEnd()
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return stream.Error
	}
	return stream.Flush()
}
