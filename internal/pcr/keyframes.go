package pcr

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

// Keyframe is a property value recorded at a frame.
type Keyframe struct {
	Frame int
	Value Value
}

// Keyframes records every keyframe inserted on a scene record, both as
// per-property tracks and as per-frame snapshots. The zero value is empty
// and ready to use.
type Keyframes struct {
	// properties and frames keep first-insertion order for export
	properties []string
	tracks     map[string][]Keyframe
	frames     []int
	snapshots  map[int]*snapshot
}

type snapshot struct {
	order  []string
	values map[string]Value
}

func (k *Keyframes) record(frame int, property string, value Value) {
	if k.tracks == nil {
		k.tracks = make(map[string][]Keyframe)
		k.snapshots = make(map[int]*snapshot)
	}

	if _, ok := k.tracks[property]; !ok {
		k.properties = append(k.properties, property)
	}
	k.tracks[property] = append(k.tracks[property], Keyframe{Frame: frame, Value: value})

	snap, ok := k.snapshots[frame]
	if !ok {
		snap = &snapshot{values: make(map[string]Value)}
		k.snapshots[frame] = snap
		k.frames = append(k.frames, frame)
	}
	if _, ok := snap.values[property]; !ok {
		snap.order = append(snap.order, property)
	}
	snap.values[property] = value
}

// Tracks returns the keyframed property names in first-insertion order.
func (k *Keyframes) Tracks() []string {
	out := make([]string, len(k.properties))
	copy(out, k.properties)
	return out
}

// Track returns the keyframes recorded for property in insertion order.
func (k *Keyframes) Track(property string) []Keyframe {
	track := k.tracks[property]
	out := make([]Keyframe, len(track))
	copy(out, track)
	return out
}

// Frames returns the frames that hold at least one keyframe, in
// first-insertion order.
func (k *Keyframes) Frames() []int {
	out := make([]int, len(k.frames))
	copy(out, k.frames)
	return out
}

// At returns the last value recorded for property while the scene was at frame.
func (k *Keyframes) At(frame int, property string) (Value, bool) {
	snap, ok := k.snapshots[frame]
	if !ok {
		return Value{}, false
	}
	v, ok := snap.values[property]
	return v, ok
}

// Count returns the total number of keyframe insertions.
func (k *Keyframes) Count() int {
	n := 0
	for _, track := range k.tracks {
		n += len(track)
	}
	return n
}

// writeTracks emits {"prop": [{"frame": f, "value": v}, ...], ...}.
func (k *Keyframes) writeTracks(stream *jsoniter.Stream) {
	if len(k.properties) == 0 {
		stream.WriteEmptyObject()
		return
	}
	stream.WriteObjectStart()
	for i, property := range k.properties {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(property)
		stream.WriteArrayStart()
		for j, kf := range k.tracks[property] {
			if j > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectStart()
			stream.WriteObjectField("frame")
			stream.WriteInt(kf.Frame)
			stream.WriteMore()
			stream.WriteObjectField("value")
			kf.Value.write(stream)
			stream.WriteObjectEnd()
		}
		stream.WriteArrayEnd()
	}
	stream.WriteObjectEnd()
}

// writeSnapshots emits {"frame": {"prop": v, ...}, ...} with string frame keys.
func (k *Keyframes) writeSnapshots(stream *jsoniter.Stream) {
	if len(k.frames) == 0 {
		stream.WriteEmptyObject()
		return
	}
	stream.WriteObjectStart()
	for i, frame := range k.frames {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(strconv.Itoa(frame))
		snap := k.snapshots[frame]
		stream.WriteObjectStart()
		for j, property := range snap.order {
			if j > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(property)
			snap.values[property].write(stream)
		}
		stream.WriteObjectEnd()
	}
	stream.WriteObjectEnd()
}
