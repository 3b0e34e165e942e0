package pcr

// DefaultFrame is the frame a new scene starts on.
const DefaultFrame = 1

// Scene tracks the current frame keyframes are recorded at.
type Scene struct {
	// FrameCurrent is the frame the scene was created on. FrameSet does
	// not change it.
	FrameCurrent int

	currentFrame int
}

// NewScene returns a scene at DefaultFrame.
func NewScene() *Scene {
	return &Scene{FrameCurrent: DefaultFrame, currentFrame: DefaultFrame}
}

// FrameSet moves the scene to frame. Any integer is accepted.
func (s *Scene) FrameSet(frame int) {
	s.currentFrame = frame
}

// CurrentFrame returns the frame set by the last FrameSet.
func (s *Scene) CurrentFrame() int {
	return s.currentFrame
}

func currentFrame(s *Scene) int {
	if s == nil {
		return DefaultFrame
	}
	return s.currentFrame
}

// CollectionObjects is the list of objects linked into a collection.
type CollectionObjects struct {
	objects []*Object
}

// Link appends obj. Linking the same object twice keeps both entries.
func (c *CollectionObjects) Link(obj *Object) {
	c.objects = append(c.objects, obj)
}

// All returns the linked objects in link order.
func (c *CollectionObjects) All() []*Object {
	out := make([]*Object, len(c.objects))
	copy(out, c.objects)
	return out
}

// Len returns the number of linked objects.
func (c *CollectionObjects) Len() int {
	return len(c.objects)
}

// Collection groups the objects linked into the scene.
type Collection struct {
	Objects CollectionObjects
}

// Context exposes the active scene and collection.
type Context struct {
	Scene      *Scene
	Collection *Collection
}
