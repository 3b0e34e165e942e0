package pcr

// registry maps names to entries and remembers registration order. Storing
// under an existing name replaces the entry in place.
type registry[T any] struct {
	names []string
	items map[string]T
}

func (r *registry[T]) put(name string, item T) {
	if r.items == nil {
		r.items = make(map[string]T)
	}
	if _, ok := r.items[name]; !ok {
		r.names = append(r.names, name)
	}
	r.items[name] = item
}

func (r *registry[T]) get(name string) (T, bool) {
	item, ok := r.items[name]
	return item, ok
}

func (r *registry[T]) list() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Cameras is the registry of camera data blocks.
type Cameras struct {
	reg   registry[*CameraData]
	scene *Scene
}

// New creates camera data bound to the model's scene and registers it under
// name, replacing any previous entry.
func (c *Cameras) New(name string) *CameraData {
	cam := NewCameraData(name)
	cam.scene = c.scene
	c.reg.put(name, cam)
	return cam
}

// Get returns the camera data registered as name.
func (c *Cameras) Get(name string) (*CameraData, bool) { return c.reg.get(name) }

// Names lists registered camera names in registration order.
func (c *Cameras) Names() []string { return c.reg.list() }

// Len returns the number of registered cameras.
func (c *Cameras) Len() int { return len(c.reg.names) }

// Objects is the registry of scene objects.
type Objects struct {
	reg   registry[*Object]
	scene *Scene
}

// New creates an object referencing data, bound to the model's scene, and
// registers it under name, replacing any previous entry.
func (o *Objects) New(name string, data *CameraData) *Object {
	obj := NewObject(name, data)
	obj.scene = o.scene
	o.reg.put(name, obj)
	return obj
}

// Get returns the object registered as name.
func (o *Objects) Get(name string) (*Object, bool) { return o.reg.get(name) }

// Names lists registered object names in registration order.
func (o *Objects) Names() []string { return o.reg.list() }

// Len returns the number of registered objects.
func (o *Objects) Len() int { return len(o.reg.names) }
