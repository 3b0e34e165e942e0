package pcr

// Object is a scene object wrapping a camera data block. Several objects may
// reference the same data; each keeps its own keyframes.
type Object struct {
	Name          string
	Data          *CameraData
	Location      Value
	Scale         Value
	RotationEuler Value
	HideRender    Value

	Keyframes

	scene *Scene
}

var objectProperties = map[string]func(o *Object) Value{
	"name":           func(o *Object) Value { return String(o.Name) },
	"location":       func(o *Object) Value { return o.Location },
	"scale":          func(o *Object) Value { return o.Scale },
	"rotation_euler": func(o *Object) Value { return o.RotationEuler },
	"hide_render":    func(o *Object) Value { return o.HideRender },
}

var objectSetters = map[string]func(o *Object, v Value){
	"location":       func(o *Object, v Value) { o.Location = v },
	"scale":          func(o *Object, v Value) { o.Scale = v },
	"rotation_euler": func(o *Object, v Value) { o.RotationEuler = v },
	"hide_render":    func(o *Object, v Value) { o.HideRender = v },
}

// NewObject returns an object referencing data. It is not bound to a scene;
// use Objects.New for that.
func NewObject(name string, data *CameraData) *Object {
	return &Object{Name: name, Data: data}
}

// Get returns the current value of property, or null for names the object
// does not have.
func (o *Object) Get(property string) Value {
	if get, ok := objectProperties[property]; ok {
		return get(o)
	}
	return Null()
}

// Set assigns property by name. It reports false when the object has no such
// property or when name is given a non-string value.
func (o *Object) Set(property string, v Value) bool {
	if property == "name" {
		name, ok := v.Text()
		if ok {
			o.Name = name
		}
		return ok
	}
	set, ok := objectSetters[property]
	if ok {
		set(o, v)
	}
	return ok
}

// KeyframeInsert records the current value of property at the scene's
// current frame.
func (o *Object) KeyframeInsert(property string) {
	o.record(currentFrame(o.scene), property, o.Get(property))
}
