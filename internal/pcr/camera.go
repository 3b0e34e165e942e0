package pcr

// DOF holds the depth of field settings of a camera.
type DOF struct {
	FocusDistance Value
}

// CameraData is the camera data block referenced by a camera object.
type CameraData struct {
	Name        string
	Lens        Value
	ShiftX      Value
	ShiftY      Value
	DOF         DOF
	ClipStart   Value
	ClipEnd     Value
	DisplaySize Value

	Keyframes

	scene *Scene
}

var cameraProperties = map[string]func(c *CameraData) Value{
	"name":               func(c *CameraData) Value { return String(c.Name) },
	"lens":               func(c *CameraData) Value { return c.Lens },
	"shift_x":            func(c *CameraData) Value { return c.ShiftX },
	"shift_y":            func(c *CameraData) Value { return c.ShiftY },
	"dof.focus_distance": func(c *CameraData) Value { return c.DOF.FocusDistance },
	"clip_start":         func(c *CameraData) Value { return c.ClipStart },
	"clip_end":           func(c *CameraData) Value { return c.ClipEnd },
	"display_size":       func(c *CameraData) Value { return c.DisplaySize },
}

var cameraSetters = map[string]func(c *CameraData, v Value){
	"lens":               func(c *CameraData, v Value) { c.Lens = v },
	"shift_x":            func(c *CameraData, v Value) { c.ShiftX = v },
	"shift_y":            func(c *CameraData, v Value) { c.ShiftY = v },
	"dof.focus_distance": func(c *CameraData, v Value) { c.DOF.FocusDistance = v },
	"clip_start":         func(c *CameraData, v Value) { c.ClipStart = v },
	"clip_end":           func(c *CameraData, v Value) { c.ClipEnd = v },
	"display_size":       func(c *CameraData, v Value) { c.DisplaySize = v },
}

// NewCameraData returns camera data with every attribute unset. It is not
// bound to a scene; use Cameras.New for that.
func NewCameraData(name string) *CameraData {
	return &CameraData{Name: name}
}

// Get returns the current value of property, or null for names the camera
// data does not have.
func (c *CameraData) Get(property string) Value {
	if get, ok := cameraProperties[property]; ok {
		return get(c)
	}
	return Null()
}

// Set assigns property by name. It reports false when the camera data has no
// such property or when name is given a non-string value.
func (c *CameraData) Set(property string, v Value) bool {
	if property == "name" {
		name, ok := v.Text()
		if ok {
			c.Name = name
		}
		return ok
	}
	set, ok := cameraSetters[property]
	if ok {
		set(c, v)
	}
	return ok
}

// KeyframeInsert records the current value of property at the scene's
// current frame.
func (c *CameraData) KeyframeInsert(property string) {
	c.record(currentFrame(c.scene), property, c.Get(property))
}
