// Package pcr is an in-memory stand-in for the part of a 3D application's
// scripting API that camera animation exporters use: camera data, objects,
// a scene with a current frame, keyframe insertion and a JSON dump of one
// camera's animation.
//
// A model is built with New and driven the way an add-on drives the host:
//
//	bpy := pcr.New()
//	cam := bpy.Data.Cameras.New("Camera")
//	obj := bpy.Data.Objects.New("Camera", cam)
//	bpy.Context.Collection.Objects.Link(obj)
//	bpy.Context.Scene.FrameSet(1)
//	cam.Lens = pcr.Number(50)
//	cam.KeyframeInsert("lens")
//	err := bpy.Dump("Camera", "camera.json")
//
// A model is not safe for concurrent mutation.
package pcr

// Data holds the model's registries.
type Data struct {
	Cameras *Cameras
	Objects *Objects
}

// PCR is the root of a scene model.
type PCR struct {
	Context *Context
	Data    *Data
}

// New returns an empty model whose scene starts at DefaultFrame.
func New() *PCR {
	scene := NewScene()
	return &PCR{
		Context: &Context{
			Scene:      scene,
			Collection: &Collection{},
		},
		Data: &Data{
			Cameras: &Cameras{scene: scene},
			Objects: &Objects{scene: scene},
		},
	}
}
