// Package scene is a small entity layer on top of the pga engine.
//
// A World holds entities. Each entity has a local Transform (a pga.Motor),
// an optional parent, and optional components: a Camera, a Quad or Circle
// shape and a Material. Propagate computes every entity's GlobalTransform
// parent-first as
//
//	global = parentGlobal · local
//
// and is meant to run once per frame, after input has been applied with
// PanCamera and ZoomCamera and before Drawables is read for rendering.
//
// A World is not safe for concurrent use.
package scene
