// Package stage provides a retained-mode 2D drawable layer on top of
// github.com/gogpu/gg.
//
// # Overview
//
// stage models a scene as positionable entities: sprites, filled shapes and
// text, each carrying a [Transformable] (origin, position, rotation, scale)
// whose combined affine matrix is computed lazily and cached. Entities are
// drawn onto a [Canvas], an offscreen render target that delegates all
// rasterization, image handling and font shaping to gg.
//
// # Quick Start
//
//	import "github.com/gogpu/stage"
//
//	c, _ := stage.NewCanvas(800, 600)
//	defer c.Close()
//	c.Clear(gg.White)
//
//	box := stage.NewRectangleShape(gg.Pt(120, 80))
//	box.SetFillColor(gg.Red)
//	box.SetOrigin(gg.Pt(60, 40))
//	box.SetPosition(gg.Pt(400, 300))
//	box.SetRotation(30) // degrees, clockwise
//	c.Draw(box)
//
//	c.SavePNG("out.png")
//
// # Coordinate System
//
// stage uses gg's screen coordinates: origin at the top-left, X increasing
// right, Y increasing down. Rotations on [Transformable] and [View] are given
// in degrees and turn clockwise on screen.
//
// # Bounds
//
// Every drawable reports LocalBounds (untransformed) and GlobalBounds. Global
// bounds are always derived by mapping the four corners of the local bounds
// through the entity's own transform and enclosing the result, so they stay
// consistent with what is drawn even when the backend keeps no transform
// state at all.
package stage
