// Package canopy is a retained-mode 2D view hierarchy for frame-driven hosts
// such as [Ebitengine].
//
// canopy owns the view tree, layout (frame + margin), background drawing,
// alpha compositing, pointer-event dispatch and a time-keyed animation
// scheduler. It owns no window: the host supplies timestamps, pointer and
// resize events, and a [Renderer] that produces pixels. Package
// canopy/ebitenview provides all of these for Ebitengine.
//
// # Quick start
//
//	root := canopy.NewView(canopy.Settings{
//		Name:            "root",
//		Frame:           canopy.Rect{X: 20, Y: 20, Width: 600, Height: 440},
//		BackgroundColor: canopy.Color{R: 1, A: 0.5},
//	})
//	stage := canopy.NewStage(root)
//	// once per frame:
//	stage.Update(now)
//	stage.Draw(renderer)
//
// # View tree
//
// Every visual element is a [View]. A view has at most one parent; adding it
// elsewhere detaches it first. Child order is paint order, back to front, so
// hit testing walks children in reverse. Names are unique among siblings
// only: [View.AddNamed] replaces a sibling with the same name.
//
// Children are positioned inside their parent's content box, the frame inset
// by the margin. Effective alpha multiplies down the ancestor chain and is
// computed on read.
//
// # Pointer events
//
// Press and release go to the front-most visible, interactive view containing
// the point. Event-transparent views react but let the event continue to
// the views behind them. Hover reaches every containing view.
//
// # Animations
//
// A [Scheduler] holds label-keyed animations. Scheduling an existing label
// replaces it without firing its completion callback; that is how fades
// restart. [View.FadeTo], [View.TweenPosition] and friends build on it, with
// curves from canopy/easing (gween curves via easing.FromTween).
//
// [Ebitengine]: https://ebitengine.org
package canopy
