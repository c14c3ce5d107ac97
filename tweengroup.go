package canopy

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values of a View simultaneously with gween
// tweens. Step it yourself with Update(dt), or hand it to a Scheduler with
// Schedule. If the target view is disposed, the group stops immediately.
type TweenGroup struct {
	tweens   [4]*gween.Tween
	count    int
	apply    func(vals [4]float64)
	target   *View
	duration float32
	Done     bool
}

// Update advances all tweens by dt seconds and writes the values to the
// view. Does nothing once Done.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDisposed() {
		g.Done = true
		return
	}

	var vals [4]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
}

// Schedule drives the group from s under label (empty for a generated one)
// and returns the label. Progress is turned into time deltas, so the
// group's gween curve shapes the motion.
func (g *TweenGroup) Schedule(s *Scheduler, label string, done func(label string)) string {
	var last float64
	a := Animation{
		Label:    label,
		Duration: float64(g.duration),
		Progress: func(p float64) {
			if p >= 1 {
				// Finish exactly regardless of accumulated rounding.
				g.Update(g.duration)
				return
			}
			g.Update(float32((p - last) * float64(g.duration)))
			last = p
		},
		Done: done,
	}
	if g.target == nil {
		return s.Schedule(a)
	}
	return g.target.animate(s, a)
}

func newTweenGroup(v *View, duration float32, fn ease.TweenFunc, from, to []float64, apply func([4]float64)) *TweenGroup {
	if fn == nil {
		fn = ease.Linear
	}
	g := &TweenGroup{count: len(from), target: v, apply: apply, duration: duration}
	for i := range from {
		g.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	return g
}

// NewPositionTween creates a TweenGroup moving v's live position to (toX, toY).
func NewPositionTween(v *View, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(v, duration, fn,
		[]float64{v.position.X, v.position.Y}, []float64{toX, toY},
		func(vals [4]float64) { v.position = Vec2{vals[0], vals[1]} })
}

// NewSizeTween creates a TweenGroup resizing v's declared frame to (w, h).
func NewSizeTween(v *View, w, h float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(v, duration, fn,
		[]float64{v.frame.Width, v.frame.Height}, []float64{w, h},
		func(vals [4]float64) { v.SetSize(vals[0], vals[1]) })
}

// NewColorTween creates a TweenGroup animating all four components of v's
// background color.
func NewColorTween(v *View, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	c := v.background
	return newTweenGroup(v, duration, fn,
		[]float64{c.R, c.G, c.B, c.A}, []float64{to.R, to.G, to.B, to.A},
		func(vals [4]float64) { v.background = Color{vals[0], vals[1], vals[2], vals[3]} })
}

// NewAlphaTween creates a TweenGroup animating v's own alpha.
func NewAlphaTween(v *View, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(v, duration, fn,
		[]float64{v.alpha}, []float64{to},
		func(vals [4]float64) { v.alpha = vals[0] })
}
