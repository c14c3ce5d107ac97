package canopy

import (
	"strconv"

	"github.com/phanxgames/canopy/easing"
)

// Suffixes of the labels used by the view animation helpers. Labels are keyed
// by view ID, not name, so same-named views in different subtrees never share
// an entry and renaming a view keeps its running animations replaceable.
// Scheduling a helper twice on the same view restarts it.
const (
	fadeLabelSuffix       = "::fade_animation"
	positionLabelSuffix   = "::position_animation"
	sizeLabelSuffix       = "::size_animation"
	backgroundLabelSuffix = "::background_animation"
)

// FadeTo animates the view's own alpha from its current value to alpha over
// duration seconds. A running fade on the same view is replaced. done, if
// non-nil, receives the animation label on completion.
func (v *View) FadeTo(s *Scheduler, alpha, duration float64, done func(label string)) string {
	from := v.alpha
	return v.animate(s, Animation{
		Label:    v.animationLabel(fadeLabelSuffix),
		Duration: duration,
		Progress: func(p float64) {
			v.alpha = easing.Lerp(from, alpha, p)
		},
		Done: done,
	})
}

// FadeIn shows the view and fades it to full opacity.
func (v *View) FadeIn(s *Scheduler, duration float64, done func(label string)) string {
	v.Show()
	return v.FadeTo(s, 1, duration, done)
}

// FadeOut fades the view to zero opacity, then calls done and hides it.
func (v *View) FadeOut(s *Scheduler, duration float64, done func(label string)) string {
	return v.FadeTo(s, 0, duration, func(label string) {
		if done != nil {
			done(label)
		}
		v.Hide()
	})
}

// TweenPosition animates the live position to (x, y). fn shapes progress;
// nil is linear.
func (v *View) TweenPosition(s *Scheduler, x, y, duration float64, fn easing.Func, done func(label string)) string {
	from := v.position
	fn = easing.OrLinear(fn)
	return v.animate(s, Animation{
		Label:    v.animationLabel(positionLabelSuffix),
		Duration: duration,
		Progress: func(p float64) {
			e := fn(p)
			v.position = Vec2{easing.Lerp(from.X, x, e), easing.Lerp(from.Y, y, e)}
		},
		Done: done,
	})
}

// TweenSize animates the declared frame size to (w, h).
func (v *View) TweenSize(s *Scheduler, w, h, duration float64, fn easing.Func, done func(label string)) string {
	fromW, fromH := v.frame.Width, v.frame.Height
	fn = easing.OrLinear(fn)
	return v.animate(s, Animation{
		Label:    v.animationLabel(sizeLabelSuffix),
		Duration: duration,
		Progress: func(p float64) {
			e := fn(p)
			v.SetSize(easing.Lerp(fromW, w, e), easing.Lerp(fromH, h, e))
		},
		Done: done,
	})
}

// TweenBackground animates all four background color components to c.
func (v *View) TweenBackground(s *Scheduler, c Color, duration float64, fn easing.Func, done func(label string)) string {
	from := v.background
	fn = easing.OrLinear(fn)
	return v.animate(s, Animation{
		Label:    v.animationLabel(backgroundLabelSuffix),
		Duration: duration,
		Progress: func(p float64) {
			e := fn(p)
			v.background = Color{
				easing.Lerp(from.R, c.R, e),
				easing.Lerp(from.G, c.G, e),
				easing.Lerp(from.B, c.B, e),
				easing.Lerp(from.A, c.A, e),
			}
		},
		Done: done,
	})
}

// StopAnimations cancels every animation scheduled through the view's
// helpers. No completion callbacks fire.
func (v *View) StopAnimations() {
	v.cancelAnimations()
}

// animationLabel returns the scheduler label for one of the view's helpers.
func (v *View) animationLabel(suffix string) string {
	return "view#" + strconv.FormatUint(v.ID, 10) + suffix
}

// animate schedules a on s and records the label on the view so Dispose
// can cancel it. Disposed views schedule nothing.
func (v *View) animate(s *Scheduler, a Animation) string {
	if v.disposed {
		if globalDebug {
			debugCheckDisposed(v, "animate")
		}
		return ""
	}
	done := a.Done
	a.Done = func(label string) {
		if v.animations[label].scheduler == s {
			delete(v.animations, label)
		}
		if done != nil {
			done(label)
		}
	}
	label := s.Schedule(a)
	if v.animations == nil {
		v.animations = make(map[string]viewAnimation)
	}
	v.animations[label] = viewAnimation{scheduler: s, seq: s.seqOf(label)}
	return label
}

// viewAnimation remembers which scheduler entry a helper created, so a label
// later rescheduled by someone else is not mistaken for the view's own.
type viewAnimation struct {
	scheduler *Scheduler
	seq       uint64
}

// cancelAnimations cancels only entries this view still owns.
func (v *View) cancelAnimations() {
	for label, a := range v.animations {
		if seq := a.scheduler.seqOf(label); seq != 0 && seq == a.seq {
			a.scheduler.Cancel(label)
		}
	}
	clear(v.animations)
}
