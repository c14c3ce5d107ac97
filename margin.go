package canopy

// Margin is the inset between a view's frame and its content box.
// Negative values expand the content box beyond the frame.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// NewMargin returns a margin with explicit top, right, bottom and left insets.
func NewMargin(top, right, bottom, left float64) Margin {
	return Margin{Top: top, Right: right, Bottom: bottom, Left: left}
}

// UniformMargin returns a margin with the same inset on every side.
func UniformMargin(m float64) Margin {
	return Margin{m, m, m, m}
}

// SymmetricMargin returns a margin with vertical insets v and horizontal
// insets h.
func SymmetricMargin(v, h float64) Margin {
	return Margin{v, h, v, h}
}

// Margin3 returns a margin with distinct top and bottom and shared
// horizontal insets.
func Margin3(top, h, bottom float64) Margin {
	return Margin{top, h, bottom, h}
}

// MarginOf follows CSS margin shorthand: one value sets every side, two set
// vertical/horizontal, three set top/horizontal/bottom and four are explicit.
// No values yields the zero margin; values past the fourth are ignored.
func MarginOf(values ...float64) Margin {
	switch len(values) {
	case 0:
		return Margin{}
	case 1:
		return UniformMargin(values[0])
	case 2:
		return SymmetricMargin(values[0], values[1])
	case 3:
		return Margin3(values[0], values[1], values[2])
	default:
		return NewMargin(values[0], values[1], values[2], values[3])
	}
}

// Horizontal returns Left + Right.
func (m Margin) Horizontal() float64 { return m.Left + m.Right }

// Vertical returns Top + Bottom.
func (m Margin) Vertical() float64 { return m.Top + m.Bottom }

// Offset returns the content origin relative to the frame origin.
func (m Margin) Offset() Vec2 { return Vec2{m.Left, m.Top} }
