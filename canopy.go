package canopy

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default image tint.
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is the default background color.
var ColorTransparent = Color{}

// RGBA8 builds a Color from 0-255 integer components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// Vec2 is a 2D vector used for positions, offsets and sizes.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside. Rectangles with a negative
// width or height contain nothing.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vec2 { return Vec2{r.X, r.Y} }

// ViewKind distinguishes what a View draws for its own content.
type ViewKind uint8

const (
	ViewKindPlain  ViewKind = iota // background and children only
	ViewKindImage                  // draws a Bitmap scaled to the content box
	ViewKindDrawer                 // delegates to a DrawFunc
	ViewKindCustom                 // delegates to a Content implementation
)

// String returns the kind name.
func (k ViewKind) String() string {
	switch k {
	case ViewKindPlain:
		return "plain"
	case ViewKindImage:
		return "image"
	case ViewKindDrawer:
		return "drawer"
	case ViewKindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event.
type EventType uint8

const (
	EventPointerDown  EventType = iota // pointer button pressed over a view
	EventPointerUp                     // pointer button released
	EventPointerOver                   // pointer moved over a view
	EventWindowResize                  // window size changed
)
