package canopy

import "fmt"

// Bitmap is a decoded image owned by the host's render backend.
type Bitmap interface {
	// Size returns the native pixel dimensions.
	Size() (width, height int)
}

// ImageLoader decodes the image at path into a Bitmap.
type ImageLoader func(path string) (Bitmap, error)

// DrawFunc renders a Drawer view's content. It runs inside the view's
// translated render state, with (0, 0) at the content origin.
type DrawFunc func(ctx DrawContext)

// Content is implemented by custom view kinds.
type Content interface {
	DrawContent(ctx DrawContext)
}

// Resizer is optionally implemented by Content to react to window resizes
// before the view's OnWindowResized callback.
type Resizer interface {
	Resize(e ResizeEvent)
}

// --- Image ---

// NewImageView creates an image view showing bitmap, which may be nil.
func NewImageView(s Settings, bitmap Bitmap) *View {
	v := NewView(s)
	v.Kind = ViewKindImage
	v.bitmap = bitmap
	return v
}

// LoadImageView creates an image view and loads path with loader. The view
// is returned even when loading fails; it then draws no image content.
func LoadImageView(s Settings, loader ImageLoader, path string) (*View, bool) {
	v := NewImageView(s, nil)
	ok := v.LoadImage(loader, path)
	return v, ok
}

// LoadImage loads path with loader and reports success. On failure the
// bitmap is cleared, so the view draws no image until a later load
// succeeds, and the error is logged.
func (v *View) LoadImage(loader ImageLoader, path string) bool {
	v.imagePath = path
	v.bitmap = nil
	if loader == nil {
		logger.Warn("no image loader", "view", v.name, "path", path)
		return false
	}
	bmp, err := loader(path)
	if err != nil {
		logger.Warn("image load failed", "view", v.name, "err", fmt.Errorf("load %s: %w", path, err))
		return false
	}
	if bmp == nil {
		logger.Warn("image loader returned no bitmap", "view", v.name, "path", path)
		return false
	}
	v.bitmap = bmp
	return true
}

// SetImage replaces the view's bitmap. nil clears it.
func (v *View) SetImage(bitmap Bitmap) {
	v.bitmap = bitmap
}

// Image returns the view's bitmap, or nil.
func (v *View) Image() Bitmap {
	return v.bitmap
}

// ImagePath returns the path of the last LoadImage call.
func (v *View) ImagePath() string {
	return v.imagePath
}

// FitToImage sets the declared size to the bitmap's native pixel size.
// No-op without a bitmap.
func (v *View) FitToImage() {
	if v.bitmap == nil {
		return
	}
	w, h := v.bitmap.Size()
	v.SetSize(float64(w), float64(h))
}

// --- Drawer ---

// NewDrawerView creates a view whose content is drawn by fn.
func NewDrawerView(s Settings, fn DrawFunc) *View {
	v := NewView(s)
	v.Kind = ViewKindDrawer
	v.drawFn = fn
	return v
}

// OnDraw replaces a Drawer view's draw function.
func (v *View) OnDraw(fn DrawFunc) {
	v.drawFn = fn
}

// --- Custom ---

// NewCustomView creates a view whose content is drawn by c.
func NewCustomView(s Settings, c Content) *View {
	v := NewView(s)
	v.Kind = ViewKindCustom
	v.content = c
	return v
}

// Content returns a custom view's content, or nil.
func (v *View) Content() Content {
	return v.content
}
