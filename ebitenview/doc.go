// Package ebitenview runs a canopy.Stage on Ebitengine.
//
// [Renderer] implements canopy.Renderer on an *ebiten.Image, [LoadImage]
// decodes image files into canopy bitmaps, and [Game] turns mouse, touch and
// window-size changes into stage calls. [Run] wires all of it together from
// a [RunConfig], which can be loaded from TOML with [LoadRunConfig].
package ebitenview
