package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Drawable is anything an actor can display: a sprite frame, an animation
// cell, a glyph. Draw renders at (x, y) in the canvas's current transform.
type Drawable interface {
	Draw(c Canvas, x, y float64)
	Width() float64
	Height() float64
}

// Image is a Drawable backed by an ebiten image.
type Image struct {
	img *ebiten.Image
}

// NewImage wraps an ebiten image as a Drawable. Panics if img is nil.
func NewImage(img *ebiten.Image) *Image {
	if img == nil {
		panic("rowan: cannot wrap nil image")
	}
	return &Image{img: img}
}

// Draw blits the image at (x, y).
func (i *Image) Draw(c Canvas, x, y float64) {
	c.DrawImage(i.img, x, y)
}

// Width returns the image width in pixels.
func (i *Image) Width() float64 {
	return float64(i.img.Bounds().Dx())
}

// Height returns the image height in pixels.
func (i *Image) Height() float64 {
	return float64(i.img.Bounds().Dy())
}

// SpriteFont maps runes to drawable glyphs for label rendering. Runes with
// no glyph advance by the width of a space glyph if present, else by
// LetterSpacing alone.
type SpriteFont struct {
	glyphs map[rune]Drawable

	// LetterSpacing is extra horizontal space between glyphs, in pixels.
	LetterSpacing float64
}

// NewSpriteFont creates a sprite font from a rune-to-glyph mapping.
func NewSpriteFont(glyphs map[rune]Drawable) *SpriteFont {
	return &SpriteFont{glyphs: glyphs}
}

// Glyph returns the drawable for r, or nil if the font has none.
func (f *SpriteFont) Glyph(r rune) Drawable {
	return f.glyphs[r]
}

// Draw renders text starting at (x, y), advancing by each glyph's width
// plus LetterSpacing.
func (f *SpriteFont) Draw(c Canvas, text string, x, y float64) {
	pen := x
	for _, r := range text {
		g := f.glyphs[r]
		if g == nil {
			if sp := f.glyphs[' ']; sp != nil {
				pen += sp.Width() + f.LetterSpacing
			} else {
				pen += f.LetterSpacing
			}
			continue
		}
		g.Draw(c, pen, y)
		pen += g.Width() + f.LetterSpacing
	}
}

// Measure returns the width the text would occupy when drawn.
func (f *SpriteFont) Measure(text string) float64 {
	var w float64
	for _, r := range text {
		g := f.glyphs[r]
		if g == nil {
			if sp := f.glyphs[' ']; sp != nil {
				w += sp.Width() + f.LetterSpacing
			} else {
				w += f.LetterSpacing
			}
			continue
		}
		w += g.Width() + f.LetterSpacing
	}
	return w
}
