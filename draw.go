package rowan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Canvas is the draw interface the actor/scene pipeline renders through: a
// scoped transform stack plus primitive fill operations. Actor.Draw brackets
// its transform mutations with Save/Restore so sibling draws never leak
// state into each other.
type Canvas interface {
	// Save pushes the current transform; Restore pops it.
	Save()
	Restore()

	// Transform mutations compose onto the current transform in local order:
	// a Translate followed by a Rotate rotates around the translated origin.
	Translate(x, y float64)
	Rotate(radians float64)
	Scale(sx, sy float64)

	FillRect(x, y, w, h float64, col Color)
	StrokeRect(x, y, w, h float64, col Color)

	// FillText renders debug-quality text. Only the translation component of
	// the current transform is honored; use a SpriteFont for transformed or
	// styled text.
	FillText(text string, x, y float64)

	DrawImage(img *ebiten.Image, x, y float64)
}

// whitePixel is a 1x1 white image used for solid color fills.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(ColorWhite.rgba())
}

// ebitenCanvas implements Canvas on top of an ebiten image target.
type ebitenCanvas struct {
	target *ebiten.Image
	cur    ebiten.GeoM
	stack  []ebiten.GeoM
}

// NewCanvas creates a Canvas that renders onto target with an identity
// transform.
func NewCanvas(target *ebiten.Image) Canvas {
	return &ebitenCanvas{target: target}
}

func (c *ebitenCanvas) Save() {
	c.stack = append(c.stack, c.cur)
}

func (c *ebitenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// compose applies a local transform before the current one: cur = cur * g.
func (c *ebitenCanvas) compose(g ebiten.GeoM) {
	g.Concat(c.cur)
	c.cur = g
}

func (c *ebitenCanvas) Translate(x, y float64) {
	var g ebiten.GeoM
	g.Translate(x, y)
	c.compose(g)
}

func (c *ebitenCanvas) Rotate(radians float64) {
	var g ebiten.GeoM
	g.Rotate(radians)
	c.compose(g)
}

func (c *ebitenCanvas) Scale(sx, sy float64) {
	var g ebiten.GeoM
	g.Scale(sx, sy)
	c.compose(g)
}

func (c *ebitenCanvas) FillRect(x, y, w, h float64, col Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.cur)
	op.ColorScale.Scale(float32(col.R), float32(col.G), float32(col.B), float32(col.A))
	c.target.DrawImage(whitePixel, op)
}

func (c *ebitenCanvas) StrokeRect(x, y, w, h float64, col Color) {
	// Four 1px edges; cheap enough for debug outlines.
	c.FillRect(x, y, w, 1, col)
	c.FillRect(x, y+h-1, w, 1, col)
	c.FillRect(x, y, 1, h, col)
	c.FillRect(x+w-1, y, 1, h, col)
}

func (c *ebitenCanvas) FillText(text string, x, y float64) {
	tx, ty := c.cur.Apply(x, y)
	ebitenutil.DebugPrintAt(c.target, text, int(tx), int(ty))
}

func (c *ebitenCanvas) DrawImage(img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(c.cur)
	c.target.DrawImage(img, op)
}
