package rowan

import "testing"

// glyphFont builds a font whose glyphs are all w wide.
func glyphFont(w float64, runes string) *SpriteFont {
	glyphs := make(map[rune]Drawable)
	for _, r := range runes {
		glyphs[r] = &stubDrawable{w: w, h: w}
	}
	return NewSpriteFont(glyphs)
}

func TestLabelDefaults(t *testing.T) {
	l := NewLabel("score", 5, 6, nil)
	if l.Kind != ActorLabel {
		t.Error("Kind should be ActorLabel")
	}
	if !l.Fixed || !l.PreventCollisions {
		t.Error("labels are fixed and outside collision candidacy")
	}
	if l.Width() != 0 {
		t.Error("fontless label has no measured width")
	}
}

func TestLabelMeasuresWithFont(t *testing.T) {
	f := glyphFont(8, "abc ")
	f.LetterSpacing = 2

	l := NewLabel("abc", 0, 0, f)
	if got := l.Width(); got != 30 { // 3 glyphs * (8 + 2)
		t.Errorf("Width = %v, want 30", got)
	}

	l.SetText("a")
	if got := l.Width(); got != 10 {
		t.Errorf("Width after SetText = %v, want 10", got)
	}
}

func TestSpriteFontMeasureMissingGlyphs(t *testing.T) {
	f := glyphFont(8, "a ")
	// 'z' has no glyph: advances by the space glyph's width.
	if got := f.Measure("az"); got != 16 {
		t.Errorf("Measure = %v, want 16", got)
	}
	if f.Glyph('z') != nil {
		t.Error("missing glyph should be nil")
	}
}

func TestSpriteFontDrawAdvancesPen(t *testing.T) {
	f := glyphFont(8, "ab")
	f.LetterSpacing = 1

	var xs []float64
	rec := &penRecorder{xs: &xs}
	f.glyphs['a'] = rec
	f.glyphs['b'] = rec

	f.Draw(&nullCanvas{}, "ab", 10, 0)
	if len(xs) != 2 || xs[0] != 10 || xs[1] != 15 { // 10 + 4 + 1
		t.Errorf("pen positions = %v, want [10 15]", xs)
	}
}

type penRecorder struct {
	xs *[]float64
}

func (p *penRecorder) Draw(_ Canvas, x, _ float64) { *p.xs = append(*p.xs, x) }
func (p *penRecorder) Width() float64              { return 4 }
func (p *penRecorder) Height() float64             { return 4 }

func TestLabelDrawsThroughFont(t *testing.T) {
	f := glyphFont(8, "hi")
	l := NewLabel("hi", 0, 0, f)

	c := &nullCanvas{}
	l.Draw(c, 16)
	if c.texts != 0 {
		t.Error("font-backed label must not fall back to canvas text")
	}

	plain := NewLabel("hi", 0, 0, nil)
	plain.Draw(c, 16)
	if c.texts != 1 {
		t.Errorf("fontless label draws via canvas text, got %d calls", c.texts)
	}
}
