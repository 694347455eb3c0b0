package rowan

// NewLabel creates a text-drawing actor. Labels are always fixed and opted
// out of collision candidacy; everything else about Actor (action queue,
// events, child actors) behaves unchanged, so a label still runs its own
// broad-phase scan even though it can neither be displaced nor displace.
//
// font may be nil, in which case the label renders with the canvas's
// debug-quality text primitive.
func NewLabel(text string, x, y float64, font *SpriteFont) *Actor {
	a := &Actor{
		ID:   nextActorID(),
		Kind: ActorLabel,
		X:    x,
		Y:    y,
		Text: text,
		Font: font,
	}
	actorDefaults(a)
	a.Fixed = true
	a.PreventCollisions = true
	if font != nil {
		a.width = font.Measure(text)
	}
	return a
}

// drawText renders the label's text inside the already-applied transform,
// through the sprite font when one is set.
func (a *Actor) drawText(c Canvas) {
	if a.Font != nil {
		a.Font.Draw(c, a.Text, 0, 0)
		return
	}
	c.FillText(a.Text, 0, 0)
}

// SetText replaces the label's text, refreshing the measured width when a
// sprite font is set.
func (a *Actor) SetText(text string) {
	a.Text = text
	if a.Font != nil {
		a.width = a.Font.Measure(text)
	}
}
