package tabs

// Rect is a measured cell rectangle relative to the top-left of the tab list.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Measure records the latest geometry of the tab at index. Layout code calls
// it after every render; the indicator reads it back.
func (c *Controller) Measure(index int, r Rect) {
	if !c.valid(index) {
		return
	}
	c.commit()
	t := c.tabs[index]
	t.rect = r
	t.measured = !r.IsZero()
}

// IndicatorRect returns the last measured rectangle of the selected tab.
func (c *Controller) IndicatorRect() (Rect, bool) {
	if !c.valid(c.selected) {
		return Rect{}, false
	}
	t := c.tabs[c.selected]
	if !t.measured {
		return Rect{}, false
	}
	return t.rect, true
}
