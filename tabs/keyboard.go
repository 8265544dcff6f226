package tabs

// Key names the keys the tab list reacts to. Values follow DOM key names so
// adapters for other input sources can map onto them directly.
type Key string

const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyEnter      Key = "Enter"
	KeySpace      Key = "Space"
)

// HandleKey applies roving-tabindex navigation starting from current and
// reports whether the key was consumed. An invalid current falls back to the
// roving index.
func (c *Controller) HandleKey(key Key, current int) bool {
	if len(c.tabs) == 0 {
		return false
	}
	c.commit()
	if !c.valid(current) {
		current = c.RovingIndex()
	}
	next, prev := KeyArrowRight, KeyArrowLeft
	if c.orientation == Vertical {
		next, prev = KeyArrowDown, KeyArrowUp
	}

	target := -1
	switch key {
	case next:
		target = c.step(current, 1)
	case prev:
		target = c.step(current, -1)
	case KeyHome:
		target = c.step(len(c.tabs)-1, 1)
	case KeyEnd:
		target = c.step(0, -1)
	case KeyEnter, KeySpace:
		return c.Select(current)
	default:
		return false
	}
	if target < 0 {
		return false
	}
	return c.Focus(target)
}

// step walks from index in direction dir, wrapping, and returns the first
// enabled tab. The walk covers the whole list once, so index itself is the
// last candidate. It returns -1 when every tab is disabled.
func (c *Controller) step(index, dir int) int {
	n := len(c.tabs)
	for i := 1; i <= n; i++ {
		j := ((index+dir*i)%n + n) % n
		if !c.tabs[j].Disabled {
			return j
		}
	}
	return -1
}
