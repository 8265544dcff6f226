package tabs

// PanelVisible reports whether the panel at index is rendered. Outside lazy
// keep-mounted mode only the selected panel is; with it, every panel that was
// ever selected stays rendered (hidden unless selected).
func (c *Controller) PanelVisible(index int) bool {
	if !c.valid(index) {
		return false
	}
	if c.lazy && c.lazyBehavior == LazyKeepMounted {
		return c.visited[c.tabs[index].Key]
	}
	return index == c.selected
}

// PanelMounted reports whether the panel's content should exist at all.
// Eager tab sets mount every panel up front.
func (c *Controller) PanelMounted(index int) bool {
	if !c.valid(index) {
		return false
	}
	if !c.lazy {
		return true
	}
	return c.PanelVisible(index)
}
