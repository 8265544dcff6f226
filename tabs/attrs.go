package tabs

const (
	RoleTab      = "tab"
	RoleTabList  = "tablist"
	RoleTabPanel = "tabpanel"
)

// TabAttrs mirrors the accessibility attributes of a tab button.
type TabAttrs struct {
	ID       string
	Role     string
	Selected bool
	Disabled bool
	TabIndex int
	Controls string
}

type PanelAttrs struct {
	ID         string
	Role       string
	LabelledBy string
	Hidden     bool
	TabIndex   int
}

type ListAttrs struct {
	Role        string
	Orientation string
}

// TabAttrs returns the attributes of the tab at index. Only the roving tab has
// TabIndex 0.
func (c *Controller) TabAttrs(index int) TabAttrs {
	if !c.valid(index) {
		return TabAttrs{Role: RoleTab, TabIndex: -1}
	}
	t := c.tabs[index]
	tabIndex := -1
	if index == c.RovingIndex() {
		tabIndex = 0
	}
	return TabAttrs{
		ID:       t.ID,
		Role:     RoleTab,
		Selected: index == c.selected,
		Disabled: t.Disabled,
		TabIndex: tabIndex,
		Controls: t.PanelID,
	}
}

func (c *Controller) PanelAttrs(index int) PanelAttrs {
	if !c.valid(index) {
		return PanelAttrs{Role: RoleTabPanel, Hidden: true}
	}
	t := c.tabs[index]
	return PanelAttrs{
		ID:         t.PanelID,
		Role:       RoleTabPanel,
		LabelledBy: t.ID,
		Hidden:     index != c.selected,
		TabIndex:   0,
	}
}

func (c *Controller) ListAttrs() ListAttrs {
	return ListAttrs{Role: RoleTabList, Orientation: c.orientation.String()}
}
