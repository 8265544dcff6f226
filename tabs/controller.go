package tabs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// LazyBehavior decides what happens to a lazy panel once it is deselected.
type LazyBehavior int

const (
	LazyUnmount LazyBehavior = iota
	LazyKeepMounted
)

func (b LazyBehavior) String() string {
	if b == LazyKeepMounted {
		return "keepMounted"
	}
	return "unmount"
}

type State int

const (
	Uninitialized State = iota
	Ready
)

func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "uninitialized"
}

// Focuser moves keyboard focus to the element with the given id.
type Focuser interface {
	Focus(id string)
}

// Config is passed once to New. Index, when non-nil, makes the selection
// externally owned: Select reports through OnChange and the owner answers
// with SetIndex.
type Config struct {
	// Name identifies the tab set. Named sets get the same id on every run;
	// an empty name gets a random id.
	Name         string
	DefaultIndex int
	Index        *int
	OnChange     func(index int)
	Orientation  Orientation
	Manual       bool
	Lazy         bool
	LazyBehavior LazyBehavior
	Focuser      Focuser
	Logger       *slog.Logger
}

type TabOptions struct {
	Label    string
	Disabled bool
}

// Registration is one tab/panel pair as seen by the controller.
type Registration struct {
	Key      string
	Label    string
	ID       string
	PanelID  string
	Disabled bool

	rect     Rect
	measured bool
}

// Controller is the single source of truth for a tab set. Views read from it
// and dispatch to it; nothing else mutates selection.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	id           string
	onChange     func(int)
	orientation  Orientation
	manual       bool
	lazy         bool
	lazyBehavior LazyBehavior
	focuser      Focuser
	log          *slog.Logger

	tabs     []*Registration
	selected int
	focused  int

	defaultIndex   int
	pendingDefault bool
	controlled     bool
	index          int

	visited map[string]bool
}

// SetID derives the tab set id for name.
func SetID(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.NewString()
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("tabs:"+name)).String()
}

func New(cfg Config) *Controller {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	c := &Controller{
		id:             SetID(cfg.Name),
		onChange:       cfg.OnChange,
		orientation:    cfg.Orientation,
		manual:         cfg.Manual,
		lazy:           cfg.Lazy,
		lazyBehavior:   cfg.LazyBehavior,
		focuser:        cfg.Focuser,
		selected:       -1,
		focused:        -1,
		defaultIndex:   cfg.DefaultIndex,
		pendingDefault: cfg.Index == nil,
		visited:        map[string]bool{},
	}
	if cfg.Index != nil {
		c.controlled = true
		c.index = *cfg.Index
	}
	c.log = logger.With("tabset", c.id)
	return c
}

func (c *Controller) ID() string                 { return c.id }
func (c *Controller) Orientation() Orientation   { return c.orientation }
func (c *Controller) Manual() bool               { return c.manual }
func (c *Controller) Lazy() bool                 { return c.lazy }
func (c *Controller) LazyBehavior() LazyBehavior { return c.lazyBehavior }
func (c *Controller) Controlled() bool           { return c.controlled }
func (c *Controller) Len() int                   { return len(c.tabs) }
func (c *Controller) SelectedIndex() int         { return c.selected }
func (c *Controller) FocusedIndex() int          { return c.focused }

func (c *Controller) State() State {
	if len(c.tabs) == 0 {
		return Uninitialized
	}
	return Ready
}

func (c *Controller) SelectedKey() string {
	if !c.valid(c.selected) {
		return ""
	}
	return c.tabs[c.selected].Key
}

func (c *Controller) IsSelected(index int) bool {
	return c.valid(index) && index == c.selected
}

// Tab returns a copy of the registration at index.
func (c *Controller) Tab(index int) (Registration, bool) {
	if !c.valid(index) {
		return Registration{}, false
	}
	return *c.tabs[index], true
}

func (c *Controller) Tabs() []Registration {
	out := make([]Registration, len(c.tabs))
	for i, t := range c.tabs {
		out[i] = *t
	}
	return out
}

func (c *Controller) IndexOf(key string) int {
	for i, t := range c.tabs {
		if t.Key == key {
			return i
		}
	}
	return -1
}

// Register appends the tab identified by key, or updates it in place when the
// key is already known. It returns the tab's index.
func (c *Controller) Register(key string, opts TabOptions) int {
	if key == "" {
		key = fmt.Sprintf("tab-%d", len(c.tabs))
	}
	prevKey := c.SelectedKey()
	if idx := c.IndexOf(key); idx >= 0 {
		t := c.tabs[idx]
		t.Label = opts.Label
		t.Disabled = opts.Disabled
		if opts.Disabled && idx == c.focused {
			c.focused = -1
		}
		c.revalidate(prevKey)
		return idx
	}
	c.tabs = append(c.tabs, &Registration{Key: key, Label: opts.Label, Disabled: opts.Disabled})
	c.reindex()
	c.revalidate(prevKey)
	return len(c.tabs) - 1
}

// Unregister removes the tab identified by key. Unknown keys are ignored.
func (c *Controller) Unregister(key string) {
	idx := c.IndexOf(key)
	if idx < 0 {
		c.log.Debug("unregister ignored", "key", key, "reason", "unknown key")
		return
	}
	c.commit()
	prevKey := c.SelectedKey()
	focusedKey := ""
	if c.valid(c.focused) {
		focusedKey = c.tabs[c.focused].Key
	}
	c.tabs = append(c.tabs[:idx], c.tabs[idx+1:]...)
	delete(c.visited, key)
	c.reindex()
	c.focused = c.IndexOf(focusedKey)
	c.revalidate(prevKey)
}

// SetDisabled toggles the disabled flag of the tab at index.
func (c *Controller) SetDisabled(index int, disabled bool) {
	if !c.valid(index) {
		return
	}
	c.commit()
	prevKey := c.SelectedKey()
	c.tabs[index].Disabled = disabled
	if disabled && index == c.focused {
		c.focused = -1
	}
	c.revalidate(prevKey)
}

// Select makes index the selected tab. Out of range and disabled indices are
// ignored. In controlled mode the request is only reported through OnChange.
func (c *Controller) Select(index int) bool {
	if reason := c.reject(index); reason != "" {
		c.log.Debug("select ignored", "index", index, "reason", reason)
		return false
	}
	c.commit()
	if c.controlled {
		if index != c.selected {
			c.notify(index)
		}
		return true
	}
	if index == c.selected {
		return true
	}
	c.setSelected(index)
	c.notify(index)
	return true
}

// SetIndex is the owner's answer in controlled mode. It always wins over any
// earlier Select or DefaultIndex.
func (c *Controller) SetIndex(index int) {
	c.controlled = true
	c.commit()
	c.index = index
	if len(c.tabs) == 0 {
		return
	}
	c.setSelected(c.resolve(index))
}

// Focus moves keyboard focus to index. In automatic mode the tab is selected
// as well.
func (c *Controller) Focus(index int) bool {
	if reason := c.reject(index); reason != "" {
		c.log.Debug("focus ignored", "index", index, "reason", reason)
		return false
	}
	c.commit()
	c.focused = index
	if c.focuser != nil {
		c.focuser.Focus(c.tabs[index].ID)
	}
	if !c.manual {
		c.Select(index)
	}
	return true
}

// Blur records that focus left the tab list.
func (c *Controller) Blur() {
	c.focused = -1
}

// RovingIndex is the tab that owns tabIndex 0.
func (c *Controller) RovingIndex() int {
	if c.valid(c.focused) {
		return c.focused
	}
	return c.selected
}

func (c *Controller) valid(index int) bool {
	return index >= 0 && index < len(c.tabs)
}

func (c *Controller) reject(index int) string {
	switch {
	case !c.valid(index):
		return "out of range"
	case c.tabs[index].Disabled:
		return "disabled"
	}
	return ""
}

func (c *Controller) setSelected(index int) {
	c.selected = index
	if !c.valid(index) {
		return
	}
	if c.pendingDefault {
		c.visited = map[string]bool{}
	}
	c.visited[c.tabs[index].Key] = true
}

// commit ends the initial registration phase. From then on list changes
// keep the selected tab instead of re-resolving DefaultIndex.
func (c *Controller) commit() {
	c.pendingDefault = false
}

// defaultReached reports whether the selection sits on or after the default
// tab without wrapping, so appending more tabs cannot move it.
func (c *Controller) defaultReached() bool {
	target := c.defaultIndex
	if target < 0 {
		target = 0
	}
	return c.defaultIndex < len(c.tabs) && c.selected >= target
}

func (c *Controller) notify(index int) {
	if c.onChange != nil {
		c.onChange(index)
	}
}

func (c *Controller) reindex() {
	for i, t := range c.tabs {
		t.ID = tabID(c.id, i)
		t.PanelID = panelID(c.id, i)
	}
}

// revalidate restores a valid selection after the tab list changed.
// prevKey is the key that was selected before the change.
func (c *Controller) revalidate(prevKey string) {
	if len(c.tabs) == 0 {
		c.selected, c.focused = -1, -1
		return
	}
	switch {
	case c.controlled:
		c.setSelected(c.resolve(c.index))
		return
	case c.pendingDefault:
		c.setSelected(c.resolve(c.defaultIndex))
		if c.defaultReached() {
			c.commit()
		}
		return
	}
	if idx := c.IndexOf(prevKey); idx >= 0 && !c.tabs[idx].Disabled {
		c.selected = idx
		return
	}
	next := c.resolve(c.selected)
	c.setSelected(next)
	if c.SelectedKey() != prevKey {
		c.notify(next)
	}
}

// resolve clamps index into range and moves it forward to the nearest enabled
// tab. When every tab is disabled the clamped index is kept.
func (c *Controller) resolve(index int) int {
	n := len(c.tabs)
	if n == 0 {
		return -1
	}
	if index < 0 {
		index = 0
	}
	if index >= n {
		index = n - 1
	}
	if !c.tabs[index].Disabled {
		return index
	}
	if next := c.step(index, 1); next >= 0 {
		return next
	}
	return index
}

func tabID(set string, index int) string {
	return fmt.Sprintf("tabs-%s--tab-%d", set, index)
}

func panelID(set string, index int) string {
	return fmt.Sprintf("tabs-%s--tabpanel-%d", set, index)
}
