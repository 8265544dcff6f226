package tabs

import "testing"

func TestHandleKeyNavigation(t *testing.T) {
	type tab struct {
		key      string
		disabled bool
	}
	abc := []tab{{key: "a"}, {key: "b"}, {key: "c"}}
	cases := []struct {
		name        string
		tabs        []tab
		orientation Orientation
		current     int
		key         Key
		wantFocus   int
		wantHandled bool
	}{
		{"right moves forward", abc, Horizontal, 0, KeyArrowRight, 1, true},
		{"right wraps to first", abc, Horizontal, 2, KeyArrowRight, 0, true},
		{"left wraps to last", abc, Horizontal, 0, KeyArrowLeft, 2, true},
		{"wrap skips disabled first", []tab{{key: "a", disabled: true}, {key: "b"}, {key: "c"}}, Horizontal, 2, KeyArrowRight, 1, true},
		{"left skips disabled", []tab{{key: "a"}, {key: "b", disabled: true}, {key: "c"}}, Horizontal, 2, KeyArrowLeft, 0, true},
		{"home is first enabled", []tab{{key: "a", disabled: true}, {key: "b"}, {key: "c"}}, Horizontal, 2, KeyHome, 1, true},
		{"end is last enabled", []tab{{key: "a"}, {key: "b"}, {key: "c", disabled: true}}, Horizontal, 0, KeyEnd, 1, true},
		{"vertical uses down", abc, Vertical, 0, KeyArrowDown, 1, true},
		{"vertical wraps up", abc, Vertical, 0, KeyArrowUp, 2, true},
		{"vertical ignores right", abc, Vertical, 0, KeyArrowRight, -1, false},
		{"horizontal ignores down", abc, Horizontal, 0, KeyArrowDown, -1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(Config{Orientation: tc.orientation, Manual: true})
			for _, tb := range tc.tabs {
				c.Register(tb.key, TabOptions{Label: tb.key, Disabled: tb.disabled})
			}
			got := c.HandleKey(tc.key, tc.current)
			if got != tc.wantHandled {
				t.Fatalf("handled = %v, want %v", got, tc.wantHandled)
			}
			if c.FocusedIndex() != tc.wantFocus {
				t.Fatalf("focused = %d, want %d", c.FocusedIndex(), tc.wantFocus)
			}
		})
	}
}

func TestAutomaticArrowSelects(t *testing.T) {
	c := New(Config{})
	for _, k := range []string{"a", "b", "c"} {
		c.Register(k, TabOptions{})
	}
	c.HandleKey(KeyArrowRight, 0)
	if c.SelectedIndex() != 1 || c.FocusedIndex() != 1 {
		t.Fatalf("selected=%d focused=%d, want 1/1", c.SelectedIndex(), c.FocusedIndex())
	}
}

func TestManualArrowMovesFocusOnly(t *testing.T) {
	c := New(Config{Manual: true})
	for _, k := range []string{"a", "b", "c"} {
		c.Register(k, TabOptions{})
	}
	c.HandleKey(KeyArrowRight, 0)
	if c.FocusedIndex() != 1 {
		t.Fatalf("focused = %d, want 1", c.FocusedIndex())
	}
	if c.SelectedIndex() != 0 {
		t.Fatalf("selected = %d, want 0 before Enter", c.SelectedIndex())
	}
	if !c.HandleKey(KeyEnter, c.FocusedIndex()) {
		t.Fatalf("enter not handled")
	}
	if c.SelectedIndex() != 1 {
		t.Fatalf("selected = %d, want 1 after Enter", c.SelectedIndex())
	}
	c.HandleKey(KeyArrowRight, 1)
	c.HandleKey(KeySpace, 2)
	if c.SelectedIndex() != 2 {
		t.Fatalf("selected = %d, want 2 after Space", c.SelectedIndex())
	}
}

func TestAllDisabledIsNoop(t *testing.T) {
	var changes int
	c := New(Config{OnChange: func(int) { changes++ }})
	c.Register("a", TabOptions{Disabled: true})
	c.Register("b", TabOptions{Disabled: true})
	for _, k := range []Key{KeyArrowRight, KeyArrowLeft, KeyHome, KeyEnd, KeyEnter} {
		if c.HandleKey(k, 0) {
			t.Fatalf("%s handled with every tab disabled", k)
		}
	}
	if c.FocusedIndex() != -1 || changes != 0 {
		t.Fatalf("focused=%d changes=%d, want -1/0", c.FocusedIndex(), changes)
	}
}

func TestHandleKeyEmptyAndUnknown(t *testing.T) {
	c := New(Config{})
	if c.HandleKey(KeyArrowRight, 0) {
		t.Fatalf("empty set handled a key")
	}
	c.Register("a", TabOptions{})
	if c.HandleKey(Key("PageDown"), 0) {
		t.Fatalf("unknown key handled")
	}
}

func TestHandleKeyInvalidCurrentUsesRovingIndex(t *testing.T) {
	c := New(Config{Manual: true})
	for _, k := range []string{"a", "b", "c"} {
		c.Register(k, TabOptions{})
	}
	c.Select(1)
	c.HandleKey(KeyArrowRight, -1)
	if c.FocusedIndex() != 2 {
		t.Fatalf("focused = %d, want 2", c.FocusedIndex())
	}
}
