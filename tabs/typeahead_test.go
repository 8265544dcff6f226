package tabs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByLabel(t *testing.T) {
	c := New(Config{})
	c.Register("general", TabOptions{Label: "General"})
	c.Register("network", TabOptions{Label: "Network"})
	c.Register("notes", TabOptions{Label: "Notes", Disabled: true})
	c.Register("storage", TabOptions{Label: "Storage"})

	cases := []struct {
		query string
		want  int
	}{
		{"g", 0},
		{"NET", 1},
		{"no", -1},
		{"storag", 3},
		{"stroage", 3},
		{"xyz", -1},
		{"  ", -1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, c.FindByLabel(tc.query), "query %q", tc.query)
	}
}
