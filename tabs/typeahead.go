package tabs

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FindByLabel returns the enabled tab whose label best matches query: the
// first prefix match, otherwise the closest label by edit distance when it is
// close enough. It returns -1 when nothing matches.
func (c *Controller) FindByLabel(query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return -1
	}
	for i, t := range c.tabs {
		if !t.Disabled && strings.HasPrefix(strings.ToLower(t.Label), q) {
			return i
		}
	}
	best, bestScore := -1, 1.0
	for i, t := range c.tabs {
		label := strings.ToLower(t.Label)
		if t.Disabled || label == "" {
			continue
		}
		maxlen := len(label)
		if len(q) > maxlen {
			maxlen = len(q)
		}
		score := float64(levenshtein.ComputeDistance(q, label)) / float64(maxlen)
		if score < bestScore {
			best, bestScore = i, score
		}
	}
	if bestScore >= 0.5 {
		return -1
	}
	return best
}
