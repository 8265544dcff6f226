package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Overlay centers card over base in a width x height canvas. Columns of the
// base outside the card's painted segment stay visible on every line.
func Overlay(base, card string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseCanvas := fitCanvas(base, width, height)
	overlayCanvas := fitCanvas(lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card), width, height)
	return overlayOntoBase(baseCanvas, overlayCanvas, width, height)
}

func overlayOntoBase(base, overlay string, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, height)
	out := make([]string, height)
	for i := 0; i < height; i++ {
		baseLine := padRightANSI(baseLines[i], width)
		overlayLine := padRightANSI(overlayLines[i], width)
		start, end, has := segmentBounds(overlayLine, width)
		if !has {
			out[i] = baseLine
			continue
		}
		left := ansi.Truncate(baseLine, start, "")
		segment := ansi.Truncate(dropColumns(overlayLine, start), end-start, "")
		right := dropColumns(baseLine, end)
		out[i] = padRightANSI(left+segment+right, width)
	}
	return strings.Join(out, "\n")
}

// segmentBounds finds the painted columns of an overlay line, ignoring the
// blank padding lipgloss.Place puts around the card.
func segmentBounds(line string, width int) (start, end int, ok bool) {
	plain := []rune(ansi.Strip(ansi.Truncate(line, width, "")))
	end = len(plain)
	for end > 0 && plain[end-1] == ' ' {
		end--
	}
	for start < end && plain[start] == ' ' {
		start++
	}
	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func fitCanvas(s string, width, height int) string {
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	return ansi.TruncateLeft(s, cols, "")
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
