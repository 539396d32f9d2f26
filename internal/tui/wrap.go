// Package tui provides the Bubble Tea practice interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// styledWord pairs a rendered (styled) word with the display width of its
// plain text. Styling escape codes carry no width, so the width is computed
// before rendering.
type styledWord struct {
	rendered string
	width    int
}

func newStyledWord(plain, rendered string) styledWord {
	return styledWord{rendered: rendered, width: runewidth.StringWidth(plain)}
}

// wrapWords lays styled words out into lines no wider than width, breaking
// only between words. A single word wider than the line gets its own line.
func wrapWords(words []styledWord, width int) string {
	if width <= 0 {
		parts := make([]string, len(words))
		for i, w := range words {
			parts[i] = w.rendered
		}
		return strings.Join(parts, " ")
	}
	var out strings.Builder
	lineWidth := 0
	for _, w := range words {
		sep := 1
		if lineWidth == 0 {
			sep = 0
		}
		if lineWidth > 0 && lineWidth+sep+w.width > width {
			out.WriteRune('\n')
			lineWidth = 0
			sep = 0
		}
		if sep == 1 {
			out.WriteRune(' ')
			lineWidth++
		}
		out.WriteString(w.rendered)
		lineWidth += w.width
	}
	return out.String()
}
