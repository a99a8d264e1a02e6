package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
)

// WrapLines greedily breaks s into lines of at most width terminal cells.
// Words are separated by whitespace; a line breaks before the word that
// would overflow it. A word wider than width is split across lines, using up
// whatever room the current line still has first. Whitespace runs collapse
// to single spaces and leading/trailing whitespace is dropped.
//
// The only line that may exceed width is one holding a single grapheme that
// is itself wider than width.
func WrapLines(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0

	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range words {
		w := ansi.StringWidth(word)

		switch {
		case lineWidth == 0 && w <= width:
			line.WriteString(word)
			lineWidth = w
		case lineWidth > 0 && lineWidth+1+w <= width:
			line.WriteString(" ")
			line.WriteString(word)
			lineWidth += 1 + w
		case w <= width:
			flush()
			line.WriteString(word)
			lineWidth = w
		default:
			// Long word: fill the rest of the current line, then hard-break.
			rest := word
			if lineWidth > 0 {
				room := width - lineWidth - 1
				if room > 0 {
					head, tail := splitWidth(rest, room)
					if head != "" {
						line.WriteString(" ")
						line.WriteString(head)
						rest = tail
					}
				}
				flush()
			}
			for rest != "" {
				head, tail := splitWidth(rest, width)
				if head == "" {
					// A single grapheme wider than width.
					head, tail = firstGrapheme(rest)
				}
				line.WriteString(head)
				lineWidth = ansi.StringWidth(head)
				rest = tail
				if rest != "" {
					flush()
				}
			}
		}
	}
	if lineWidth > 0 {
		flush()
	}
	return lines
}

// Wrap is WrapLines joined with newlines.
func Wrap(s string, width int) string {
	return strings.Join(WrapLines(s, width), "\n")
}

// splitWidth returns the longest grapheme prefix of s that fits in width
// cells, and the remainder.
func splitWidth(s string, width int) (string, string) {
	gr := uniseg.NewGraphemes(s)
	used := 0
	end := 0
	for gr.Next() {
		w := gr.Width()
		if used+w > width {
			break
		}
		used += w
		_, end = gr.Positions()
	}
	return s[:end], s[end:]
}

func firstGrapheme(s string) (string, string) {
	gr := uniseg.NewGraphemes(s)
	if !gr.Next() {
		return "", ""
	}
	_, end := gr.Positions()
	return s[:end], s[end:]
}

// MaxLineWidth returns the width in cells of the widest line of s.
func MaxLineWidth(s string) int {
	widest := 0
	for _, l := range strings.Split(s, "\n") {
		widest = max(widest, ansi.StringWidth(l))
	}
	return widest
}
