package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Strip renders the window of a horizontal strip of equally tall blocks
// that starts offset columns into the strip. Columns outside the strip are
// blank, so a negative offset shifts the first block right.
func Strip(blocks []string, offset, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var lines []string
	if len(blocks) > 0 {
		lines = strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")
	}

	out := make([]string, height)
	for row := 0; row < height; row++ {
		line := ""
		if row < len(lines) {
			line = lines[row]
		}
		out[row] = window(line, offset, width)
	}
	return strings.Join(out, "\n")
}

// window cuts [offset, offset+width) out of line and pads it to width.
func window(line string, offset, width int) string {
	var b strings.Builder
	left, right := offset, offset+width
	if left < 0 {
		pad := min(-left, width)
		b.WriteString(strings.Repeat(" ", pad))
		left = 0
	}
	if right > left {
		b.WriteString(ansi.Cut(line, left, right))
	}
	if w := ansi.StringWidth(b.String()); w < width {
		b.WriteString(strings.Repeat(" ", width-w))
	}
	return b.String()
}

// Indicator renders one dot per page with the current one highlighted.
func Indicator(s *Styles, count, current int) string {
	if count <= 0 {
		return ""
	}
	dots := make([]string, count)
	for i := range dots {
		if i == current {
			dots[i] = s.DotActive.Render("●")
		} else {
			dots[i] = s.Dot.Render("○")
		}
	}
	return strings.Join(dots, " ")
}
