package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
)

// Renderer handles drawing the transcript and input line to the screen.
type Renderer struct {
	screen     *Screen
	highlights map[string]tcell.Style
}

// NewRenderer creates a new renderer for the given screen. Monster names
// are drawn in their species color.
func NewRenderer(screen *Screen) *Renderer {
	r := &Renderer{
		screen:     screen,
		highlights: make(map[string]tcell.Style),
	}
	for _, sp := range gamedata.Species().All() {
		r.highlights[sp.Name] = tcell.StyleDefault.Foreground(sp.TCellColor()).Bold(true)
	}
	return r
}

// Render draws the newest lines that fit above the input row, then the
// prompt with the text typed so far.
func (r *Renderer) Render(lines []string, prompt, input string) {
	r.screen.Clear()

	width, height := r.screen.Size()
	if height < 1 {
		r.screen.Show()
		return
	}

	rows := height - 1
	start := 0
	if len(lines) > rows {
		start = len(lines) - rows
	}
	for y, line := range lines[start:] {
		r.renderLine(line, y, width)
	}

	inputRow := prompt + input
	r.RenderMessage(inputRow, height-1)
	cursor := len([]rune(inputRow))
	if cursor >= width {
		cursor = width - 1
	}
	r.screen.ShowCursor(cursor, height-1)

	r.screen.Show()
}

// renderLine draws one transcript line with its line style and species
// highlights, clipped to the screen width.
func (r *Renderer) renderLine(line string, y, width int) {
	base := r.getLineStyle(line)
	runes := []rune(line)
	styles := make([]tcell.Style, len(runes))
	for i := range styles {
		styles[i] = base
	}

	for name, style := range r.highlights {
		for _, at := range runeIndexes(line, name) {
			for i := at; i < at+len([]rune(name)) && i < len(styles); i++ {
				styles[i] = style
			}
		}
	}

	for x, ch := range runes {
		if x >= width {
			break
		}
		r.screen.SetContent(x, y, ch, styles[x])
	}
}

// getLineStyle returns the style for a whole transcript line.
func (r *Renderer) getLineStyle(line string) tcell.Style {
	switch {
	case strings.HasPrefix(line, "GAME OVER"), strings.HasSuffix(line, "has been defeated!"):
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case strings.HasPrefix(line, "You found the EXIT"):
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case strings.HasPrefix(line, "You collect"), strings.HasPrefix(line, "You find"):
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case strings.HasPrefix(line, "Round "):
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

// runeIndexes returns the rune offsets of every occurrence of sub in s.
func runeIndexes(s, sub string) []int {
	var out []int
	offset := 0
	for {
		i := strings.Index(s, sub)
		if i < 0 {
			return out
		}
		out = append(out, offset+len([]rune(s[:i])))
		offset += len([]rune(s[:i+len(sub)]))
		s = s[i+len(sub):]
	}
}
