package ui

import (
	"io"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// maxScrollback bounds the transcript kept for redraws.
const maxScrollback = 500

// ScreenConsole is a full-screen console: a scrolling transcript above a
// single input row.
type ScreenConsole struct {
	screen   *Screen
	renderer *Renderer
	lines    []string
	// partial is set while the last transcript line awaits more text.
	partial bool
}

// NewScreenConsole takes over the terminal.
func NewScreenConsole() (*ScreenConsole, error) {
	screen, err := NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreenConsole(screen), nil
}

func newScreenConsole(screen *Screen) *ScreenConsole {
	return &ScreenConsole{
		screen:   screen,
		renderer: NewRenderer(screen),
	}
}

// Write appends text to the transcript and redraws. Text without a
// trailing newline is continued by the next write.
func (c *ScreenConsole) Write(text string) {
	c.appendText(text)
	c.renderer.Render(c.lines, "", "")
}

// Writeln appends a line to the transcript and redraws.
func (c *ScreenConsole) Writeln(line string) {
	c.Write(line + "\n")
}

// Read edits an input line until Enter. Escape and Ctrl-C end input with
// io.EOF.
func (c *ScreenConsole) Read(prompt string) (string, error) {
	var input []rune
	c.renderer.Render(c.lines, prompt, "")

	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			return "", io.EOF
		case *tcell.EventResize:
			c.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC, tcell.KeyCtrlD:
				return "", io.EOF
			case tcell.KeyEnter:
				text := string(input)
				c.appendText(prompt + text + "\n")
				return strings.TrimSpace(text), nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		}
		c.renderer.Render(c.lines, prompt, string(input))
	}
}

// Close restores the terminal.
func (c *ScreenConsole) Close() {
	c.screen.Close()
}

// appendText adds text to the transcript, splitting embedded newlines so
// multi-line output such as the map scrolls correctly.
func (c *ScreenConsole) appendText(text string) {
	pieces := strings.Split(text, "\n")
	complete := strings.HasSuffix(text, "\n")
	if complete {
		pieces = pieces[:len(pieces)-1]
	}
	if c.partial && len(c.lines) > 0 && len(pieces) > 0 {
		c.lines[len(c.lines)-1] += pieces[0]
		pieces = pieces[1:]
	}
	c.lines = append(c.lines, pieces...)
	c.partial = !complete
	if over := len(c.lines) - maxScrollback; over > 0 {
		c.lines = c.lines[over:]
	}
}
