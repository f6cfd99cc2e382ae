package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineConsole reads commands line by line and prints plain text.
type LineConsole struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLineConsole creates a console over the given streams.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{in: bufio.NewScanner(in), out: out}
}

// Write prints text without a trailing newline.
func (c *LineConsole) Write(text string) {
	fmt.Fprint(c.out, text)
}

// Writeln prints one line.
func (c *LineConsole) Writeln(line string) {
	fmt.Fprintln(c.out, line)
}

// Read prints the prompt and returns the next line without surrounding
// whitespace. It returns io.EOF once input is exhausted.
func (c *LineConsole) Read(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		// Finish the prompt line so later output starts cleanly.
		fmt.Fprintln(c.out)
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}
