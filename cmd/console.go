package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// Console wraps the interactive terminal: prompts on one side, messages
// and rendered markdown on the other. Input and output are plain
// io.Reader/io.Writer so the shell can be driven by a script in tests.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	eof bool
}

// NewConsole returns a console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out}
}

// EOF reports whether the input stream is exhausted. The shell treats
// this as an implicit exit so a closed stdin never spins the menu loop.
func (c *Console) EOF() bool { return c.eof }

// Title prints a section rule with the given text.
func (c *Console) Title(text string) {
	fmt.Fprintf(c.out, "\n── %s ──\n", text)
}

// Menu prints a heading and the numbered choices of a menu.
func (c *Console) Menu(heading string, choices string) {
	fmt.Fprintf(c.out, "[%s]\n%s\n", heading, choices)
}

// Info prints a neutral message.
func (c *Console) Info(msg string) { fmt.Fprintln(c.out, msg) }

// Ok prints a success message.
func (c *Console) Ok(msg string) { fmt.Fprintf(c.out, "✓ %s\n", msg) }

// Warn prints a warning message.
func (c *Console) Warn(msg string) { fmt.Fprintf(c.out, "! %s\n", msg) }

// Error prints an error message.
func (c *Console) Error(msg string) { fmt.Fprintf(c.out, "✗ %s\n", msg) }

// Ask prompts for a line of input and returns it trimmed. It returns an
// empty string when the input stream is exhausted.
func (c *Console) Ask(prompt string) string {
	fmt.Fprintf(c.out, "%s: ", prompt)
	if !c.in.Scan() {
		c.eof = true
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

// AskPassword prompts for a password without echoing when the process
// runs on a real terminal, falling back to a plain read otherwise.
func (c *Console) AskPassword(prompt string) string {
	if f, ok := c.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(c.out, "%s: ", prompt)
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(c.out)
		if err == nil {
			return strings.TrimSpace(string(pw))
		}
		// fall through to the plain read on error
	}
	return c.Ask(prompt)
}

// Pause waits for the user to press enter.
func (c *Console) Pause() {
	fmt.Fprint(c.out, "Press [Enter] to continue")
	if !c.in.Scan() {
		c.eof = true
	}
	fmt.Fprintln(c.out)
}

// Markdown renders a markdown document to the console, styled for the
// terminal when the output is one, raw otherwise.
func (c *Console) Markdown(doc string) {
	fmt.Fprintln(c.out, renderMarkdown(c.out, doc))
}

// renderMarkdown styles markdown for terminal output. When out is not a
// terminal (tests, pipes) the document is returned untouched.
func renderMarkdown(out io.Writer, doc string) string {
	if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		return doc
	}
	rendered, err := glamour.Render(doc, "auto")
	if err != nil {
		return doc
	}
	return rendered
}

// printMarkdown renders a markdown document to stdout; it is the common
// output path of the non-interactive subcommands.
func printMarkdown(doc string) {
	fmt.Println(renderMarkdown(os.Stdout, doc))
}
