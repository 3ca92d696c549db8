// Package console renders records and nutrition results for the terminal.
package console

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal
const DefaultWidth = 80

// Printer writes formatted lines to an output stream
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a printer sized to the terminal behind out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, width: terminalWidth(out)}
}

// NewPrinterWidth creates a printer with a fixed line width
func NewPrinterWidth(out io.Writer, width int) *Printer {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Printer{out: out, width: width}
}

// terminalWidth honours COLUMNS first, then asks the terminal
func terminalWidth(out io.Writer) int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// Width returns the line width used for rules
func (p *Printer) Width() int {
	return p.width
}

// Writer returns the underlying output
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Println writes a plain line
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf writes formatted text
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Header prints a blank line, text and a full-width rule of '='
func (p *Printer) Header(text string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", text, strings.Repeat("=", p.width))
}

// Subheader prints a blank line, text and a full-width rule of '-'
func (p *Printer) Subheader(text string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", text, strings.Repeat("-", p.width))
}

// Separator prints a full-width rule of '-'
func (p *Printer) Separator() {
	fmt.Fprintln(p.out, strings.Repeat("-", p.width))
}

// SectionTitle prints text underlined to its own length
func (p *Printer) SectionTitle(text string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", text, strings.Repeat("=", utf8.RuneCountInString(text)))
}

// Success prints a success message
func (p *Printer) Success(format string, a ...any) {
	fmt.Fprintf(p.out, "✔️ %s\n", fmt.Sprintf(format, a...))
}

// Error prints an error message
func (p *Printer) Error(format string, a ...any) {
	fmt.Fprintf(p.out, "❌ %s\n", fmt.Sprintf(format, a...))
}

// Warning prints a warning message
func (p *Printer) Warning(format string, a ...any) {
	fmt.Fprintf(p.out, "⚠️  %s\n", fmt.Sprintf(format, a...))
}

// Info prints an informational message
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, "ℹ️  %s\n", fmt.Sprintf(format, a...))
}

// ListHeader prints "[Found N kind]", pluralizing kind unless N is 1
func (p *Printer) ListHeader(count int, kind string) {
	if count != 1 {
		kind += "s"
	}
	fmt.Fprintf(p.out, "[Found %d %s]\n", count, kind)
}

// Names prints a counted list of names, or a placeholder when empty
func (p *Printer) Names(kind string, names []string) {
	p.ListHeader(len(names), kind)
	if len(names) == 0 {
		fmt.Fprintf(p.out, "  No %ss found\n", kind)
		return
	}
	for _, name := range names {
		fmt.Fprintf(p.out, "  %s\n", name)
	}
}

func (p *Printer) detail(indent, label, value string) {
	fmt.Fprintf(p.out, "%s%s: %s\n", indent, label, value)
}
