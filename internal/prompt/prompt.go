// Package prompt implements the line-oriented forms used to create and edit records.
//
// Every question accepts an empty answer. On add forms an empty answer picks
// the shown default; on update forms it keeps the current value. Optional
// nutrient values can be cleared on update by answering "none".
package prompt

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/noot-app/nut/internal/console"
)

// Prompter asks questions on a printer and reads answers from an input stream
type Prompter struct {
	in  *bufio.Reader
	out *console.Printer
	err error
}

// New creates a prompter reading answers from in
func New(in io.Reader, out *console.Printer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ask prints label and returns the trimmed answer.
// End of input reads as an empty answer so open-ended loops terminate.
func (p *Prompter) ask(label string) string {
	p.out.Printf("%s", label)
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) && p.err == nil {
		p.err = err
	}
	if errors.Is(err, io.EOF) {
		p.out.Println()
	}
	return strings.TrimSpace(line)
}

// askDefault returns the answer, or def when it is empty
func (p *Prompter) askDefault(label, def string) string {
	if answer := p.ask(label); answer != "" {
		return answer
	}
	return def
}

// askValue reads an optional number. Blank or unparsable answers are unknown.
func (p *Prompter) askValue(label string) *float64 {
	answer := p.ask(label)
	if answer == "" {
		return nil
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		p.out.Printf("  Invalid number %q, leaving it empty\n", answer)
		return nil
	}
	return &v
}

// updateValue reads a replacement for current. Blank keeps it, "none" clears it.
func (p *Prompter) updateValue(label string, current *float64) *float64 {
	display := "None"
	if current != nil {
		display = console.FormatFloat(*current)
	}

	answer := p.ask(label + " [" + display + "]: ")
	switch {
	case answer == "":
		return current
	case strings.EqualFold(answer, "none"):
		return nil
	}

	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		p.out.Printf("  Invalid number %q, keeping existing\n", answer)
		return current
	}
	return &v
}

// askQuantity reads a meal line quantity, defaulting to 1 on blank or invalid input.
// ok is false when the answer was not a number.
func (p *Prompter) askQuantity(label string) (quantity float64, ok bool) {
	answer := p.ask(label)
	if answer == "" {
		return 1, true
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		p.out.Println("  Invalid quantity, using 1.0")
		return 1, false
	}
	return v, true
}

// choice reads a menu answer in lower case, defaulting to def
func (p *Prompter) choice(label, def string) string {
	return strings.ToLower(p.askDefault(label, def))
}

// Err returns the first read failure, if any
func (p *Prompter) Err() error {
	return p.err
}
