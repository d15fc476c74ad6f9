package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Printer writes tables and activity lines to a stream. In plain mode no
// escape sequences are written.
type Printer struct {
	out      io.Writer
	plain    bool
	renderer *lipgloss.Renderer
}

// NewPrinter creates a printer for out. The colour profile is detected from
// out unless plain is set.
func NewPrinter(out io.Writer, plain bool) *Printer {
	r := lipgloss.NewRenderer(out)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{out: out, plain: plain, renderer: r}
}

// Table writes t followed by a blank line.
func (p *Printer) Table(t Table) error {
	return p.write(t.RenderWith(p.renderer) + "\n\n")
}

// Line writes one message line.
func (p *Printer) Line(msg string) error {
	return p.write(msg + "\n")
}

func (p *Printer) write(s string) error {
	if p.plain {
		s = ansi.Strip(s)
	}
	if _, err := io.WriteString(p.out, s); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
