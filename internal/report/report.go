// Package report renders device state and write outcomes to the
// console. The default is colored human-readable lines; a JSON mode
// mirrors the same data for scripts. Reports are transient and never
// persisted.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/hwkit/amdctl/internal/sysfs"
)

// Printer writes the report. Construct with New; zero value is not
// usable.
type Printer struct {
	out     io.Writer
	ok      lipgloss.Style
	warn    lipgloss.Style
	fail    lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

// New creates a printer. With color off every style is a no-op.
func New(out io.Writer, color bool) *Printer {
	p := &Printer{out: out}
	if color {
		p.ok = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		p.warn = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		p.fail = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		p.heading = lipgloss.NewStyle().Bold(true)
		p.dim = lipgloss.NewStyle().Faint(true)
	} else {
		p.ok = lipgloss.NewStyle()
		p.warn = p.ok
		p.fail = p.ok
		p.heading = p.ok
		p.dim = p.ok
	}
	return p
}

// Heading prints a bold section header.
func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.out, p.heading.Render(fmt.Sprintf(format, args...)))
}

// OK prints a green status line.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintln(p.out, p.ok.Render("  ✓ "+fmt.Sprintf(format, args...)))
}

// Warn prints a yellow status line, used for unsupported controls and
// unavailable attributes.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out, p.warn.Render("  ! "+fmt.Sprintf(format, args...)))
}

// Fail prints a red status line. Recoverable: the batch goes on.
func (p *Printer) Fail(format string, args ...any) {
	fmt.Fprintln(p.out, p.fail.Render("  ✗ "+fmt.Sprintf(format, args...)))
}

// Line prints an unstyled key/value line.
func (p *Printer) Line(key, value string) {
	fmt.Fprintf(p.out, "  %-22s %s\n", key, value)
}

// WriteResults renders a batch of write outcomes, one line per
// (target, attribute) pair. Partial failure stays visible: successes
// and failures of the same batch are printed side by side.
func (p *Printer) WriteResults(results []sysfs.WriteResult) {
	for _, r := range results {
		switch {
		case r.Unsupported:
			p.Warn("%s: %s control not available", r.Target, r.Attribute)
		case r.Err != nil:
			p.Fail("%s: %s=%s: %v", r.Target, r.Attribute, r.Value, r.Err)
		default:
			p.OK("%s: %s=%s", r.Target, r.Attribute, r.Value)
		}
	}
}

// Table renders a DPM state table with the active row highlighted.
func (p *Printer) Table(title string, entries []sysfs.TableEntry) {
	if len(entries) == 0 {
		p.Warn("%s: %s", title, sysfs.Unavailable)
		return
	}
	p.Heading("%s", title)
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		switch {
		case e.Active:
			fmt.Fprintln(w, p.ok.Render(fmt.Sprintf("  *\t%d\t%s (current)", e.Index, e.Value)))
		case e.Index < 0:
			fmt.Fprintf(w, "   \t\t%s\n", p.dim.Render(e.Value))
		default:
			fmt.Fprintf(w, "   \t%d\t%s\n", e.Index, e.Value)
		}
	}
	w.Flush()
}

// JSON emits the value as indented JSON, for the structured output
// mode.
func (p *Printer) JSON(v any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
