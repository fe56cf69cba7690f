// Package console renders the calculator transcript.
//
// Styles come from a lipgloss renderer bound to the output writer, so the
// text is colored on a terminal and plain everywhere else. Styling is only
// ever applied to single lines and never changes the visible characters.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	BannerWidth    = 45
	SeparatorWidth = 35
)

type Printer struct {
	w io.Writer

	banner  lipgloss.Style
	heading lipgloss.Style
	rule    lipgloss.Style
	result  lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		banner:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("#444466")),
		result:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
		err:     r.NewStyle().Foreground(lipgloss.Color("#ff4444")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#888899")),
	}
}

func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Banner prints title framed by '=' rules, preceded by a blank line.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", BannerWidth)
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.rule.Render(rule))
	fmt.Fprintln(p.w, p.banner.Render("    "+title))
	fmt.Fprintln(p.w, p.rule.Render(rule))
}

// Heading prints a section title preceded by a blank line.
func (p *Printer) Heading(text string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.heading.Render(text))
}

// Note prints secondary information.
func (p *Printer) Note(text string) {
	fmt.Fprintln(p.w, p.muted.Render(text))
}

func (p *Printer) Separator() {
	fmt.Fprintln(p.w, p.rule.Render(strings.Repeat("-", SeparatorWidth)))
}

// Result prints lines framed by separators.
func (p *Printer) Result(lines ...string) {
	p.Separator()
	for _, l := range lines {
		fmt.Fprintln(p.w, p.result.Render(l))
	}
	p.Separator()
}

// Errorf prints an error line preceded by a blank line.
func (p *Printer) Errorf(format string, a ...any) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.err.Render(fmt.Sprintf(format, a...)))
}
