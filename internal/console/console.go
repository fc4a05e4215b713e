// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package console prints the human-readable progress of a conversion run.
// Styling is applied through a lipgloss renderer bound to the output writer,
// so pipes and files receive plain text.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 48

// Printer writes banner, progress, and summary lines to one writer.
type Printer struct {
	out   io.Writer
	ok    lipgloss.Style
	fail  lipgloss.Style
	dim   lipgloss.Style
	title lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		out:   w,
		ok:    r.NewStyle().Foreground(lipgloss.Color("#4CAF50")),
		fail:  r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		dim:   r.NewStyle().Foreground(lipgloss.Color("#888888")).TabWidth(lipgloss.NoTabConversion),
		title: r.NewStyle().Bold(true),
	}
}

// Found prints the banner announcing how many files will be converted.
func (p *Printer) Found(n int, root string, recursive bool) {
	fmt.Fprintln(p.out, p.title.Render(
		fmt.Sprintf("🔎 Found %d PPT/PPTX file(s) in: %s (recursive=%t)", n, root, recursive)))
}

// Converting starts the progress line for file i of total. The line is
// finished by Done.
func (p *Printer) Converting(i, total int, name string) {
	fmt.Fprintf(p.out, "[%d/%d] Converting: %s ...", i, total, name)
}

// Done finishes a progress line with a success or failure mark. A failed
// conversion with a diagnostic gets an indented detail line.
func (p *Printer) Done(success bool, msg string) {
	if success {
		fmt.Fprintln(p.out, " "+p.ok.Render("✅"))
		return
	}
	fmt.Fprintln(p.out, " "+p.fail.Render("❌"))
	if msg == "" {
		return
	}
	// One Render per line; lipgloss pads multi-line blocks to equal width.
	for i, line := range strings.Split(msg, "\n") {
		prefix := "    ↳ "
		if i > 0 {
			prefix = "      "
		}
		fmt.Fprintln(p.out, p.dim.Render(prefix+line))
	}
}

// Summary prints the closing rule and counts.
func (p *Printer) Summary(succeeded, failed, total int, elapsed time.Duration) {
	fmt.Fprintln(p.out, strings.Repeat("=", ruleWidth))
	line := fmt.Sprintf("Done. Success=%d | Failed=%d | Total=%d | Time=%.1fs",
		succeeded, failed, total, elapsed.Seconds())
	if failed > 0 {
		fmt.Fprintln(p.out, p.fail.Render(line))
		return
	}
	fmt.Fprintln(p.out, p.ok.Render(line))
}
