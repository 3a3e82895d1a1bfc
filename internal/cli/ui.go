package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	pkgio "github.com/matzehuels/overlay/pkg/io"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	// StyleTitle for headings such as the inspected file name.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleOK      = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn    = lipgloss.NewStyle().Foreground(colorYellow)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleCode    = lipgloss.NewStyle().Foreground(colorRed)
	styleKind    = lipgloss.NewStyle().Foreground(colorCyan)
	styleHeading = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

const (
	markOK   = "✓"
	markWarn = "!"
	markInfo = "›"
	dot      = " · "
)

// =============================================================================
// Printer
// =============================================================================

// printer writes styled status lines for humans. Machine output (JSON)
// bypasses it.
type printer struct {
	w io.Writer
}

func (p printer) line(s string) { fmt.Fprintln(p.w, s) }

func (p printer) success(format string, args ...any) {
	p.line(styleOK.Render(markOK) + " " + fmt.Sprintf(format, args...))
}

func (p printer) warning(format string, args ...any) {
	p.line(styleWarn.Render(markWarn) + " " + styleWarn.Render(fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(styleMuted.Render(markInfo) + " " + fmt.Sprintf(format, args...))
}

func (p printer) detail(format string, args ...any) {
	p.line("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (p printer) keyValue(key, value string) {
	p.line(styleKey.Render(key) + " " + styleValue.Render(value))
}

// stats prints "N shapes · M dropped · cached|fresh".
func (p printer) stats(shapes, dropped int, cached bool) {
	status := styleMuted.Render("fresh")
	if cached {
		status = styleOK.Render("cached")
	}
	p.line("  " +
		StyleDim.Render(fmt.Sprintf("%d %s", shapes, plural(shapes, "shape", "shapes"))) +
		StyleDim.Render(dot) +
		StyleDim.Render(fmt.Sprintf("%d dropped", dropped)) +
		StyleDim.Render(dot) +
		status)
}

// diagnostic prints one dropped block or ignored line.
func (p printer) diagnostic(d pkgio.Diagnostic) {
	code := d.Code
	if code == "" {
		code = "ERROR"
	}
	p.line("  " + StyleDim.Render(fmt.Sprintf("line %-5d", d.Line)) + " " +
		styleCode.Render(code) + " " + d.Message)
}
