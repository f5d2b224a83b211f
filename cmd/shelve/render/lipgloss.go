package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"shelve/internal/config"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	messageStyle lipgloss.Style
	pathStyle    lipgloss.Style
	nameStyle    lipgloss.Style
	countStyle   lipgloss.Style
	errorStyle   lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:        width,
		r:            r,
		messageStyle: r.NewStyle().Bold(true),
		pathStyle:    r.NewStyle().Faint(true),
		nameStyle:    r.NewStyle(),
		countStyle:   r.NewStyle().Bold(true),
		errorStyle:   r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderResult(view ResultView) string {
	var sb strings.Builder

	sb.WriteString(r.messageStyle.Render(view.Message))
	sb.WriteString("\n")
	sb.WriteString(r.pathStyle.Render(r.clip(config.ShortenPath(view.OrganizedRoot))))
	sb.WriteString("\n")

	if len(view.Counts) > 0 {
		sb.WriteString("\n")
		nameWidth := 0
		for _, c := range view.Counts {
			if len(c.Name) > nameWidth {
				nameWidth = len(c.Name)
			}
		}
		for _, c := range view.Counts {
			padding := strings.Repeat(" ", nameWidth-len(c.Name)+2)
			sb.WriteString("  ")
			sb.WriteString(r.nameStyle.Render(c.Name))
			sb.WriteString(padding)
			sb.WriteString(r.countStyle.Render(fmt.Sprintf("%d", c.Count)))
			sb.WriteString("\n")
		}
	}

	if view.HasErrors() {
		sb.WriteString("\n")
		sb.WriteString(r.errorStyle.Render(fmt.Sprintf("Errors (%d):", len(view.Errors))))
		sb.WriteString("\n")
		for _, e := range view.Errors {
			sb.WriteString("  ")
			sb.WriteString(r.errorStyle.Render("✗ " + e))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// clip shortens a long path line to the terminal width.
func (r *LipglossRenderer) clip(s string) string {
	if r.width <= 1 || len(s) <= r.width {
		return s
	}
	return s[:r.width-1] + "…"
}
