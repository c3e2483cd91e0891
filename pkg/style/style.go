// Package style renders the few styled lines editfile prints: per-resource
// status lines, diffs and errors.
package style

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color modes, matching the output.color configuration values
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Styler renders styled text for one output stream
type Styler struct {
	renderer *lipgloss.Renderer

	success lipgloss.Style
	failure lipgloss.Style
	pending lipgloss.Style
	muted   lipgloss.Style
	path    lipgloss.Style
	hunk    lipgloss.Style
}

// New returns a Styler writing for w. In auto mode colors are used only when
// w is a terminal with color support and NO_COLOR is unset.
func New(w io.Writer, mode string) *Styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(detectProfile(w, mode))

	return &Styler{
		renderer: r,
		success:  r.NewStyle().Foreground(SuccessColor).Bold(true),
		failure:  r.NewStyle().Foreground(ErrorColor).Bold(true),
		pending:  r.NewStyle().Foreground(PendingColor).Bold(true),
		muted:    r.NewStyle().Foreground(MutedColor),
		path:     r.NewStyle().Foreground(PathColor).Italic(true),
		hunk:     r.NewStyle().Foreground(HunkColor),
	}
}

func detectProfile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).ColorProfile()
}

// Colored reports whether output carries escape sequences
func (s *Styler) Colored() bool {
	return s.renderer.ColorProfile() != termenv.Ascii
}

// Status renders a resource status word. Statuses that changed the file are
// green, previews amber, errors red and everything else muted.
func (s *Styler) Status(status string) string {
	switch {
	case status == "created" || status == "destroyed":
		return s.success.Render(status)
	case strings.HasPrefix(status, "would-"):
		return s.pending.Render(status)
	case status == "error":
		return s.failure.Render(status)
	default:
		return s.muted.Render(status)
	}
}

// Path renders a file path
func (s *Styler) Path(p string) string {
	return s.path.Render(p)
}

// Error renders an error message
func (s *Styler) Error(msg string) string {
	return s.failure.Render(msg)
}

// Diff colors a unified diff line by line
func (s *Styler) Diff(text string) string {
	if !s.Colored() || text == "" {
		return text
	}

	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			body = s.muted.Render(body)
		case strings.HasPrefix(body, "@@"):
			body = s.hunk.Render(body)
		case strings.HasPrefix(body, "+"):
			body = s.success.UnsetBold().Render(body)
		case strings.HasPrefix(body, "-"):
			body = s.failure.UnsetBold().Render(body)
		}
		b.WriteString(body)
		if strings.HasSuffix(line, "\n") {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
