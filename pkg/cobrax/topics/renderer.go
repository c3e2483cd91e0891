package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats topic content for terminal display
type Renderer interface {
	// Render takes raw content and the topic file extension and returns
	// the text to print
	Render(content string, format string) string
}

// PlainRenderer returns content as-is
type PlainRenderer struct{}

// Render returns the content unchanged
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}

// Glamour style names understood by GlamourRenderer
const (
	StyleAuto  = "auto"
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // one of the Style constants, or a path to a JSON style
	Width int    // word wrap width, 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer with the given style
func NewGlamourRenderer(style string) *GlamourRenderer {
	return &GlamourRenderer{Style: style}
}

// Render converts markdown to terminal output. Other formats and rendering
// failures return the content unchanged.
func (r *GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}

	var options []glamour.TermRendererOption
	switch r.Style {
	case "", StyleAuto:
		options = append(options, glamour.WithAutoStyle())
	case StyleDark, StyleLight, StyleNoTTY:
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
