package editfile

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/editfile/pkg/cobrax/topics"
	"github.com/arthur-debert/editfile/pkg/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

// topicRenderer picks the glamour style from --color when a topic is shown
type topicRenderer struct {
	a *app
}

func (r topicRenderer) Render(content string, format string) string {
	style := topics.StyleAuto
	switch r.a.color {
	case config.ColorNever:
		style = topics.StyleNoTTY
	case config.ColorAlways:
		style = topics.StyleDark
	}
	return topics.NewGlamourRenderer(style).Render(content, format)
}

// installTopics adds the embedded help topics to root
func installTopics(root *cobra.Command, a *app) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m, err := topics.New(sub, topics.Options{Renderer: topicRenderer{a: a}})
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
		return
	}
	m.Install(root)
	root.SetHelpCommandGroupID("misc")
}
