package components

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	rendererMu    sync.Mutex
	rendererWidth int
	renderer      *glamour.TermRenderer
)

// RenderMarkdown renders Markdown for terminal display at the given
// wrap width. It returns the raw content when rendering fails, so a
// lesson is always readable.
func RenderMarkdown(content string, width int) string {
	if width < 20 {
		width = 20
	}

	rendererMu.Lock()
	defer rendererMu.Unlock()

	if renderer == nil || rendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return content
		}
		renderer = r
		rendererWidth = width
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
