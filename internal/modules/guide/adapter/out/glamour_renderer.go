package out

import (
	"sync"

	"github.com/charmbracelet/glamour"

	guideout "chestdef/internal/modules/guide/port/out"
)

// GlamourRenderer keeps one term renderer per wrap width.
type GlamourRenderer struct {
	style     string
	mu        sync.Mutex
	renderers map[int]*glamour.TermRenderer
}

func NewGlamourRenderer(style string) guideout.Renderer {
	if style == "" {
		style = "dark"
	}
	return &GlamourRenderer{style: style, renderers: map[int]*glamour.TermRenderer{}}
}

func (g *GlamourRenderer) Render(markdown string, width int) (string, error) {
	if width < 0 {
		width = 0
	}
	r, err := g.renderer(width)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}

func (g *GlamourRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if r, ok := g.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(g.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	g.renderers[width] = r
	return r, nil
}
