package out

// Renderer turns Markdown into styled terminal text wrapped at width.
type Renderer interface {
	Render(markdown string, width int) (string, error)
}
