package dto

// Page is a guide document as Markdown and as rendered terminal text.
type Page struct {
	Title    string
	Markdown string
	Rendered string
}
