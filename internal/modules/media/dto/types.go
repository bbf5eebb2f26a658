package dto

type SourceOutput struct {
	URL       string
	Provider  string
	ID        string
	EmbedURL  string
	StreamURL string
	Playable  bool
}

type PlaybackOutput struct {
	Source   SourceOutput
	Status   string
	Failures int
}
