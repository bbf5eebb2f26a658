package domain

import (
	"fmt"
	"regexp"
	"strings"
)

type Provider string

const (
	ProviderNone    Provider = ""
	ProviderYouTube Provider = "youtube"
	ProviderCanva   Provider = "canva"
	ProviderDrive   Provider = "drive"
)

// Source is a classified video reference.
type Source struct {
	URL       string
	Provider  Provider
	ID        string
	EmbedURL  string
	StreamURL string
}

func (s Source) Playable() bool {
	return s.EmbedURL != "" || s.StreamURL != ""
}

// Target is the address handed to a player: the embed page when there is
// one, otherwise the direct stream.
func (s Source) Target() string {
	if s.EmbedURL != "" {
		return s.EmbedURL
	}
	return s.StreamURL
}

var (
	youtubeID = regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	driveID   = regexp.MustCompile(`drive\.google\.com/file/d/([a-zA-Z0-9_-]+)`)
	canvaTail = regexp.MustCompile(`/(?:watch|edit).*`)
)

const canvaParams = "autoplay=1&muted=1&loop=1&controls=1"

// Classify recognises YouTube, Canva and Google Drive links. Anything else,
// including malformed links of those providers, yields a Source with no
// provider that is not playable.
func Classify(raw string) Source {
	raw = strings.TrimSpace(raw)
	src := Source{URL: raw}
	switch {
	case raw == "":
		return src
	case strings.Contains(raw, "drive.google.com"):
		m := driveID.FindStringSubmatch(raw)
		if m == nil {
			return src
		}
		src.Provider, src.ID = ProviderDrive, m[1]
		src.EmbedURL = fmt.Sprintf("https://drive.google.com/file/d/%s/preview", m[1])
		src.StreamURL = "https://drive.google.com/uc?export=download&id=" + m[1]
	case strings.Contains(raw, "youtube") || strings.Contains(raw, "youtu.be"):
		m := youtubeID.FindStringSubmatch(raw)
		if m == nil {
			return src
		}
		src.Provider, src.ID = ProviderYouTube, m[1]
		src.EmbedURL = fmt.Sprintf("https://www.youtube-nocookie.com/embed/%[1]s?autoplay=1&mute=1&loop=1&playlist=%[1]s&controls=1&modestbranding=1&rel=0&playsinline=1&enablejsapi=1", m[1])
	case strings.Contains(raw, "canva.com"):
		src.Provider = ProviderCanva
		src.ID = canvaDesignID(raw)
		embed := canvaTail.ReplaceAllString(raw, "/view?embed")
		if strings.Contains(embed, "?") {
			embed += "&" + canvaParams
		} else {
			embed += "?" + canvaParams
		}
		src.EmbedURL = embed
	}
	return src
}

func canvaDesignID(raw string) string {
	_, rest, ok := strings.Cut(raw, "/design/")
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, "/")
	return id
}
