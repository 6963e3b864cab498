package platform

import (
	"net/url"
	"strings"
)

// Recognized YouTube hosts
const (
	YouTubeHost      = "youtube.com"
	YouTubeWWWHost   = "www.youtube.com"
	YouTubeShortHost = "youtu.be"
	WatchPath        = "/watch"
	VideoIDParam     = "v"
)

// ExtractVideoID returns the YouTube video id of rawURL. It recognizes
// youtube.com/watch?v=<id> and youtu.be/<id>; any other shape yields false.
func ExtractVideoID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}

	switch u.Host {
	case YouTubeWWWHost, YouTubeHost:
		if u.Path != WatchPath {
			return "", false
		}
		id := u.Query().Get(VideoIDParam)
		return id, id != ""
	case YouTubeShortHost:
		id := strings.TrimPrefix(u.Path, "/")
		return id, id != ""
	}
	return "", false
}
