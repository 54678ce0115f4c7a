package youtube

import (
	"net/url"
	"regexp"
)

// VideoIDLength is the fixed length of a YouTube video ID.
const VideoIDLength = 11

// videoIDPattern captures the token after the last recognised marker: short
// links, /v/, /u/x/, /embed/, /shorts/, /live/, watch?v= and &v=.
var videoIDPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|shorts/|live/|watch\?v=|&v=)([^#&?]*).*`)

// ExtractVideoID returns the 11-character video ID embedded in rawURL.
// The second result is false when no well-formed ID is present; a truncated
// or oversized token is never returned.
func ExtractVideoID(rawURL string) (string, bool) {
	if rawURL == "" {
		return "", false
	}

	if match := videoIDPattern.FindStringSubmatch(rawURL); len(match) > 2 && len(match[2]) == VideoIDLength {
		return match[2], true
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	query := parsed.Query()
	for _, key := range []string{"v", "id"} {
		if id := query.Get(key); len(id) == VideoIDLength {
			return id, true
		}
	}

	return "", false
}
