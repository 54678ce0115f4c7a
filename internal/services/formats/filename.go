package formats

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/denisAlshanov/clipgrab/internal/models"
)

var (
	unsafeTitleChars = regexp.MustCompile(`[^a-zA-Z0-9_\-\s]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	urlExtension     = regexp.MustCompile(`\.([a-zA-Z0-9]+)(\?|$)`)
)

// knownMimeExtensions is checked in order against the MIME type.
var knownMimeExtensions = []string{"mp4", "webm", "mp3", "aac", "ogg"}

// SanitizeTitle replaces every character outside [A-Za-z0-9_-] and
// whitespace with '_' and then turns whitespace runs into a single '_'.
// The output is a fixed point: sanitizing it again changes nothing.
func SanitizeTitle(title string) string {
	safe := unsafeTitleChars.ReplaceAllString(title, "_")
	return whitespaceRuns.ReplaceAllString(safe, "_")
}

// Extension picks the file extension for a candidate: the explicit
// container, else a known MIME subtype, else the URL suffix. The default
// is mp4, or mp3 for audio-only downloads.
func Extension(candidate *models.FormatCandidate, downloadType models.DownloadType) string {
	extension := "mp4"
	if downloadType == models.DownloadTypeAudioOnly {
		extension = "mp3"
	}
	if candidate == nil {
		return extension
	}

	switch {
	case candidate.Container != nil && *candidate.Container != "":
		return *candidate.Container
	case candidate.MimeType != nil && *candidate.MimeType != "":
		for _, known := range knownMimeExtensions {
			if strings.Contains(*candidate.MimeType, known) {
				return known
			}
		}
	case candidate.URL != "":
		if match := urlExtension.FindStringSubmatch(candidate.URL); len(match) > 1 {
			return match[1]
		}
	}

	return extension
}

// DeriveFilename composes "{title}{_quality}_{downloadType}.{ext}" in lower
// case. The quality part is left out for Auto.
func DeriveFilename(title, quality string, downloadType models.DownloadType, candidate *models.FormatCandidate) string {
	qualitySuffix := ""
	if quality != models.QualityAuto {
		qualitySuffix = "_" + whitespaceRuns.ReplaceAllString(quality, "")
	}

	name := fmt.Sprintf("%s%s_%s.%s",
		SanitizeTitle(title),
		qualitySuffix,
		downloadType,
		Extension(candidate, downloadType),
	)
	return strings.ToLower(name)
}
