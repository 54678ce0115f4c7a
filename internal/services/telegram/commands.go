package telegram

import (
	"fmt"
	"strings"

	"github.com/denisAlshanov/clipgrab/internal/models"
)

const (
	CommandStart    = "start"
	CommandHelp     = "help"
	CommandAnalyze  = "analyze"
	CommandDownload = "download"
)

const helpText = `Send me a video link and I will find a download link for it.

/analyze <url> - list the qualities the video is offered in
/download <url> [video_audio|audio_only|video_only] [quality] - get a direct link

A bare YouTube link is treated as /download with video and audio.`

// typeAliases lets chat users type short names for download types.
var typeAliases = map[string]models.DownloadType{
	"video_audio": models.DownloadTypeVideoAudio,
	"video":       models.DownloadTypeVideoAudio,
	"audio_only":  models.DownloadTypeAudioOnly,
	"audio":       models.DownloadTypeAudioOnly,
	"mp3":         models.DownloadTypeAudioOnly,
	"video_only":  models.DownloadTypeVideoOnly,
	"mute":        models.DownloadTypeVideoOnly,
}

// parseDownloadArgs reads "<url> [type] [quality...]". The quality may
// contain spaces, e.g. "1080p (HD)".
func parseDownloadArgs(args string) (*models.DownloadRequest, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, fmt.Errorf("usage: /download <url> [video_audio|audio_only|video_only] [quality]")
	}

	req := &models.DownloadRequest{
		URL:          fields[0],
		Quality:      models.QualityAuto,
		DownloadType: models.DownloadTypeVideoAudio,
	}

	rest := fields[1:]
	if len(rest) > 0 {
		downloadType, ok := typeAliases[strings.ToLower(rest[0])]
		if !ok {
			return nil, fmt.Errorf("unknown download type %q, use video_audio, audio_only or video_only", rest[0])
		}
		req.DownloadType = downloadType
		rest = rest[1:]
	}
	if len(rest) > 0 {
		req.Quality = strings.Join(rest, " ")
	}

	return req, nil
}

func parseAnalyzeArgs(args string) (string, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return "", fmt.Errorf("usage: /analyze <url>")
	}
	return fields[0], nil
}

func formatAnalysis(analysis *models.QualityAnalysis, preferred string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Platform: %s\n", analysis.Platform)
	if len(analysis.Qualities) == 0 {
		b.WriteString("No quality options reported.")
		return b.String()
	}
	b.WriteString("Qualities:\n")
	for _, quality := range analysis.Qualities {
		marker := "-"
		if quality == preferred {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, quality)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatDownload(result *models.DownloadResult) string {
	var b strings.Builder
	b.WriteString(result.Message)
	fmt.Fprintf(&b, "\nFile: %s\n%s", result.FileName, result.DownloadURL)
	if result.Warning != "" {
		fmt.Fprintf(&b, "\n\nWarning: %s", result.Warning)
	}
	return b.String()
}
