package youtube

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

const serviceName = "YouTube"

// Client reads format metadata straight from YouTube. It needs no API key
// and is used when METADATA_PROVIDER=youtube.
type Client struct {
	client *youtube.Client
}

// NewClient creates a new YouTube client
func NewClient(timeout time.Duration) *Client {
	httpClient := &http.Client{
		Timeout: timeout,
	}

	return &Client{
		client: &youtube.Client{
			HTTPClient: httpClient,
		},
	}
}

func (c *Client) Name() string {
	return serviceName
}

// GetVideoMetadata retrieves the title and every format YouTube reports.
// Formats whose stream URL cannot be deciphered are skipped.
func (c *Client) GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	video, err := c.client.GetVideoContext(ctx, videoID)
	if err != nil {
		var statusErr youtube.ErrUnexpectedStatusCode
		if errors.As(err, &statusErr) {
			return nil, utils.NewUpstreamProtocolError(serviceName, int(statusErr), "")
		}
		return nil, utils.NewUpstreamTransportError(serviceName, err)
	}

	metadata := &models.VideoMetadata{
		Title:   video.Title,
		Formats: make([]models.FormatCandidate, 0, len(video.Formats)),
	}

	for i := range video.Formats {
		format := &video.Formats[i]

		streamURL := format.URL
		if streamURL == "" {
			streamURL, err = c.client.GetStreamURLContext(ctx, video, format)
			if err != nil {
				utils.LogDebug(ctx, "Skipping format without stream URL", utils.Fields{
					"video_id": videoID,
					"itag":     format.ItagNo,
					"error":    err.Error(),
				})
				continue
			}
		}

		metadata.Formats = append(metadata.Formats, toCandidate(format, streamURL))
	}

	return metadata, nil
}

// toCandidate maps a YouTube format onto the provider-neutral candidate.
func toCandidate(format *youtube.Format, streamURL string) models.FormatCandidate {
	candidate := models.FormatCandidate{
		URL: streamURL,
	}

	if format.MimeType != "" {
		mimeType := format.MimeType
		candidate.MimeType = &mimeType
	}
	if format.QualityLabel != "" {
		label := format.QualityLabel
		candidate.QualityLabel = &label
	}

	hasVideo := format.Width > 0 || strings.HasPrefix(format.MimeType, "video/")
	hasAudio := format.AudioChannels > 0
	candidate.HasVideo = &hasVideo
	candidate.HasAudio = &hasAudio

	itag := format.ItagNo
	candidate.Itag = &itag

	return candidate
}
