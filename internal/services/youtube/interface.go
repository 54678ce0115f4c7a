package youtube

import (
	"context"

	"github.com/denisAlshanov/clipgrab/internal/models"
)

// MetadataSource resolves a video ID into its title and downloadable formats.
type MetadataSource interface {
	// GetVideoMetadata fetches the format list for a single video
	GetVideoMetadata(ctx context.Context, videoID string) (*models.VideoMetadata, error)

	// Name identifies the source in logs and error messages
	Name() string
}
