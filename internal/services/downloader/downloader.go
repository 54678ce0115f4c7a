package downloader

import (
	"context"
	"fmt"
	"strings"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/services/formats"
	"github.com/denisAlshanov/clipgrab/internal/services/youtube"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

const lowConfidenceWarning = "The download service did not say which formats carry audio or video; the first available format was used and may not match the requested type."

// configChecker is implemented by sources that need credentials. It lets
// Resolve reject a missing key before doing anything else.
type configChecker interface {
	CheckConfigured() error
}

// Downloader turns a download request into a direct media link. Each call is
// independent: one metadata fetch, one selection, no retries.
type Downloader struct {
	source youtube.MetadataSource
}

func NewDownloader(source youtube.MetadataSource) *Downloader {
	return &Downloader{
		source: source,
	}
}

// Resolve runs id extraction, metadata fetch, format selection and filename
// derivation in order. The first failing stage ends the call.
func (d *Downloader) Resolve(ctx context.Context, req *models.DownloadRequest) (*models.DownloadResult, error) {
	if checker, ok := d.source.(configChecker); ok {
		if err := checker.CheckConfigured(); err != nil {
			return nil, err
		}
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	videoID, ok := youtube.ExtractVideoID(req.URL)
	if !ok {
		return nil, utils.NewInvalidLinkError(req.URL)
	}

	fields := utils.Fields{
		"video_id":      videoID,
		"download_type": req.DownloadType,
		"quality":       req.Quality,
		"source":        d.source.Name(),
	}
	utils.LogInfo(ctx, "Resolving download", fields)

	metadata, err := d.source.GetVideoMetadata(ctx, videoID)
	if err != nil {
		utils.LogError(ctx, "Failed to fetch video metadata", err, fields)
		return nil, err
	}

	selection, err := formats.Select(metadata.Formats, req.DownloadType)
	if err != nil {
		utils.LogError(ctx, "No suitable format found", err, utils.Fields{
			"video_id":      videoID,
			"download_type": req.DownloadType,
			"formats":       len(metadata.Formats),
		})
		return nil, err
	}

	title := metadata.Title
	if strings.TrimSpace(title) == "" {
		title = videoID
	}

	result := &models.DownloadResult{
		DownloadURL:   selection.Candidate.URL,
		FileName:      formats.DeriveFilename(title, req.Quality, req.DownloadType, selection.Candidate),
		Message:       fmt.Sprintf("Download for \"%s\" prepared. Type: %s, Quality: %s.", title, req.DownloadType, req.Quality),
		LowConfidence: selection.LowConfidence,
	}

	if selection.LowConfidence {
		result.Warning = lowConfidenceWarning
		utils.LogWarn(ctx, "Low-confidence format selection", utils.Fields{
			"video_id":      videoID,
			"download_type": req.DownloadType,
			"rule":          selection.Rule,
		})
	}

	utils.LogInfo(ctx, "Download resolved", utils.Fields{
		"video_id":  videoID,
		"rule":      selection.Rule,
		"index":     selection.Index,
		"file_name": result.FileName,
	})

	return result, nil
}

func validateRequest(req *models.DownloadRequest) error {
	if req == nil {
		return utils.NewValidationError("Download request is required", nil)
	}
	if strings.TrimSpace(req.URL) == "" {
		return utils.NewValidationError("A video URL is required", map[string]interface{}{"field": "url"})
	}
	if strings.TrimSpace(req.Quality) == "" {
		return utils.NewValidationError("A quality preference is required", map[string]interface{}{"field": "quality"})
	}
	if !req.DownloadType.Valid() {
		return utils.NewValidationError("Invalid download type", map[string]interface{}{
			"field":    "download_type",
			"provided": req.DownloadType,
			"allowed": []models.DownloadType{
				models.DownloadTypeVideoAudio,
				models.DownloadTypeAudioOnly,
				models.DownloadTypeVideoOnly,
			},
		})
	}
	return nil
}
