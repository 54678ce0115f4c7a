package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/database"
	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/services/analyzer"
	"github.com/denisAlshanov/clipgrab/internal/services/youtube"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

type QualityAnalyzer interface {
	Analyze(ctx context.Context, url string) (*models.QualityAnalysis, error)
}

type LinkResolver interface {
	Resolve(ctx context.Context, req *models.DownloadRequest) (*models.DownloadResult, error)
}

type VideoHandler struct {
	analyzer QualityAnalyzer
	resolver LinkResolver
	store    database.Store
}

func NewVideoHandler(analyzer QualityAnalyzer, resolver LinkResolver, store database.Store) *VideoHandler {
	return &VideoHandler{
		analyzer: analyzer,
		resolver: resolver,
		store:    store,
	}
}

// Analyze godoc
// @Summary Analyze a video URL
// @Description Identify the hosting platform and the quality options it offers. On failure the response still carries the default quality list.
// @Tags video
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client identifier used for history"
// @Param request body models.AnalyzeRequest true "Video URL"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {object} models.AnalyzeResponse
// @Failure 500 {object} models.AnalyzeResponse
// @Failure 502 {object} models.AnalyzeResponse
// @Router /api/v1/video/analyze [post]
// @Security ApiKeyAuth
func (h *VideoHandler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.analyzeFailure(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	videoID, _ := youtube.ExtractVideoID(req.URL)
	entry := &models.HistoryEntry{
		ClientID:  c.GetHeader(ClientIDHeader),
		Operation: models.OperationAnalyze,
		URL:       req.URL,
		VideoID:   videoID,
	}

	analysis, err := h.analyzer.Analyze(ctx, req.URL)
	if err != nil {
		appErr := appErrorFrom(ctx, "Failed to analyze video", err)
		entry.Error = appErr.Message
		recordHistory(ctx, h.store, entry)
		h.analyzeFailure(c, appErr)
		return
	}

	entry.Success = true
	recordHistory(ctx, h.store, entry)

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Success:          true,
		Data:             analysis,
		PreferredQuality: analyzer.PreferredQuality(analysis.Qualities),
		RequestID:        c.GetString("request_id"),
	})
}

// Download godoc
// @Summary Resolve a direct download link
// @Description Fetch the format list for a YouTube video, pick the format matching the download type and return its link with a suggested file name.
// @Tags video
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client identifier used for history"
// @Param request body models.DownloadRequest true "Download request"
// @Success 200 {object} models.DownloadResponse
// @Failure 400 {object} models.DownloadResponse
// @Failure 422 {object} models.DownloadResponse
// @Failure 500 {object} models.DownloadResponse
// @Failure 502 {object} models.DownloadResponse
// @Router /api/v1/video/download [post]
// @Security ApiKeyAuth
func (h *VideoHandler) Download(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.DownloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.downloadFailure(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	videoID, _ := youtube.ExtractVideoID(req.URL)
	entry := &models.HistoryEntry{
		ClientID:     c.GetHeader(ClientIDHeader),
		Operation:    models.OperationDownload,
		URL:          req.URL,
		VideoID:      videoID,
		Quality:      req.Quality,
		DownloadType: req.DownloadType,
	}

	result, err := h.resolver.Resolve(ctx, &req)
	if err != nil {
		appErr := appErrorFrom(ctx, "Failed to resolve download", err)
		entry.Error = appErr.Message
		recordHistory(ctx, h.store, entry)
		h.downloadFailure(c, appErr)
		return
	}

	entry.Success = true
	recordHistory(ctx, h.store, entry)

	c.JSON(http.StatusOK, models.DownloadResponse{
		Success:   true,
		Data:      result,
		RequestID: c.GetString("request_id"),
	})
}

func (h *VideoHandler) analyzeFailure(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, models.AnalyzeResponse{
		Success:          false,
		Error:            err.Message,
		Code:             string(err.Code),
		DefaultQualities: models.DefaultQualities,
		PreferredQuality: analyzer.PreferredQuality(models.DefaultQualities),
		RequestID:        c.GetString("request_id"),
	})
}

func (h *VideoHandler) downloadFailure(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, models.DownloadResponse{
		Success:   false,
		Error:     err.Message,
		Code:      string(err.Code),
		RequestID: c.GetString("request_id"),
	})
}
