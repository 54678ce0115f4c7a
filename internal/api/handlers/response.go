package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/database"
	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

// ClientIDHeader identifies a browser or device across requests.
const ClientIDHeader = "X-Client-ID"

// errorResponse writes the generic error body used by the non-video
// endpoints.
func errorResponse(c *gin.Context, err *utils.AppError) {
	c.JSON(err.StatusCode, gin.H{
		"error":      err,
		"request_id": c.GetString("request_id"),
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

// appErrorFrom logs errors that carry no code and maps them to an internal
// error.
func appErrorFrom(ctx context.Context, message string, err error) *utils.AppError {
	appErr := utils.AsAppError(err)
	if appErr.Code == utils.ErrorCodeInternalError {
		utils.LogError(ctx, message, err)
	}
	return appErr
}

// recordHistory stores an audit entry. Failures are logged and never change
// the response.
func recordHistory(ctx context.Context, store database.Store, entry *models.HistoryEntry) {
	if store == nil {
		return
	}
	if err := store.AddHistory(ctx, entry); err != nil {
		utils.LogError(ctx, "Failed to record history", err, utils.Fields{
			"operation": entry.Operation,
		})
	}
}
