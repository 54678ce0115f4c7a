package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/database"
	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

type HistoryHandler struct {
	store database.Store
}

func NewHistoryHandler(store database.Store) *HistoryHandler {
	return &HistoryHandler{
		store: store,
	}
}

// GetHistory godoc
// @Summary List past analyze and download requests
// @Description Newest first. When X-Client-ID is sent only that client's entries are returned.
// @Tags history
// @Produce json
// @Param X-Client-ID header string false "Client identifier"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.HistoryListResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/history [get]
// @Security ApiKeyAuth
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	ctx := c.Request.Context()

	// Parse pagination parameters
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	entries, total, err := h.store.ListHistory(ctx, models.PaginationOptions{
		Page:     page,
		Limit:    limit,
		ClientID: c.GetHeader(ClientIDHeader),
	})
	if err != nil {
		utils.LogError(ctx, "Failed to list history", err)
		errorResponse(c, utils.NewDatabaseError(err))
		return
	}

	c.JSON(http.StatusOK, models.HistoryListResponse{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Entries: entries,
	})
}
