package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/services/preferences"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

type PreferencesHandler struct {
	service *preferences.Service
}

func NewPreferencesHandler(service *preferences.Service) *PreferencesHandler {
	return &PreferencesHandler{
		service: service,
	}
}

// GetPreferences godoc
// @Summary Get theme and locale
// @Description Return the stored preferences for the client, or values derived from the Sec-CH-Prefers-Color-Scheme and Accept-Language headers when nothing is stored.
// @Tags preferences
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Success 200 {object} models.Preferences
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/preferences [get]
// @Security ApiKeyAuth
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	ctx := c.Request.Context()

	// Ask the browser to send the color scheme hint on later requests.
	c.Header("Accept-CH", "Sec-CH-Prefers-Color-Scheme")

	prefs, err := h.service.Get(ctx, c.GetHeader(ClientIDHeader), hintsFrom(c))
	if err != nil {
		errorResponse(c, appErrorFrom(ctx, "Failed to get preferences", err))
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferences godoc
// @Summary Update theme and/or locale
// @Description Change the client's theme (light, dark) or locale (EN, ES, FR). Omitted fields keep their current value.
// @Tags preferences
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client identifier"
// @Param request body models.UpdatePreferencesRequest true "Fields to change"
// @Success 200 {object} models.Preferences
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/preferences [put]
// @Security ApiKeyAuth
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, utils.NewValidationError("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		}))
		return
	}

	prefs, err := h.service.Update(ctx, c.GetHeader(ClientIDHeader), hintsFrom(c), &req)
	if err != nil {
		errorResponse(c, appErrorFrom(ctx, "Failed to update preferences", err))
		return
	}

	c.JSON(http.StatusOK, prefs)
}

// GetLocales godoc
// @Summary List supported locales
// @Tags preferences
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/preferences/locales [get]
// @Security ApiKeyAuth
func (h *PreferencesHandler) GetLocales(c *gin.Context) {
	c.JSON(http.StatusOK, models.SupportedLocales)
}

func hintsFrom(c *gin.Context) preferences.Hints {
	return preferences.Hints{
		ColorScheme:    c.GetHeader("Sec-CH-Prefers-Color-Scheme"),
		AcceptLanguage: c.GetHeader("Accept-Language"),
	}
}
