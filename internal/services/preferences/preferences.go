package preferences

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/denisAlshanov/clipgrab/internal/database"
	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

const (
	DefaultTheme  = models.ThemeLight
	DefaultLocale = models.LocaleEN
)

// Order matters: the matcher falls back to the first entry.
var supportedTags = []language.Tag{language.English, language.Spanish, language.French}

var tagLocales = []models.Locale{models.LocaleEN, models.LocaleES, models.LocaleFR}

var localeMatcher = language.NewMatcher(supportedTags)

// Hints are the client-side signals used when nothing is stored yet.
type Hints struct {
	// ColorScheme is the Sec-CH-Prefers-Color-Scheme header value.
	ColorScheme string
	// AcceptLanguage is the raw Accept-Language header value.
	AcceptLanguage string
}

type Service struct {
	store database.Store
}

func NewService(store database.Store) *Service {
	return &Service{
		store: store,
	}
}

// Get returns the stored preferences for the client. Without stored state it
// derives theme and locale from the hints and falls back to light/EN. The
// derived value is not persisted.
func (s *Service) Get(ctx context.Context, clientID string, hints Hints) (*models.Preferences, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, utils.NewValidationError("X-Client-ID header is required", map[string]interface{}{"field": "X-Client-ID"})
	}

	stored, err := s.store.GetPreferences(ctx, clientID)
	if err != nil {
		utils.LogError(ctx, "Failed to load preferences", err, utils.Fields{"client_id": clientID})
		return nil, utils.NewDatabaseError(err)
	}
	if stored != nil {
		return stored, nil
	}

	return &models.Preferences{
		ClientID: clientID,
		Theme:    ThemeFromHint(hints.ColorScheme),
		Locale:   LocaleFromHint(hints.AcceptLanguage),
	}, nil
}

// Update applies the non-nil fields of req on top of the current preferences
// and persists the result.
func (s *Service) Update(ctx context.Context, clientID string, hints Hints, req *models.UpdatePreferencesRequest) (*models.Preferences, error) {
	if req == nil || (req.Theme == nil && req.Locale == nil) {
		return nil, utils.NewValidationError("At least one of theme or locale is required", nil)
	}
	if req.Theme != nil && !ValidTheme(*req.Theme) {
		return nil, utils.NewValidationError("Invalid theme", map[string]interface{}{
			"field":    "theme",
			"provided": *req.Theme,
			"allowed":  []models.Theme{models.ThemeLight, models.ThemeDark},
		})
	}
	if req.Locale != nil && !ValidLocale(*req.Locale) {
		return nil, utils.NewValidationError("Unsupported locale", map[string]interface{}{
			"field":    "locale",
			"provided": *req.Locale,
			"allowed":  tagLocales,
		})
	}

	prefs, err := s.Get(ctx, clientID, hints)
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.Locale != nil {
		prefs.Locale = *req.Locale
	}

	if err := s.store.SavePreferences(ctx, prefs); err != nil {
		utils.LogError(ctx, "Failed to save preferences", err, utils.Fields{"client_id": clientID})
		return nil, utils.NewDatabaseError(err)
	}

	utils.LogInfo(ctx, "Preferences updated", utils.Fields{
		"client_id": clientID,
		"theme":     prefs.Theme,
		"locale":    prefs.Locale,
	})

	return prefs, nil
}

func ValidTheme(theme models.Theme) bool {
	return theme == models.ThemeLight || theme == models.ThemeDark
}

func ValidLocale(locale models.Locale) bool {
	_, ok := models.SupportedLocales[locale]
	return ok
}

// ThemeFromHint maps a Sec-CH-Prefers-Color-Scheme value to a theme.
func ThemeFromHint(hint string) models.Theme {
	hint = strings.ToLower(strings.Trim(strings.TrimSpace(hint), `"`))
	if hint == string(models.ThemeDark) {
		return models.ThemeDark
	}
	return DefaultTheme
}

// LocaleFromHint picks the best supported locale for an Accept-Language
// header. Unparseable or unmatched headers yield EN.
func LocaleFromHint(acceptLanguage string) models.Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return DefaultLocale
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}

	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return tagLocales[index]
}
