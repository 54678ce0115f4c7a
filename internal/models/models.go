package models

import (
	"time"

	"github.com/google/uuid"
)

type DownloadType string

const (
	DownloadTypeVideoAudio DownloadType = "video_audio"
	DownloadTypeAudioOnly  DownloadType = "audio_only"
	DownloadTypeVideoOnly  DownloadType = "video_only"
)

func (t DownloadType) Valid() bool {
	switch t {
	case DownloadTypeVideoAudio, DownloadTypeAudioOnly, DownloadTypeVideoOnly:
		return true
	}
	return false
}

// QualityAuto means "no quality preference" and is omitted from file names.
const QualityAuto = "Auto"

// DefaultQualities is offered when quality analysis fails.
var DefaultQualities = []string{QualityAuto, "1080p (HD)", "720p", "480p", "360p", "Lowest"}

// FormatCandidate is one downloadable variant reported by a metadata source.
// Everything except URL is optional and provider specific, so absent fields
// stay nil instead of collapsing into zero values.
type FormatCandidate struct {
	URL          string  `json:"url"`
	QualityLabel *string `json:"qualityLabel,omitempty"`
	MimeType     *string `json:"mimeType,omitempty"`
	HasVideo     *bool   `json:"hasVideo,omitempty"`
	HasAudio     *bool   `json:"hasAudio,omitempty"`
	Container    *string `json:"container,omitempty"`
	Itag         *int    `json:"itag,omitempty"`
}

// VideoMetadata is what a metadata source returns for one video.
type VideoMetadata struct {
	Title   string
	Formats []FormatCandidate
}

type QualityAnalysis struct {
	Platform  string   `json:"platform"`
	Qualities []string `json:"qualities"`
}

type AnalyzeRequest struct {
	URL string `json:"url" binding:"required"`
}

type DownloadRequest struct {
	URL          string       `json:"url" binding:"required"`
	Quality      string       `json:"quality" binding:"required"`
	Platform     string       `json:"platform"`
	DownloadType DownloadType `json:"download_type" binding:"required"`
}

type DownloadResult struct {
	DownloadURL   string `json:"download_url"`
	FileName      string `json:"file_name"`
	Message       string `json:"message"`
	LowConfidence bool   `json:"low_confidence"`
	Warning       string `json:"warning,omitempty"`
}

// AnalyzeResponse and DownloadResponse are the {success, data?, error?}
// envelopes returned to clients.
type AnalyzeResponse struct {
	Success          bool             `json:"success"`
	Data             *QualityAnalysis `json:"data,omitempty"`
	Error            string           `json:"error,omitempty"`
	Code             string           `json:"code,omitempty"`
	DefaultQualities []string         `json:"default_qualities,omitempty"`
	PreferredQuality string           `json:"preferred_quality,omitempty"`
	RequestID        string           `json:"request_id,omitempty"`
}

type DownloadResponse struct {
	Success   bool            `json:"success"`
	Data      *DownloadResult `json:"data,omitempty"`
	Error     string          `json:"error,omitempty"`
	Code      string          `json:"code,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
}

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type Locale string

const (
	LocaleEN Locale = "EN"
	LocaleES Locale = "ES"
	LocaleFR Locale = "FR"
)

// SupportedLocales maps locale codes to display names.
var SupportedLocales = map[Locale]string{
	LocaleEN: "English",
	LocaleES: "Español",
	LocaleFR: "Français",
}

type Preferences struct {
	ClientID  string    `json:"client_id" bson:"client_id" db:"client_id"`
	Theme     Theme     `json:"theme" bson:"theme" db:"theme"`
	Locale    Locale    `json:"locale" bson:"locale" db:"locale"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at" db:"updated_at"`
}

type UpdatePreferencesRequest struct {
	Theme  *Theme  `json:"theme,omitempty"`
	Locale *Locale `json:"locale,omitempty"`
}

type Operation string

const (
	OperationAnalyze  Operation = "analyze"
	OperationDownload Operation = "download"
)

type HistoryEntry struct {
	ID           uuid.UUID    `json:"id" bson:"_id" db:"id"`
	ClientID     string       `json:"client_id,omitempty" bson:"client_id" db:"client_id"`
	Operation    Operation    `json:"operation" bson:"operation" db:"operation"`
	URL          string       `json:"url" bson:"url" db:"url"`
	VideoID      string       `json:"video_id,omitempty" bson:"video_id" db:"video_id"`
	Quality      string       `json:"quality,omitempty" bson:"quality" db:"quality"`
	DownloadType DownloadType `json:"download_type,omitempty" bson:"download_type" db:"download_type"`
	Success      bool         `json:"success" bson:"success" db:"success"`
	Error        string       `json:"error,omitempty" bson:"error" db:"error"`
	CreatedAt    time.Time    `json:"created_at" bson:"created_at" db:"created_at"`
}

type PaginationOptions struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	ClientID string `json:"client_id,omitempty"`
}

type HistoryListResponse struct {
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Entries []HistoryEntry `json:"entries"`
}
