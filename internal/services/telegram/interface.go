package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/denisAlshanov/clipgrab/internal/models"
)

// BotAPI is the subset of *tgbotapi.BotAPI the bot uses.
type BotAPI interface {
	GetMe() (tgbotapi.User, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type QualityAnalyzer interface {
	Analyze(ctx context.Context, url string) (*models.QualityAnalysis, error)
}

type LinkResolver interface {
	Resolve(ctx context.Context, req *models.DownloadRequest) (*models.DownloadResult, error)
}

// HistoryRecorder stores bot requests next to the HTTP ones.
type HistoryRecorder interface {
	AddHistory(ctx context.Context, entry *models.HistoryEntry) error
}
