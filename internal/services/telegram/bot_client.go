package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/denisAlshanov/clipgrab/internal/models"
	"github.com/denisAlshanov/clipgrab/internal/services/analyzer"
	"github.com/denisAlshanov/clipgrab/internal/services/youtube"
	"github.com/denisAlshanov/clipgrab/internal/utils"
)

const updateTimeout = 60

// BotClient answers /analyze and /download commands over the Telegram Bot
// API. It is started only when TELEGRAM_BOT_TOKEN is set.
type BotClient struct {
	bot      BotAPI
	analyzer QualityAnalyzer
	resolver LinkResolver
	history  HistoryRecorder
	stopOnce sync.Once
}

func NewBotClient(token string, analyzer QualityAnalyzer, resolver LinkResolver, history HistoryRecorder) (*BotClient, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return newBotClient(bot, analyzer, resolver, history), nil
}

func newBotClient(bot BotAPI, analyzer QualityAnalyzer, resolver LinkResolver, history HistoryRecorder) *BotClient {
	return &BotClient{
		bot:      bot,
		analyzer: analyzer,
		resolver: resolver,
		history:  history,
	}
}

func (c *BotClient) Connect(ctx context.Context) error {
	me, err := c.bot.GetMe()
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram Bot API: %w", err)
	}
	utils.LogInfo(ctx, "Connected to Telegram", utils.Fields{"bot": me.UserName})
	return nil
}

// Run handles updates until ctx is cancelled. Messages are handled one at a
// time.
func (c *BotClient) Run(ctx context.Context) error {
	config := tgbotapi.NewUpdate(0)
	config.Timeout = updateTimeout

	updates := c.bot.GetUpdatesChan(config)
	defer c.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			c.handleUpdate(ctx, update)
		}
	}
}

func (c *BotClient) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	message := update.Message
	if message == nil || message.Chat == nil {
		return
	}

	clientID := "telegram:" + strconv.FormatInt(message.Chat.ID, 10)
	ctx = utils.WithCorrelationID(ctx, utils.GenerateCorrelationID())
	ctx = utils.WithRequestID(ctx, utils.GenerateRequestID())
	ctx = utils.WithClientID(ctx, clientID)

	reply := c.replyTo(ctx, clientID, message)
	if reply == "" {
		return
	}

	msg := tgbotapi.NewMessage(message.Chat.ID, reply)
	msg.ReplyToMessageID = message.MessageID
	msg.DisableWebPagePreview = true
	if _, err := c.bot.Send(msg); err != nil {
		utils.LogError(ctx, "Failed to send Telegram reply", err, utils.Fields{"chat_id": message.Chat.ID})
	}
}

func (c *BotClient) replyTo(ctx context.Context, clientID string, message *tgbotapi.Message) string {
	if !message.IsCommand() {
		text := strings.TrimSpace(message.Text)
		if _, ok := youtube.ExtractVideoID(text); ok {
			return c.download(ctx, clientID, text)
		}
		return ""
	}

	utils.LogInfo(ctx, "Telegram command received", utils.Fields{"command": message.Command()})

	switch message.Command() {
	case CommandStart, CommandHelp:
		return helpText
	case CommandAnalyze:
		url, err := parseAnalyzeArgs(message.CommandArguments())
		if err != nil {
			return err.Error()
		}
		return c.analyze(ctx, clientID, url)
	case CommandDownload:
		return c.download(ctx, clientID, message.CommandArguments())
	default:
		return "Unknown command. Send /help for usage."
	}
}

func (c *BotClient) analyze(ctx context.Context, clientID, url string) string {
	videoID, _ := youtube.ExtractVideoID(url)
	entry := &models.HistoryEntry{
		ClientID:  clientID,
		Operation: models.OperationAnalyze,
		URL:       url,
		VideoID:   videoID,
	}

	analysis, err := c.analyzer.Analyze(ctx, url)
	if err != nil {
		appErr := utils.AsAppError(err)
		entry.Error = appErr.Message
		c.record(ctx, entry)
		return fmt.Sprintf("Analysis failed: %s\nYou can still use one of: %s",
			appErr.Message, strings.Join(models.DefaultQualities, ", "))
	}

	entry.Success = true
	c.record(ctx, entry)
	return formatAnalysis(analysis, analyzer.PreferredQuality(analysis.Qualities))
}

func (c *BotClient) download(ctx context.Context, clientID, args string) string {
	req, err := parseDownloadArgs(args)
	if err != nil {
		return err.Error()
	}

	videoID, _ := youtube.ExtractVideoID(req.URL)
	entry := &models.HistoryEntry{
		ClientID:     clientID,
		Operation:    models.OperationDownload,
		URL:          req.URL,
		VideoID:      videoID,
		Quality:      req.Quality,
		DownloadType: req.DownloadType,
	}

	result, err := c.resolver.Resolve(ctx, req)
	if err != nil {
		appErr := utils.AsAppError(err)
		entry.Error = appErr.Message
		c.record(ctx, entry)
		return "Download failed: " + appErr.Message
	}

	entry.Success = true
	c.record(ctx, entry)
	return formatDownload(result)
}

func (c *BotClient) record(ctx context.Context, entry *models.HistoryEntry) {
	if c.history == nil {
		return
	}
	if err := c.history.AddHistory(ctx, entry); err != nil {
		utils.LogError(ctx, "Failed to record history", err, utils.Fields{"operation": entry.Operation})
	}
}

// stop closes the update channel. The library panics on a second call.
func (c *BotClient) stop() {
	c.stopOnce.Do(c.bot.StopReceivingUpdates)
}

func (c *BotClient) Close() error {
	c.stop()
	return nil
}
