package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"urlshortener/internal/service"
	"urlshortener/internal/types"
	"urlshortener/internal/validator"

	tele "gopkg.in/telebot.v4"
)

const shortenTimeout = 10 * time.Second

const (
	msgGreeting = "Hi! Send me a long link and I will shorten it for you."
	msgInvalid  = "That link is not valid. It must start with http:// or https:// and contain a domain."
	msgDown     = "That link does not seem to be available right now, try again later."
	msgUnsafe   = "That link was flagged as unsafe and will not be shortened."
	msgFailed   = "Could not create the link. Please try again."
)

type linkShortener interface {
	Shorten(ctx context.Context, req service.ShortenRequest) (*types.ShortURL, error)
}

type TelegramBot struct {
	tgBot     *tele.Bot
	shortener linkShortener
	logger    *slog.Logger
}

func NewTelegramBot(tgToken string, shortener *service.Shortener, logger *slog.Logger) (*TelegramBot, error) {
	pref := tele.Settings{
		Token:  tgToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	bot, err := tele.NewBot(pref)
	if err != nil {
		logger.Error("failed to initialize telegram bot", "error", err)
		return nil, err
	}

	return &TelegramBot{
		tgBot:     bot,
		shortener: shortener,
		logger:    logger,
	}, nil
}

func (b *TelegramBot) Start(ctx context.Context) error {
	b.logger.Info("Telegram bot started", "bot_username", b.tgBot.Me.Username)

	b.tgBot.Handle("/start", b.handleStart)
	b.tgBot.Handle(tele.OnText, b.handleMessage)

	go func() {
		<-ctx.Done()
		b.logger.Info("Telegram bot shutting down")
		b.tgBot.Stop()
	}()

	b.tgBot.Start()
	return nil
}

func (b *TelegramBot) handleStart(c tele.Context) error {
	b.logger.Debug("command /start received", "user_id", c.Sender().ID)
	return c.Send(msgGreeting)
}

func (b *TelegramBot) handleMessage(c tele.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), shortenTimeout)
	defer cancel()
	return c.Send(b.reply(ctx, c.Text(), c.Sender().ID))
}

// reply shortens text on behalf of a Telegram user and returns the answer.
func (b *TelegramBot) reply(ctx context.Context, text string, senderID int64) string {
	link := strings.TrimSpace(text)
	if !validator.IsValid(link) {
		b.logger.Warn("invalid url from telegram", "url", link, "user_id", senderID)
		return msgInvalid
	}

	su, err := b.shortener.Shorten(ctx, service.ShortenRequest{
		URL:   link,
		Owner: "tg:" + strconv.FormatInt(senderID, 10),
	})
	switch {
	case err == nil:
		return "Here is your short link:\n" + su.URI
	case errors.Is(err, service.ErrURLNotValid):
		return msgDown
	case errors.Is(err, service.ErrURLUnsafe):
		return msgUnsafe
	default:
		b.logger.Error("failed to create short link", "error", err)
		return msgFailed
	}
}
