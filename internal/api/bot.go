package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"news-detector/config"
	app "news-detector/internal/application"
	"news-detector/internal/container"
)

const (
	msgStart = `👋 Привет! Я присылаю краткие сводки свежих новостей.

✅ Вы подписаны на сводки в этом чате.

📋 Команды:
/settings — параметры сводок
/stop — отписаться
/help — справка`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /start, чтобы подписать чат на сводки
2️⃣ Бот периодически проверяет источники новостей
3️⃣ Новые материалы приходят сюда в виде короткой сводки

📋 Команды:
/start — подписаться
/stop — отписаться
/settings — параметры сводок`

	msgStopped        = "🔕 Вы отписались от сводок. Отправьте /start, чтобы подписаться снова."
	msgUnknownCommand = "❓ Неизвестная команда. Используйте /help для справки."
	msgUseCommands    = "📋 Я понимаю только команды. Используйте /help для справки."
	msgInternalError  = "⚠️ Что-то пошло не так. Попробуйте позже."

	msgSettings = `⚙️ Параметры сводок:

⏱ Проверка новостей: каждые %d мин.
📏 Длина сводки: от %d до %d символов
📬 Статус подписки: %s
👥 Активных подписчиков: %d`
)

// Bot представляет Telegram-бота
type Bot struct {
	api           *tgbotapi.BotAPI
	cfg           config.Config
	subscriptions *app.SubscriptionService
	log           *log.Logger
}

// NewBot создаёт нового бота и авторизуется по токену из конфигурации
func NewBot(cfg config.Config, c *container.Container, logger *log.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken())
	if err != nil {
		return nil, fmt.Errorf("authorize bot: %w", err)
	}
	api.Debug = logger.IsLevelEnabled(log.DebugLevel)

	logger.WithField("account", api.Self.UserName).Info("Authorized on Telegram")

	return &Bot{
		api:           api,
		cfg:           cfg,
		subscriptions: c.SubscriptionService,
		log:           logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Сообщения каналов приходят без отправителя
	if msg.From == nil {
		return
	}

	if !msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, msgUseCommands)
		return
	}

	b.sendMessage(msg.Chat.ID, b.handleCommand(ctx, msg.Command(), msg.From.ID, msg.Chat.ID))
}

// handleCommand выполняет команду и возвращает текст ответа
func (b *Bot) handleCommand(ctx context.Context, command string, userID, chatID int64) string {
	logger := b.log.WithFields(log.Fields{
		"command": command,
		"chat_id": chatID,
	})
	logger.Debug("Handling command")

	switch command {
	case "start":
		if _, err := b.subscriptions.Subscribe(ctx, userID, chatID); err != nil {
			logger.WithError(err).Error("Error subscribing chat")
			return msgInternalError
		}
		return msgStart

	case "stop":
		if _, err := b.subscriptions.Unsubscribe(ctx, userID, chatID); err != nil {
			logger.WithError(err).Error("Error unsubscribing chat")
			return msgInternalError
		}
		return msgStopped

	case "help":
		return msgHelp

	case "settings":
		text, err := b.settingsText(ctx, userID, chatID)
		if err != nil {
			logger.WithError(err).Error("Error reading subscription")
			return msgInternalError
		}
		return text

	default:
		return msgUnknownCommand
	}
}

// settingsText описывает параметры сводок из конфигурации и статус чата
func (b *Bot) settingsText(ctx context.Context, userID, chatID int64) (string, error) {
	subscribed, err := b.subscriptions.IsSubscribed(ctx, userID, chatID)
	if err != nil {
		return "", err
	}
	active, err := b.subscriptions.ActiveCount(ctx)
	if err != nil {
		return "", err
	}

	status := "не подписан"
	if subscribed {
		status = "подписан"
	}

	return fmt.Sprintf(msgSettings,
		b.cfg.CheckIntervalMinutes(),
		b.cfg.SummaryMinLen(),
		b.cfg.SummaryMaxLen(),
		status,
		active,
	), nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.log.WithError(err).WithField("chat_id", chatID).Error("Error sending message")
	}
}
