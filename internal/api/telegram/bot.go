package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"wound-analyzer/internal/container"
	"wound-analyzer/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я помогаю оценить размер раны по фотографии.

📸 Отправьте фото раны, и я найду красную область и измерю её.
📝 Или пришлите текст заключения врача для анализа.

📋 Команды:
/wound — измерить рану по фото
/note — проанализировать заключение врача
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото раны
2️⃣ Бот выделит область раны
3️⃣ Вы получите размеры и фото с рамкой

💡 Рекомендации:
• Снимайте с одного и того же расстояния
• Используйте светлый однотонный фон
• Размеры приблизительные и не заменяют осмотр врача

📋 Команды:
/wound — измерить рану
/note — анализ заключения
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото раны."
	msgAwaitingNote    = "📝 Пришлите текст заключения врача одним сообщением."
	msgCancelled       = "❌ Операция отменена. Отправьте /wound или /note."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото раны или выберите /note."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Обрабатываю запрос..."
	msgBusy            = "⏳ Предыдущий запрос ещё обрабатывается."
	msgNoRegion        = "🔍 Рана на фото не найдена. Попробуйте снять ближе и при хорошем освещении."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
	msgNoteError       = "⚠️ Не удалось проанализировать заключение. Попробуйте позже."
)

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	app    *container.Container
	client *http.Client
	logger *zap.Logger
}

// NewBot создаёт нового бота
func NewBot(token string, app *container.Container, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	logger.Info("telegram bot authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:    api,
		app:    app,
		client: &http.Client{},
		logger: logger,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			go b.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	users := b.app.UserService
	user, err := users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.logger.Error("error getting user", zap.Error(err))
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	if user.IsBusy() {
		b.sendMessage(msg.Chat.ID, msgBusy)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg)
		return
	}

	if user.State == entity.StateAwaitingNote && strings.TrimSpace(msg.Text) != "" {
		b.handleNote(ctx, msg)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	users := b.app.UserService
	userID, chatID := msg.From.ID, msg.Chat.ID

	var (
		reply string
		err   error
	)
	switch msg.Command() {
	case "start":
		_, err = users.Cancel(ctx, userID, chatID)
		reply = msgStart

	case "help":
		reply = msgHelp

	case "wound":
		_, err = users.BeginWound(ctx, userID, chatID)
		reply = msgAwaitingPhoto

	case "note":
		_, err = users.BeginNote(ctx, userID, chatID)
		reply = msgAwaitingNote

	case "cancel":
		_, err = users.Cancel(ctx, userID, chatID)
		reply = msgCancelled

	default:
		reply = msgUnknownCommand
	}

	switch {
	case errors.Is(err, entity.ErrUserBusy):
		reply = msgBusy
	case err != nil:
		b.logger.Error("error updating user state", zap.Int64("user_id", userID), zap.Error(err))
	}
	b.sendMessage(chatID, reply)
}

// handlePhoto измеряет рану на присланном фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	if !b.begin(ctx, userID, chatID) {
		return
	}
	defer b.finish(ctx, userID, chatID)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.logger.Error("error downloading photo", zap.Error(err))
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	result, err := b.app.WoundService.AnalyzeImage(ctx, imageData)
	if err != nil {
		b.logger.Warn("wound analysis failed", zap.Int64("user_id", userID), zap.Error(err))
		if errors.Is(err, entity.ErrNoRegionDetected) {
			b.sendMessage(chatID, msgNoRegion)
		} else {
			b.sendMessage(chatID, msgProcessingError)
		}
		return
	}

	reply := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{
		Name:  "wound_" + result.Timestamp + ".jpg",
		Bytes: result.Annotated,
	})
	reply.Caption = FormatMeasurement(result.Measurements)
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Error("error sending photo", zap.Error(err))
	}
}

// handleNote пересылает заключение врача языковой модели
func (b *Bot) handleNote(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	if !b.begin(ctx, userID, chatID) {
		return
	}
	defer b.finish(ctx, userID, chatID)

	analysis, err := b.app.NoteService.Analyze(ctx, msg.Text)
	if err != nil {
		b.sendMessage(chatID, msgNoteError)
		return
	}

	for _, part := range SplitMessage(analysis, MaxMessageLength) {
		b.sendMessage(chatID, part)
	}
}

// begin занимает пользователя на время запроса, параллельные запросы получают отказ
func (b *Bot) begin(ctx context.Context, userID, chatID int64) bool {
	if _, err := b.app.UserService.Process(ctx, userID, chatID); err != nil {
		if errors.Is(err, entity.ErrUserBusy) {
			b.sendMessage(chatID, msgBusy)
		} else {
			b.logger.Error("error updating user state", zap.Int64("user_id", userID), zap.Error(err))
			b.sendMessage(chatID, msgProcessingError)
		}
		return false
	}
	b.sendMessage(chatID, msgProcessing)
	return true
}

// finish возвращает пользователя в главное меню
func (b *Bot) finish(ctx context.Context, userID, chatID int64) {
	if err := b.app.UserService.Release(context.WithoutCancel(ctx), userID, chatID); err != nil {
		b.logger.Error("error updating user state", zap.Int64("user_id", userID), zap.Error(err))
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("error sending message", zap.Error(err))
	}
}
