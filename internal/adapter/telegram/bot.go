// Package telegram is the chat transport: it maps Telegram commands and
// inline-button clicks onto the quiz usecase and renders the results.
package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepbot/internal/entity"
	"github.com/eslsoft/prepbot/internal/usecase"
)

const pollTimeoutSeconds = 30

// Bot consumes Telegram updates serially and replies with quiz messages.
type Bot struct {
	api    *tgbotapi.BotAPI
	quiz   usecase.QuizUsecase
	logger *logrus.Logger
}

func NewBot(token string, quiz usecase.QuizUsecase, logger *logrus.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	return &Bot{api: api, quiz: quiz, logger: logger}, nil
}

// Run polls for updates until the context is cancelled. Updates are handled
// one at a time to completion; per-user races are additionally guarded
// inside the usecase.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = pollTimeoutSeconds
	updates := b.api.GetUpdatesChan(cfg)

	b.logger.Infof("authorized as @%s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start":
		_, size := b.quiz.Stats(ctx, userID)
		b.reply(chatID, welcomeText(size), menuKeyboard())
	case "quiz":
		b.sendQuiz(ctx, chatID, userID)
	case "help":
		b.reply(chatID, helpText(), actionKeyboard())
	case "stats":
		stats, size := b.quiz.Stats(ctx, userID)
		b.reply(chatID, statsText(stats, size), actionKeyboard())
	case "refresh":
		b.reply(chatID, refreshingText, nil)
		report := b.quiz.Refresh(ctx)
		b.reply(chatID, refreshedText(report), nil)
	default:
		b.reply(chatID, helpText(), actionKeyboard())
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Acknowledge the click so the client stops showing a spinner.
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		b.logger.WithError(err).Warn("callback ack failed")
	}
	if cb.Message == nil {
		return
	}

	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID
	userID := cb.From.ID

	switch {
	case cb.Data == actionNewQuiz:
		b.editQuiz(ctx, chatID, messageID, userID)
	case cb.Data == actionShowStats:
		stats, size := b.quiz.Stats(ctx, userID)
		b.edit(chatID, messageID, statsText(stats, size), actionKeyboard())
	case cb.Data == actionHelp:
		b.edit(chatID, messageID, helpText(), actionKeyboard())
	case strings.HasPrefix(cb.Data, answerPrefix):
		b.handleAnswer(ctx, chatID, messageID, userID, strings.TrimPrefix(cb.Data, answerPrefix))
	}
}

func (b *Bot) handleAnswer(ctx context.Context, chatID int64, messageID int, userID int64, preposition string) {
	result, err := b.quiz.SubmitAnswer(ctx, userID, preposition)
	if err != nil {
		b.logger.WithError(err).Error("grading failed")
		return
	}
	if result.Outcome == entity.GradeNoSession {
		b.edit(chatID, messageID, noSessionText, actionKeyboard())
		return
	}
	b.edit(chatID, messageID, resultText(result), actionKeyboard())
}

func (b *Bot) sendQuiz(ctx context.Context, chatID, userID int64) {
	session, err := b.quiz.StartQuiz(ctx, userID)
	if err != nil {
		b.reply(chatID, quizErrorText(err), nil)
		return
	}
	b.reply(chatID, quizText(session.Word), quizKeyboard(session.Options))
}

func (b *Bot) editQuiz(ctx context.Context, chatID int64, messageID int, userID int64) {
	session, err := b.quiz.StartQuiz(ctx, userID)
	if err != nil {
		b.edit(chatID, messageID, quizErrorText(err), nil)
		return
	}
	b.edit(chatID, messageID, quizText(session.Word), quizKeyboard(session.Options))
}

func (b *Bot) reply(chatID int64, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = *keyboard
	}
	if _, err := b.api.Send(msg); err != nil {
		b.logger.WithError(err).Error("send message failed")
	}
}

func (b *Bot) edit(chatID int64, messageID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	var chattable tgbotapi.Chattable
	if keyboard != nil {
		chattable = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, *keyboard)
	} else {
		chattable = tgbotapi.NewEditMessageText(chatID, messageID, text)
	}
	if _, err := b.api.Send(chattable); err != nil {
		b.logger.WithError(err).Error("edit message failed")
	}
}

func quizErrorText(err error) string {
	if errors.Is(err, entity.ErrEmptyVocabulary) {
		return emptyVocabularyText
	}
	return genericErrorText
}
