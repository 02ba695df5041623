package app

import (
	"github.com/sirupsen/logrus"

	"github.com/eslsoft/prepbot/internal/adapter/airtable"
	"github.com/eslsoft/prepbot/internal/adapter/memory"
	"github.com/eslsoft/prepbot/internal/adapter/telegram"
	"github.com/eslsoft/prepbot/internal/infrastructure/config"
	"github.com/eslsoft/prepbot/internal/usecase"
)

// Container aggregates the application dependencies.
type Container struct {
	Logger *logrus.Logger
	Loader usecase.VocabLoader
	Quiz   usecase.QuizUsecase
	Bot    *telegram.Bot
}

// Build wires the stores, usecases and transport together.
func Build(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	source := airtable.NewSource(cfg.Airtable.APIKey, cfg.Airtable.BaseID, cfg.Airtable.Table)
	loader := usecase.NewVocabLoader(source, logger)

	quiz := usecase.NewQuizUsecase(
		loader,
		memory.NewVocabStore(),
		memory.NewSessionStore(),
		memory.NewStatsStore(),
	)

	bot, err := telegram.NewBot(cfg.Telegram.Token, quiz, logger)
	if err != nil {
		return nil, err
	}

	return &Container{
		Logger: logger,
		Loader: loader,
		Quiz:   quiz,
		Bot:    bot,
	}, nil
}
