package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/eslsoft/prepbot/internal/entity"
)

// Callback action identifiers carried in inline-button data.
const (
	actionNewQuiz   = "new_quiz"
	actionShowStats = "show_stats"
	actionHelp      = "help"
	answerPrefix    = "answer_"
)

const (
	refreshingText      = "🔄 Refreshing word database..."
	noSessionText       = "Start a new quiz first!"
	emptyVocabularyText = "😕 No vocabulary is loaded right now. Try /refresh to reload the database."
	genericErrorText    = "Something went wrong, please try again."
)

func welcomeText(vocabSize int) string {
	return fmt.Sprintf(`🇩🇪 Welcome to German Preposition Practice Bot!

I'll help you practice German words with prepositions.

📈 Database: %d words loaded
🎯 Ready to practice? Choose an option below!`, vocabSize)
}

func helpText() string {
	return `📚 How to use this bot:

🎯 Quiz:
• Practice German words with prepositions
• Get instant feedback with examples

📊 Features:
• Track your progress and streaks
• Real-time data from the word database

🔧 Commands:
/quiz - Start a random quiz
/stats - View your statistics
/refresh - Update word database

Click a button below to get started!`
}

func statsText(stats entity.UserStats, vocabSize int) string {
	return fmt.Sprintf(`📊 Your Statistics

✅ Correct Answers: %d/%d
🎯 Accuracy: %.1f%%
🔥 Current Streak: %d
🏆 Best Streak: %d

📈 Database: %d words available

Keep practicing to improve your accuracy!`,
		stats.CorrectAnswers, stats.QuestionsAsked, stats.Accuracy(),
		stats.CurrentStreak, stats.BestStreak, vocabSize)
}

func refreshedText(report entity.LoadReport) string {
	if report.FetchFailed {
		return fmt.Sprintf("⚠️ Could not reach the word database, using the built-in set (%d words).", report.Accepted)
	}
	return fmt.Sprintf("✅ Updated! Now have %d words loaded (%d records seen, %d skipped).",
		report.Accepted, report.Total, report.Skipped)
}

func quizText(word string) string {
	return fmt.Sprintf(`🤔 Which preposition goes with "%s"?

%s ___ ...

📋 Choose the correct preposition:`, word, word)
}

func resultText(result *entity.GradeResult) string {
	session := result.Session
	stats := result.Stats

	var sb strings.Builder
	switch result.Outcome {
	case entity.GradeCorrect:
		fmt.Fprintf(&sb, "✅ Correct! 🎉\n\n%s + %s\n\n💭 %s\n", session.Word, session.Notation, session.Example)
	case entity.GradeAlternative:
		fmt.Fprintf(&sb, "✅ Also Correct! 🎉\n\nYou chose: %s + %s\n💭 %s\n\n", session.Word, result.Alternative.Notation, result.Alternative.Example)
		fmt.Fprintf(&sb, "The quiz was asking for: %s + %s\n💭 %s\n\n", session.Word, session.Notation, session.Example)
		sb.WriteString("💡 Both are correct! This word can take multiple prepositions with different meanings.\n")
	case entity.GradeIncorrect:
		fmt.Fprintf(&sb, "❌ Not quite right\n\nThe correct answer is: %s + %s\n\n💭 %s\n", session.Word, session.Notation, session.Example)
	default:
		return noSessionText
	}

	if session.Translation != "" {
		fmt.Fprintf(&sb, "\n🇬🇧 English: %s\n", session.Translation)
	}

	if result.Outcome == entity.GradeIncorrect {
		if result.HasAlternatives {
			fmt.Fprintf(&sb, "\n💡 Note: %q can also take other prepositions with different meanings.\n", session.Word)
		}
		fmt.Fprintf(&sb, "\n💪 Keep practicing!\n📊 Accuracy: %.1f%%", stats.Accuracy())
		return sb.String()
	}

	fmt.Fprintf(&sb, "\n🔥 Streak: %d\n📊 Accuracy: %.1f%%", stats.CurrentStreak, stats.Accuracy())
	return sb.String()
}

// quizKeyboard renders one button per option plus the secondary actions.
func quizKeyboard(options []string) *tgbotapi.InlineKeyboardMarkup {
	rows := lo.Map(options, func(option string, _ int) []tgbotapi.InlineKeyboardButton {
		return tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, answerPrefix+option),
		)
	})
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🔄 New Quiz", actionNewQuiz),
		tgbotapi.NewInlineKeyboardButtonData("📊 Stats", actionShowStats),
	))
	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &markup
}

func menuKeyboard() *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🎯 Start Quiz", actionNewQuiz)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 My Stats", actionShowStats)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📚 Help", actionHelp)),
	)
	return &markup
}

func actionKeyboard() *tgbotapi.InlineKeyboardMarkup {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔄 New Quiz", actionNewQuiz)),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📊 My Stats", actionShowStats)),
	)
	return &markup
}
