// internal/email/mailer/quiz_reminder.go
package mailer

import (
	"context"
	"fmt"

	"github.com/Ar-Dante/Quiz-platform/internal/email"
)

const QuizReminderTemplate = "quiz_reminder"

// QuizReminderData contains data for the quiz reminder template
type QuizReminderData struct {
	FirstName   string
	QuizName    string
	CompanyName string
	Frequency   int
	DaysSince   int
}

// SendQuizReminder tells a member a quiz is due again
func SendQuizReminder(ctx context.Context, s email.Sender, to string, data QuizReminderData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		FromName:     "Quiz Platform",
		Subject:      fmt.Sprintf("Time to retake %s", data.QuizName),
		TemplateName: QuizReminderTemplate,
		TemplateData: data,
	})
}
