// internal/service/reminder.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/email"
	"github.com/Ar-Dante/Quiz-platform/internal/email/mailer"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/obs"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
)

// ReminderScheduler periodically reminds members of quizzes they have not
// retaken within the quiz frequency.
type ReminderScheduler struct {
	companies     repository.CompanyRepositoryIface
	users         repository.UserRepositoryIface
	members       *MembershipService
	quizzes       *QuizService
	results       *ResultService
	notifications *NotificationService
	mail          email.Sender

	interval    time.Duration
	batchSize   int
	dryRun      bool // If true, only log what would be sent
	logger      *slog.Logger
	now         func() time.Time
	stopChan    chan struct{}
	stoppedChan chan struct{}
}

// SweepReport summarizes one pass.
type SweepReport struct {
	Companies int `json:"companies"`
	Checked   int `json:"checked"`
	Due       int `json:"due"`
	Reminded  int `json:"reminded"`
	Mailed    int `json:"mailed"`
}

func NewReminderScheduler(
	companies repository.CompanyRepositoryIface,
	users repository.UserRepositoryIface,
	members *MembershipService,
	quizzes *QuizService,
	results *ResultService,
	notifications *NotificationService,
	mail email.Sender,
	interval time.Duration,
	logger *slog.Logger,
) *ReminderScheduler {
	if interval == 0 {
		interval = 24 * time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReminderScheduler{
		companies:     companies,
		users:         users,
		members:       members,
		quizzes:       quizzes,
		results:       results,
		notifications: notifications,
		mail:          mail,
		interval:      interval,
		batchSize:     100,
		logger:        logger,
		now:           time.Now,
		stopChan:      make(chan struct{}),
		stoppedChan:   make(chan struct{}),
	}
}

// SetBatchSize sets how many companies are read per query
func (s *ReminderScheduler) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

func (s *ReminderScheduler) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// Start runs a sweep on every tick until Stop is called
func (s *ReminderScheduler) Start() {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		defer close(s.stoppedChan)

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), s.interval/2)
				if _, err := s.Sweep(ctx); err != nil {
					s.logger.Error("reminder sweep failed", "error", err)
				}
				cancel()
			case <-s.stopChan:
				return
			}
		}
	}()
}

// Stop halts the scheduler and waits for a running sweep to finish
func (s *ReminderScheduler) Stop() {
	close(s.stopChan)
	<-s.stoppedChan
}

// Sweep walks companies, members and quizzes once. A member is reminded when
// they attempted the quiz before and at least frequency whole days have
// passed since. Failures on single items are collected and do not stop the
// sweep. Re-running on the same day writes nothing new.
func (s *ReminderScheduler) Sweep(ctx context.Context) (*SweepReport, error) {
	start := time.Now()
	defer func() { obs.SweepDuration.Observe(time.Since(start).Seconds()) }()

	now := s.now()
	report := &SweepReport{}
	var errs []error

	s.logger.Info("starting reminder sweep", "dry_run", s.dryRun, "batch_size", s.batchSize)

	for offset := 0; ; offset += s.batchSize {
		companies, err := s.companies.FindBatch(ctx, repository.Page{Offset: offset, Limit: s.batchSize})
		if err != nil {
			return report, fmt.Errorf("fetching companies: %w", err)
		}

		for _, company := range companies {
			report.Companies++
			if err := s.sweepCompany(ctx, company, now, report); err != nil {
				errs = append(errs, fmt.Errorf("company %s: %w", company.ID, err))
			}
		}

		if len(companies) < s.batchSize {
			break
		}
	}

	s.logger.Info("completed reminder sweep",
		"companies", report.Companies,
		"checked", report.Checked,
		"due", report.Due,
		"reminded", report.Reminded,
		"mailed", report.Mailed,
		"errors", len(errs),
	)
	return report, errors.Join(errs...)
}

func (s *ReminderScheduler) sweepCompany(ctx context.Context, company *model.Company, now time.Time, report *SweepReport) error {
	members, err := s.members.AllMembers(ctx, company.ID)
	if err != nil {
		return fmt.Errorf("fetching members: %w", err)
	}
	if len(members) == 0 {
		return nil
	}
	quizzes, err := s.quizzes.AllQuizzes(ctx, company.ID)
	if err != nil {
		return fmt.Errorf("fetching quizzes: %w", err)
	}

	var errs []error
	for _, member := range members {
		for _, quiz := range quizzes {
			report.Checked++
			last, err := s.results.LastAttempt(ctx, member.UserID, quiz.ID)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if last == nil {
				continue
			}

			days := DaysSince(*last, now)
			if days < quiz.Frequency {
				continue
			}
			report.Due++

			if s.dryRun {
				s.logger.Info("would remind member (dry run)",
					"user_id", member.UserID, "quiz_id", quiz.ID, "days_since", days)
				continue
			}

			created, err := s.notifications.RemindQuiz(ctx, member.UserID, quiz, now)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if !created {
				continue
			}
			report.Reminded++
			obs.RemindersSent.Inc()

			if s.mail != nil {
				if err := s.mailReminder(ctx, member, quiz, company, days); err != nil {
					s.logger.Warn("failed to mail reminder", "user_id", member.UserID, "quiz_id", quiz.ID, "error", err)
					continue
				}
				report.Mailed++
			}
		}
	}
	return errors.Join(errs...)
}

func (s *ReminderScheduler) mailReminder(ctx context.Context, member *model.Membership, quiz *model.Quiz, company *model.Company, days int) error {
	user, err := s.users.FindByID(ctx, member.UserID)
	if err != nil {
		return err
	}
	return mailer.SendQuizReminder(ctx, s.mail, user.Email, mailer.QuizReminderData{
		FirstName:   user.FirstName,
		QuizName:    quiz.Name,
		CompanyName: company.Name,
		Frequency:   quiz.Frequency,
		DaysSince:   days,
	})
}

// DaysSince counts whole days elapsed between two instants.
func DaysSince(last, now time.Time) int {
	if now.Before(last) {
		return 0
	}
	return int(now.Sub(last) / (24 * time.Hour))
}
