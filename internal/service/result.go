// internal/service/result.go
package service

import (
	"context"
	"sort"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

const dayLayout = "2006-01-02"

type ResultService struct {
	results repository.ResultRepositoryIface
}

func NewResultService(results repository.ResultRepositoryIface) *ResultService {
	return &ResultService{results: results}
}

func (s *ResultService) AddResult(ctx context.Context, quizID, companyID, userID uuid.UUID, correctCount, totalCount int) (*model.Result, error) {
	result := &model.Result{
		QuizID:     quizID,
		CompanyID:  companyID,
		UserID:     userID,
		RightCount: correctCount,
		TotalCount: totalCount,
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AverageRating is sum(right)/sum(total), or 0 when nothing was answered.
func AverageRating(results []*model.Result) float64 {
	var right, total int
	for _, r := range results {
		right += r.RightCount
		total += r.TotalCount
	}
	if total == 0 {
		return 0.0
	}
	return float64(right) / float64(total)
}

func (s *ResultService) UserAverageInCompany(ctx context.Context, userID uuid.UUID, company *model.Company, member *model.Membership, caller uuid.UUID) (float64, error) {
	if err := access.CompanyParticipant(caller, member, company); err != nil {
		return 0, err
	}
	results, err := s.results.FindByUserAndCompany(ctx, userID, company.ID)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, domain.ErrUserNotFound
	}
	return AverageRating(results), nil
}

func (s *ResultService) SystemAverage(ctx context.Context, userID uuid.UUID) (float64, error) {
	results, err := s.results.FindByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, domain.ErrUserNotFound
	}
	return AverageRating(results), nil
}

// LastAttempt returns nil when the user never took the quiz.
func (s *ResultService) LastAttempt(ctx context.Context, userID, quizID uuid.UUID) (*time.Time, error) {
	return s.results.LastAttempt(ctx, userID, quizID)
}

func (s *ResultService) QuizLastAttempts(ctx context.Context, quizIDs []uuid.UUID) ([]model.ResultSummary, error) {
	results, err := s.results.FindByQuizzes(ctx, quizIDs)
	if err != nil {
		return nil, err
	}
	return summarize(results, byQuiz), nil
}

func (s *ResultService) QuizAveragesByTime(ctx context.Context, quizIDs []uuid.UUID) ([]model.Timeline, error) {
	results, err := s.results.FindByQuizzes(ctx, quizIDs)
	if err != nil {
		return nil, err
	}
	return timelines(results, byQuiz), nil
}

func (s *ResultService) UserLastAttempts(ctx context.Context, company *model.Company, members []*model.Membership, member *model.Membership, caller uuid.UUID) ([]model.ResultSummary, error) {
	results, err := s.memberResults(ctx, company, members, member, caller)
	if err != nil {
		return nil, err
	}
	return summarize(results, byUser), nil
}

func (s *ResultService) UserAveragesByTime(ctx context.Context, company *model.Company, members []*model.Membership, member *model.Membership, caller uuid.UUID) ([]model.Timeline, error) {
	results, err := s.memberResults(ctx, company, members, member, caller)
	if err != nil {
		return nil, err
	}
	return timelines(results, byUser), nil
}

// UserQuizAveragesByTime breaks one user's results in a company down by quiz.
func (s *ResultService) UserQuizAveragesByTime(ctx context.Context, userID uuid.UUID, company *model.Company, member *model.Membership, caller uuid.UUID) ([]model.Timeline, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	results, err := s.results.FindByUserAndCompany(ctx, userID, company.ID)
	if err != nil {
		return nil, err
	}
	return timelines(results, byQuiz), nil
}

// memberResults returns the company's results restricted to current members.
func (s *ResultService) memberResults(ctx context.Context, company *model.Company, members []*model.Membership, member *model.Membership, caller uuid.UUID) ([]*model.Result, error) {
	if err := access.CompanyWrite(caller, member, company); err != nil {
		return nil, err
	}
	results, err := s.results.FindByCompany(ctx, company.ID)
	if err != nil {
		return nil, err
	}

	current := make(map[uuid.UUID]struct{}, len(members))
	for _, m := range members {
		current[m.UserID] = struct{}{}
	}
	filtered := results[:0:0]
	for _, r := range results {
		if _, ok := current[r.UserID]; ok {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func byQuiz(r *model.Result) uuid.UUID { return r.QuizID }
func byUser(r *model.Result) uuid.UUID { return r.UserID }

func group(results []*model.Result, key func(*model.Result) uuid.UUID) (map[uuid.UUID][]*model.Result, []uuid.UUID) {
	groups := make(map[uuid.UUID][]*model.Result)
	var order []uuid.UUID
	for _, r := range results {
		k := key(r)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].String() < order[j].String() })
	return groups, order
}

// summarize yields one row per subject with results. Subjects without
// results do not appear.
func summarize(results []*model.Result, key func(*model.Result) uuid.UUID) []model.ResultSummary {
	groups, order := group(results, key)
	out := make([]model.ResultSummary, 0, len(order))
	for _, id := range order {
		rs := groups[id]
		var last time.Time
		for _, r := range rs {
			if r.CreatedAt.After(last) {
				last = r.CreatedAt
			}
		}
		out = append(out, model.ResultSummary{SubjectID: id, LastAttempt: last, Average: AverageRating(rs)})
	}
	return out
}

func timelines(results []*model.Result, key func(*model.Result) uuid.UUID) []model.Timeline {
	groups, order := group(results, key)
	out := make([]model.Timeline, 0, len(order))
	for _, id := range order {
		days := make(map[string][]*model.Result)
		for _, r := range groups[id] {
			d := r.CreatedAt.UTC().Format(dayLayout)
			days[d] = append(days[d], r)
		}
		points := make([]model.AveragePoint, 0, len(days))
		for d, rs := range days {
			points = append(points, model.AveragePoint{Day: d, Average: AverageRating(rs)})
		}
		sort.Slice(points, func(i, j int) bool { return points[i].Day < points[j].Day })
		out = append(out, model.Timeline{SubjectID: id, Points: points})
	}
	return out
}
