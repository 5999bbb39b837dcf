// internal/service/workflow.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/events"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/Ar-Dante/Quiz-platform/internal/obs"
	"github.com/Ar-Dante/Quiz-platform/internal/repository"
	"github.com/google/uuid"
)

// MemberDirectory is the part of MembershipService the workflow needs.
type MemberDirectory interface {
	AddMember(ctx context.Context, userID, companyID uuid.UUID) (uuid.UUID, error)
	GetMember(ctx context.Context, userID, companyID uuid.UUID) (*model.Membership, error)
}

// WorkflowService runs invitations (owner to user) and join requests
// (user to company). Each is a sent action that ends accepted, refused
// or canceled.
type WorkflowService struct {
	actions   repository.ActionRepositoryIface
	members   MemberDirectory
	publisher events.Publisher
	now       func() time.Time
}

func NewWorkflowService(actions repository.ActionRepositoryIface, members MemberDirectory, publisher events.Publisher) *WorkflowService {
	if publisher == nil {
		publisher = events.NoOpPublisher{}
	}
	return &WorkflowService{
		actions:   actions,
		members:   members,
		publisher: publisher,
		now:       time.Now,
	}
}

func (s *WorkflowService) SendInvitation(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) (*model.Action, error) {
	if err := access.Owner(caller, company); err != nil {
		return nil, err
	}
	if userID == caller {
		return nil, domain.ErrOwnerNotMember
	}
	return s.send(ctx, userID, company, model.KindInvitation, caller, domain.ErrUserInvited)
}

func (s *WorkflowService) SendRequest(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) (*model.Action, error) {
	if err := access.Self(caller, userID); err != nil {
		return nil, err
	}
	if company.IsOwner(userID) {
		return nil, domain.ErrOwnerNotMember
	}
	return s.send(ctx, userID, company, model.KindRequest, caller, domain.ErrRequestSent)
}

func (s *WorkflowService) send(ctx context.Context, userID uuid.UUID, company *model.Company, kind model.ActionKind, caller uuid.UUID, dup error) (*model.Action, error) {
	member, err := s.members.GetMember(ctx, userID, company.ID)
	if err != nil {
		return nil, err
	}
	if member != nil {
		return nil, domain.ErrMemberExists
	}

	existing, err := s.actions.FindSent(ctx, userID, company.ID, kind)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dup
	}

	action := &model.Action{
		UserID:    userID,
		CompanyID: company.ID,
		Kind:      kind,
		State:     model.StateSent,
	}
	if err := s.actions.Create(ctx, action); err != nil {
		return nil, err
	}

	s.record(ctx, action, caller)
	return action, nil
}

func (s *WorkflowService) CancelInvitation(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	if err := access.Owner(caller, company); err != nil {
		return err
	}
	_, err := s.transition(ctx, userID, company, model.KindInvitation, model.StateCanceled, caller)
	return err
}

func (s *WorkflowService) CancelRequest(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	if err := access.Self(caller, userID); err != nil {
		return err
	}
	_, err := s.transition(ctx, userID, company, model.KindRequest, model.StateCanceled, caller)
	return err
}

func (s *WorkflowService) AcceptInvitation(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) (uuid.UUID, error) {
	if err := access.Self(caller, userID); err != nil {
		return uuid.Nil, err
	}
	return s.accept(ctx, userID, company, model.KindInvitation, caller)
}

func (s *WorkflowService) RefuseInvitation(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	if err := access.Self(caller, userID); err != nil {
		return err
	}
	_, err := s.transition(ctx, userID, company, model.KindInvitation, model.StateRefused, caller)
	return err
}

func (s *WorkflowService) AcceptRequest(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) (uuid.UUID, error) {
	if err := access.Owner(caller, company); err != nil {
		return uuid.Nil, err
	}
	return s.accept(ctx, userID, company, model.KindRequest, caller)
}

func (s *WorkflowService) RefuseRequest(ctx context.Context, userID uuid.UUID, company *model.Company, caller uuid.UUID) error {
	if err := access.Owner(caller, company); err != nil {
		return err
	}
	_, err := s.transition(ctx, userID, company, model.KindRequest, model.StateRefused, caller)
	return err
}

// accept closes the action and then adds the membership. Returns the new
// membership id. A user who already joined through the other kind of action
// keeps the pending one untouched and gets ErrMemberExists.
func (s *WorkflowService) accept(ctx context.Context, userID uuid.UUID, company *model.Company, kind model.ActionKind, caller uuid.UUID) (uuid.UUID, error) {
	if company.IsOwner(userID) {
		return uuid.Nil, domain.ErrOwnerNotMember
	}
	action, err := s.findSent(ctx, userID, company, kind)
	if err != nil {
		return uuid.Nil, err
	}
	member, err := s.members.GetMember(ctx, userID, company.ID)
	if err != nil {
		return uuid.Nil, err
	}
	if member != nil {
		return uuid.Nil, domain.ErrMemberExists
	}

	if err := s.apply(ctx, action, model.StateAccepted, caller); err != nil {
		return uuid.Nil, err
	}
	memberID, err := s.members.AddMember(ctx, userID, company.ID)
	if err != nil {
		return uuid.Nil, err
	}
	s.cancelPending(ctx, userID, company, opposite(kind), caller)
	return memberID, nil
}

func opposite(kind model.ActionKind) model.ActionKind {
	if kind == model.KindInvitation {
		return model.KindRequest
	}
	return model.KindInvitation
}

// cancelPending closes a sent action that became moot once the user joined.
// The membership already exists, so failures are only logged.
func (s *WorkflowService) cancelPending(ctx context.Context, userID uuid.UUID, company *model.Company, kind model.ActionKind, caller uuid.UUID) {
	action, err := s.actions.FindSent(ctx, userID, company.ID, kind)
	if err == nil && action != nil {
		err = s.apply(ctx, action, model.StateCanceled, caller)
		if errors.Is(err, domain.ErrNotFound) {
			err = nil
		}
	}
	if err != nil {
		slog.WarnContext(ctx, "failed to cancel pending action", "user_id", userID, "company_id", company.ID, "kind", kind, "error", err)
	}
}

// transition finds the live action and moves it to the target state.
func (s *WorkflowService) transition(ctx context.Context, userID uuid.UUID, company *model.Company, kind model.ActionKind, to model.ActionState, caller uuid.UUID) (*model.Action, error) {
	action, err := s.findSent(ctx, userID, company, kind)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, action, to, caller); err != nil {
		return nil, err
	}
	return action, nil
}

func notFoundFor(kind model.ActionKind) error {
	if kind == model.KindRequest {
		return domain.ErrUserNotRequested
	}
	return domain.ErrUserNotInvited
}

func (s *WorkflowService) findSent(ctx context.Context, userID uuid.UUID, company *model.Company, kind model.ActionKind) (*model.Action, error) {
	action, err := s.actions.FindSent(ctx, userID, company.ID, kind)
	if err != nil {
		return nil, err
	}
	if action == nil {
		return nil, notFoundFor(kind)
	}
	return action, nil
}

// apply moves the action with a compare-and-swap on its state, so two
// concurrent callers cannot both succeed.
func (s *WorkflowService) apply(ctx context.Context, action *model.Action, to model.ActionState, caller uuid.UUID) error {
	applied, err := s.actions.Transition(ctx, action.ID, action.State, to)
	if err != nil {
		return err
	}
	if !applied {
		return notFoundFor(action.Kind)
	}

	action.State = to
	s.record(ctx, action, caller)
	return nil
}

func (s *WorkflowService) record(ctx context.Context, action *model.Action, caller uuid.UUID) {
	obs.WorkflowTransitions.WithLabelValues(string(action.Kind), string(action.State)).Inc()

	event := events.ActionEvent{
		ActionID:  action.ID,
		UserID:    action.UserID,
		CompanyID: action.CompanyID,
		Kind:      string(action.Kind),
		State:     string(action.State),
		ActorID:   caller,
		At:        s.now(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		slog.ErrorContext(ctx, "failed to publish action event", "routing_key", event.RoutingKey(), "error", err)
	}
}

func (s *WorkflowService) ListCompanyInvitations(ctx context.Context, company *model.Company, caller uuid.UUID, page repository.Page) ([]*model.Action, error) {
	if err := access.Owner(caller, company); err != nil {
		return nil, err
	}
	return s.actions.FindSentByCompany(ctx, company.ID, model.KindInvitation, page)
}

func (s *WorkflowService) ListCompanyRequests(ctx context.Context, company *model.Company, caller uuid.UUID, page repository.Page) ([]*model.Action, error) {
	if err := access.Owner(caller, company); err != nil {
		return nil, err
	}
	return s.actions.FindSentByCompany(ctx, company.ID, model.KindRequest, page)
}

func (s *WorkflowService) ListUserInvitations(ctx context.Context, userID, caller uuid.UUID, page repository.Page) ([]*model.Action, error) {
	if err := access.Self(caller, userID); err != nil {
		return nil, err
	}
	return s.actions.FindSentByUser(ctx, userID, model.KindInvitation, page)
}

func (s *WorkflowService) ListUserRequests(ctx context.Context, userID, caller uuid.UUID, page repository.Page) ([]*model.Action, error) {
	if err := access.Self(caller, userID); err != nil {
		return nil, err
	}
	return s.actions.FindSentByUser(ctx, userID, model.KindRequest, page)
}
