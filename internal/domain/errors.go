// internal/domain/errors.go
package domain

import "errors"

// Error kinds. Every domain error unwraps to exactly one of these.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error is a caller-visible failure with a fixed message and a kind.
type Error struct {
	kind    error
	message string
}

func newError(kind error, message string) *Error {
	return &Error{kind: kind, message: message}
}

func (e *Error) Error() string { return e.message }

func (e *Error) Unwrap() error { return e.kind }

// Kind returns the kind sentinel the error belongs to.
func (e *Error) Kind() error { return e.kind }

var (
	// General errors
	ErrInvalidInput      = newError(ErrBadRequest, "invalid input")
	ErrUnsupportedFormat = newError(ErrBadRequest, "unsupported export format")
	ErrNotExcelFormat    = newError(ErrBadRequest, "file must be an .xlsx workbook")

	// User-related errors
	ErrUserNotFound       = newError(ErrNotFound, "user not found")
	ErrEmailAlreadyExists = newError(ErrConflict, "user already exists")
	ErrInvalidCredentials = newError(ErrUnauthorized, "invalid credentials")
	ErrInvalidToken       = newError(ErrUnauthorized, "could not validate credentials")
	ErrAccessDenied       = newError(ErrForbidden, "access denied")

	// Company-related errors
	ErrCompanyNotFound = newError(ErrNotFound, "company not found")

	// Membership-related errors
	ErrMemberNotFound  = newError(ErrNotFound, "member not found")
	ErrMemberNotExists = newError(ErrForbidden, "member does not exist")
	ErrMemberExists    = newError(ErrConflict, "user is already in the company")
	ErrOwnerNotMember  = newError(ErrConflict, "the owner can't be member")
	ErrAlreadyAdmin    = newError(ErrConflict, "member is already an admin")
	ErrNotAdmin        = newError(ErrConflict, "member is not an admin")
	ErrOwnerIsNotAdmin = newError(ErrForbidden, "the owner can't be promoted or demoted")

	// Workflow-related errors
	ErrUserInvited       = newError(ErrConflict, "user already invited")
	ErrUserNotInvited    = newError(ErrNotFound, "the user has not been invited")
	ErrRequestSent       = newError(ErrConflict, "request was already sent")
	ErrUserNotRequested  = newError(ErrNotFound, "the user did not send a request")
	ErrInvalidTransition = newError(ErrConflict, "action state transition is not allowed")

	// Quiz-related errors
	ErrQuizNotFound       = newError(ErrNotFound, "quiz not found")
	ErrQuestionNotFound   = newError(ErrNotFound, "question not found")
	ErrNotEnoughOptions   = newError(ErrBadRequest, "question needs at least two answer options")
	ErrNotEnoughQuestions = newError(ErrForbidden, "quiz needs at least two questions")

	// Notification-related errors
	ErrNotificationNotFound = newError(ErrNotFound, "notification not found")
)
