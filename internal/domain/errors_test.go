package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{domain.ErrMemberNotFound, domain.ErrNotFound},
		{domain.ErrMemberNotExists, domain.ErrForbidden},
		{domain.ErrUserInvited, domain.ErrConflict},
		{domain.ErrOwnerNotMember, domain.ErrConflict},
		{domain.ErrNotEnoughOptions, domain.ErrBadRequest},
		{domain.ErrNotEnoughQuestions, domain.ErrForbidden},
		{domain.ErrInvalidCredentials, domain.ErrUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.kind)

			wrapped := fmt.Errorf("handling request: %w", tc.err)
			assert.ErrorIs(t, wrapped, tc.err)
			assert.ErrorIs(t, wrapped, tc.kind)
		})
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(domain.ErrMemberNotFound, domain.ErrForbidden))
	assert.False(t, errors.Is(domain.ErrMemberNotExists, domain.ErrNotFound))
	assert.False(t, errors.Is(domain.ErrUserNotInvited, domain.ErrUserNotRequested))
	assert.False(t, errors.Is(domain.ErrOwnerNotMember, domain.ErrForbidden))
}
