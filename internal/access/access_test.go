package access_test

import (
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/access"
	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCompanyWrite(t *testing.T) {
	owner := uuid.New()
	caller := uuid.New()
	company := &model.Company{ID: uuid.New(), OwnerID: owner}

	tests := []struct {
		name    string
		caller  uuid.UUID
		member  *model.Membership
		wantErr error
	}{
		{"owner without membership", owner, nil, nil},
		{"admin member", caller, &model.Membership{UserID: caller, IsAdmin: true}, nil},
		{"plain member", caller, &model.Membership{UserID: caller}, domain.ErrAccessDenied},
		{"stranger", caller, nil, domain.ErrMemberNotExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := access.CompanyWrite(tt.caller, tt.member, company)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrForbidden)
		})
	}
}

func TestCompanyParticipant(t *testing.T) {
	owner := uuid.New()
	company := &model.Company{ID: uuid.New(), OwnerID: owner}

	assert.NoError(t, access.CompanyParticipant(owner, nil, company))
	assert.NoError(t, access.CompanyParticipant(uuid.New(), &model.Membership{}, company))

	err := access.CompanyParticipant(uuid.New(), nil, company)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOwnerAndSelf(t *testing.T) {
	owner := uuid.New()
	company := &model.Company{OwnerID: owner}

	assert.NoError(t, access.Owner(owner, company))
	assert.ErrorIs(t, access.Owner(uuid.New(), company), domain.ErrForbidden)

	id := uuid.New()
	assert.NoError(t, access.Self(id, id))
	assert.ErrorIs(t, access.Self(id, uuid.New()), domain.ErrAccessDenied)
}
