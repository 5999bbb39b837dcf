package service

import (
	"context"
	"testing"

	"github.com/Ar-Dante/Quiz-platform/internal/domain"
	"github.com/Ar-Dante/Quiz-platform/internal/mocks"
	"github.com/Ar-Dante/Quiz-platform/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetAdmin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name    string
		user    uuid.UUID
		caller  uuid.UUID
		promote bool
		setup   func(repo *mocks.MockMembershipRepositoryIface)
		wantErr error
	}{
		{
			name:    "owner cannot be promoted",
			user:    f.owner,
			caller:  f.owner,
			promote: true,
			wantErr: domain.ErrOwnerIsNotAdmin,
		},
		{
			name:    "only the owner changes admins",
			user:    f.member,
			caller:  f.admin,
			promote: true,
			wantErr: domain.ErrAccessDenied,
		},
		{
			name:    "non member",
			user:    f.outside,
			caller:  f.owner,
			promote: true,
			setup: func(repo *mocks.MockMembershipRepositoryIface) {
				repo.EXPECT().FindByUserAndCompany(ctx, f.outside, f.company.ID).Return(nil, nil)
			},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name:    "already admin",
			user:    f.admin,
			caller:  f.owner,
			promote: true,
			setup: func(repo *mocks.MockMembershipRepositoryIface) {
				repo.EXPECT().FindByUserAndCompany(ctx, f.admin, f.company.ID).Return(f.membership(f.admin, true), nil)
			},
			wantErr: domain.ErrAlreadyAdmin,
		},
		{
			name:    "demote a plain member",
			user:    f.member,
			caller:  f.owner,
			promote: false,
			setup: func(repo *mocks.MockMembershipRepositoryIface) {
				repo.EXPECT().FindByUserAndCompany(ctx, f.member, f.company.ID).Return(f.membership(f.member, false), nil)
			},
			wantErr: domain.ErrNotAdmin,
		},
		{
			name:    "promote",
			user:    f.member,
			caller:  f.owner,
			promote: true,
			setup: func(repo *mocks.MockMembershipRepositoryIface) {
				m := f.membership(f.member, false)
				repo.EXPECT().FindByUserAndCompany(ctx, f.member, f.company.ID).Return(m, nil)
				repo.EXPECT().SetAdmin(ctx, m.ID, true).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockMembershipRepositoryIface(gomock.NewController(t))
			if tt.setup != nil {
				tt.setup(repo)
			}
			svc := NewMembershipService(repo)

			var err error
			if tt.promote {
				err = svc.PromoteAdmin(ctx, tt.user, f.company, tt.caller)
			} else {
				err = svc.DemoteAdmin(ctx, tt.user, f.company, tt.caller)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExitCompany(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	t.Run("someone else", func(t *testing.T) {
		repo := mocks.NewMockMembershipRepositoryIface(gomock.NewController(t))
		err := NewMembershipService(repo).ExitCompany(ctx, f.member, f.company, f.admin)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("not a member", func(t *testing.T) {
		repo := mocks.NewMockMembershipRepositoryIface(gomock.NewController(t))
		repo.EXPECT().FindByUserAndCompany(ctx, f.outside, f.company.ID).Return(nil, nil)

		err := NewMembershipService(repo).ExitCompany(ctx, f.outside, f.company, f.outside)
		assert.ErrorIs(t, err, domain.ErrMemberNotFound)
	})

	t.Run("leaves", func(t *testing.T) {
		repo := mocks.NewMockMembershipRepositoryIface(gomock.NewController(t))
		m := f.membership(f.member, false)
		repo.EXPECT().FindByUserAndCompany(ctx, f.member, f.company.ID).Return(m, nil)
		repo.EXPECT().Delete(ctx, m.ID).Return(nil)

		assert.NoError(t, NewMembershipService(repo).ExitCompany(ctx, f.member, f.company, f.member))
	})
}

func TestRemoveMemberOwnerOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := mocks.NewMockMembershipRepositoryIface(gomock.NewController(t))

	err := NewMembershipService(repo).RemoveMember(ctx, f.member, f.company, f.admin)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestListAdmins(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	repo := mocks.NewMockMembershipRepositoryIface(gomock.NewController(t))
	admins := []*model.Membership{f.membership(f.admin, true)}
	repo.EXPECT().FindByCompany(ctx, f.company.ID, true, gomock.Any()).Return(admins, nil)

	got, err := NewMembershipService(repo).ListAdmins(ctx, f.company.ID, pageOf(10))
	assert.NoError(t, err)
	assert.Equal(t, admins, got)
}
