package impl

import (
	"context"
	"testing"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/domain/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (*profileService, *txFixture) {
	fx := newTxFixture(t)
	srv := NewProfileService(ProfileServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	}).(*profileService)

	return srv, fx
}

func TestProfileService_ListProfiles(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 5)

	t.Run("parent sees linked kids", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().ListKidsByParent(ctx, parent.UserID).Return([]*entity.Profile{kid}, nil)

		profiles, err := srv.ListProfiles(ctx, parent.UserID)

		require.NoError(t, err)
		assert.Equal(t, []*entity.Profile{parent, kid}, profiles)
	})

	t.Run("kid sees only itself", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)

		profiles, err := srv.ListProfiles(ctx, kid.UserID)

		require.NoError(t, err)
		assert.Equal(t, []*entity.Profile{kid}, profiles)
	})

	t.Run("actor without profile", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(nil, repository.ErrProfileNotFound)

		_, err := srv.ListProfiles(ctx, kid.UserID)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestProfileService_GetProfile_OtherHousehold(t *testing.T) {
	srv, fx := createTestProfileService(t)

	ctx := context.Background()
	parent := newParent()
	stranger := newKid(newParent(), 0)

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, stranger.UserID).Return(stranger, nil)

	profile, err := srv.GetProfile(ctx, parent.UserID, stranger.UserID)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_LogBehavior(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		action      string
		startPoints int
		wantPoints  int
		wantChange  int
	}{
		{name: "good from zero", action: "GOOD", startPoints: 0, wantPoints: 100, wantChange: 100},
		{name: "bad after good", action: "bad", startPoints: 100, wantPoints: 90, wantChange: -10},
		{name: "bad clamps at zero", action: "BAD", startPoints: 5, wantPoints: 0, wantChange: -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestProfileService(t)
			parent := newParent()
			kid := newKid(parent, tt.startPoints)

			fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
			fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
			fx.profiles.EXPECT().UpdatePoints(ctx, kid.UserID, tt.wantPoints).Return(nil)
			fx.behavior.EXPECT().
				Create(ctx, mock.MatchedBy(func(l *entity.BehaviorLog) bool {
					return l.PointsChange == tt.wantChange && l.UserID == kid.UserID && l.LoggedBy == parent.UserID
				})).
				Return(nil)
			fx.publisher.EXPECT().
				PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
					return e.Type == service.EventBehaviorLogged && e.RecipientIDs[0] == kid.UserID.String()
				})).
				Return(nil)

			output, err := srv.LogBehavior(ctx, parent.UserID, kid.UserID, &usecase.LogBehaviorInput{ActionType: tt.action, Note: " tidy room "})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPoints, output.Points)
			assert.Equal(t, "tidy room", output.Log.Note)
		})
	}
}

func TestProfileService_LogBehavior_Errors(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)
	unlinked := newKid(nil, 0)

	t.Run("kid cannot log", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)

		_, err := srv.LogBehavior(ctx, kid.UserID, kid.UserID, &usecase.LogBehaviorInput{ActionType: "GOOD"})

		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
	})

	t.Run("unlinked kid", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, unlinked.UserID).Return(unlinked, nil)

		_, err := srv.LogBehavior(ctx, parent.UserID, unlinked.UserID, &usecase.LogBehaviorInput{ActionType: "GOOD"})

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})

	t.Run("unknown action", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)

		_, err := srv.LogBehavior(ctx, parent.UserID, kid.UserID, &usecase.LogBehaviorInput{ActionType: "OK"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		fx.profiles.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestProfileService_RelinkProfile(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	other := newParent()

	t.Run("link to self", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		kid := newKid(parent, 0)

		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil).Times(2)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.profiles.EXPECT().UpdateParent(ctx, kid.UserID, &parent.UserID).Return(nil)

		profile, err := srv.RelinkProfile(ctx, parent.UserID, kid.UserID, &usecase.RelinkProfileInput{ParentID: &parent.UserID})

		require.NoError(t, err)
		assert.Equal(t, parent.UserID, *profile.ParentID)
	})

	t.Run("another household is refused", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		kid := newKid(parent, 0)

		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, other.UserID).Return(other, nil)

		_, err := srv.RelinkProfile(ctx, parent.UserID, kid.UserID, &usecase.RelinkProfileInput{ParentID: &other.UserID})

		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
		assert.Equal(t, parent.UserID, *kid.ParentID)
		fx.profiles.AssertNotCalled(t, "UpdateParent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unlink", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		kid := newKid(parent, 0)

		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.profiles.EXPECT().UpdateParent(ctx, kid.UserID, (*uuid.UUID)(nil)).Return(nil)

		profile, err := srv.RelinkProfile(ctx, parent.UserID, kid.UserID, &usecase.RelinkProfileInput{})

		require.NoError(t, err)
		assert.Nil(t, profile.ParentID)
	})

	t.Run("new parent missing", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		kid := newKid(parent, 0)
		missing := uuid.New()

		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, missing).Return(nil, repository.ErrProfileNotFound)

		_, err := srv.RelinkProfile(ctx, parent.UserID, kid.UserID, &usecase.RelinkProfileInput{ParentID: &missing})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("new parent is a kid", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		kid := newKid(parent, 0)
		sibling := newKid(parent, 0)

		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, sibling.UserID).Return(sibling, nil)

		_, err := srv.RelinkProfile(ctx, parent.UserID, kid.UserID, &usecase.RelinkProfileInput{ParentID: &sibling.UserID})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestProfileService_DeleteKid(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)

	t.Run("linked kid", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.users.EXPECT().Delete(ctx, kid.UserID).Return(nil)

		require.NoError(t, srv.DeleteKid(ctx, parent.UserID, kid.UserID))
	})

	t.Run("parent cannot delete itself", func(t *testing.T) {
		srv, fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)

		err := srv.DeleteKid(ctx, parent.UserID, parent.UserID)

		assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
	})
}

func TestProfileService_GetActivity(t *testing.T) {
	srv, fx := createTestProfileService(t)

	ctx := context.Background()
	kid := newKid(nil, 0)
	completions := []*entity.ChoreCompletion{{ID: uuid.New(), UserID: kid.UserID}}

	fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
	fx.completions.EXPECT().ListByUser(ctx, kid.UserID, activityLimit).Return(completions, nil)
	fx.behavior.EXPECT().ListByUsers(ctx, []uuid.UUID{kid.UserID}, activityLimit).Return(nil, nil)
	fx.redemptions.EXPECT().
		List(ctx, repository.RedemptionFilter{UserID: &kid.UserID, Limit: activityLimit}).
		Return(nil, nil)

	activity, err := srv.GetActivity(ctx, kid.UserID, kid.UserID)

	require.NoError(t, err)
	assert.Equal(t, kid, activity.Profile)
	assert.Equal(t, completions, activity.Completions)
}
