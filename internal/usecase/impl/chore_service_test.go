package impl

import (
	"context"
	"testing"
	"time"

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

var choreTestNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func createTestChoreService(t *testing.T) (*choreService, *txFixture) {
	fx := newTxFixture(t)
	uc, err := NewChoreService(ChoreServiceParams{
		TxManager: fx.txManager,
		Publisher: fx.publisher,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)
	srv := uc.(*choreService)
	srv.clock = fixedClock(choreTestNow)

	return srv, fx
}

func TestChoreService_CompleteChore_OneTime(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 5)
	chore := &entity.Chore{ID: uuid.New(), Title: "Dishes", PointsValue: 10, AssignedTo: kid.UserID, ChoreType: entity.ChoreTypeOneTime}

	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().FindByID(ctx, chore.ID).Return(chore, nil)
	fx.profiles.EXPECT().UpdatePoints(ctx, kid.UserID, 15).Return(nil)
	fx.completions.EXPECT().
		Create(ctx, mock.MatchedBy(func(c *entity.ChoreCompletion) bool {
			return c.ChoreID == chore.ID && c.PointsEarned == 10 && c.CompletedOn == "2026-03-01" && c.ChoreTitle == "Dishes"
		})).
		Return(nil)
	fx.chores.EXPECT().Delete(ctx, chore.ID).Return(nil)
	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
			return e.Type == service.EventChoreCompleted && e.RecipientIDs[0] == parent.UserID.String()
		})).
		Return(nil)

	output, err := srv.CompleteChore(ctx, kid.UserID, chore.ID)

	require.NoError(t, err)
	assert.Equal(t, 15, output.Points)
	assert.Equal(t, kid.UserID, output.Completion.UserID)
}

func TestChoreService_CompleteChore_DailyKeepsChore(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	kid := newKid(nil, 0)
	chore := &entity.Chore{ID: uuid.New(), Title: "Feed cat", PointsValue: 20, AssignedTo: kid.UserID, ChoreType: entity.ChoreTypeDaily}

	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().FindByID(ctx, chore.ID).Return(chore, nil)
	fx.completions.EXPECT().ExistsOn(ctx, kid.UserID, chore.ID, "2026-03-01").Return(false, nil)
	fx.profiles.EXPECT().UpdatePoints(ctx, kid.UserID, 20).Return(nil)
	fx.completions.EXPECT().Create(ctx, mock.AnythingOfType("*entity.ChoreCompletion")).Return(nil)

	// An unlinked kid has nobody to notify, so nothing is published.
	output, err := srv.CompleteChore(ctx, kid.UserID, chore.ID)

	require.NoError(t, err)
	assert.Equal(t, 20, output.Points)
	assert.Equal(t, entity.ChoreTypeDaily, output.Completion.ChoreType)
	fx.chores.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestChoreService_CompleteChore_DailyAlreadyDoneToday(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	kid := newKid(nil, 40)
	chore := &entity.Chore{ID: uuid.New(), PointsValue: 20, AssignedTo: kid.UserID, ChoreType: entity.ChoreTypeDaily}

	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().FindByID(ctx, chore.ID).Return(chore, nil)
	fx.completions.EXPECT().ExistsOn(ctx, kid.UserID, chore.ID, "2026-03-01").Return(true, nil)

	output, err := srv.CompleteChore(ctx, kid.UserID, chore.ID)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyCompleted))
	assert.Equal(t, 40, kid.Points)
}

func TestChoreService_CompleteChore_ConcurrentDuplicate(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	kid := newKid(nil, 0)
	chore := &entity.Chore{ID: uuid.New(), PointsValue: 20, AssignedTo: kid.UserID, ChoreType: entity.ChoreTypeDaily}

	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().FindByID(ctx, chore.ID).Return(chore, nil)
	fx.completions.EXPECT().ExistsOn(ctx, kid.UserID, chore.ID, "2026-03-01").Return(false, nil)
	fx.profiles.EXPECT().UpdatePoints(ctx, kid.UserID, 20).Return(nil)
	fx.completions.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateCompletion)

	_, err := srv.CompleteChore(ctx, kid.UserID, chore.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyCompleted))
}

func TestChoreService_CompleteChore_Errors(t *testing.T) {
	ctx := context.Background()
	kid := newKid(nil, 0)
	otherKid := newKid(nil, 0)
	choreID := uuid.New()

	tests := []struct {
		name    string
		setup   func(fx *txFixture)
		wantErr error
	}{
		{
			name: "chore missing",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
				fx.chores.EXPECT().FindByID(ctx, choreID).Return(nil, repository.ErrChoreNotFound)
			},
			wantErr: domainerrors.ErrChoreNotFound,
		},
		{
			name: "not the assignee",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
				fx.chores.EXPECT().FindByID(ctx, choreID).Return(&entity.Chore{ID: choreID, AssignedTo: otherKid.UserID}, nil)
			},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name: "caller without profile",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(nil, repository.ErrProfileNotFound)
			},
			wantErr: domainerrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestChoreService(t)
			tt.setup(fx)

			output, err := srv.CompleteChore(ctx, kid.UserID, choreID)

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestChoreService_CreateChore_Defaults(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Chore")).Return(nil)

	chore, err := srv.CreateChore(ctx, parent.UserID, &usecase.ChoreInput{Title: " Make bed ", AssignedTo: kid.UserID})

	require.NoError(t, err)
	assert.Equal(t, "Make bed", chore.Title)
	assert.Equal(t, entity.DefaultChorePoints, chore.PointsValue)
	assert.Equal(t, entity.ChoreTypeOneTime, chore.ChoreType)
	assert.Equal(t, entity.DefaultChoreIcon, chore.Icon)
	assert.Equal(t, parent.UserID, chore.CreatedBy)
}

func TestChoreService_CreateChore_ZeroPointsKept(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)
	zero := 0

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Chore")).Return(nil)

	chore, err := srv.CreateChore(ctx, parent.UserID, &usecase.ChoreInput{
		Title: "Smile", AssignedTo: kid.UserID, PointsValue: &zero, ChoreType: "daily",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, chore.PointsValue)
	assert.Equal(t, entity.ChoreTypeDaily, chore.ChoreType)
}

func TestChoreService_CreateChore_Rejected(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	otherParent := newParent()
	kid := newKid(parent, 0)
	foreignKid := newKid(otherParent, 0)
	negative := -5

	tests := []struct {
		name    string
		actor   *entity.Profile
		input   *usecase.ChoreInput
		setup   func(fx *txFixture)
		wantErr error
	}{
		{
			name:    "empty title",
			actor:   parent,
			input:   &usecase.ChoreInput{Title: "  ", AssignedTo: kid.UserID},
			setup:   func(*txFixture) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "negative points",
			actor:   parent,
			input:   &usecase.ChoreInput{Title: "x", AssignedTo: kid.UserID, PointsValue: &negative},
			setup:   func(*txFixture) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown chore type",
			actor:   parent,
			input:   &usecase.ChoreInput{Title: "x", AssignedTo: kid.UserID, ChoreType: "WEEKLY"},
			setup:   func(*txFixture) {},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:  "kid cannot assign",
			actor: kid,
			input: &usecase.ChoreInput{Title: "x", AssignedTo: kid.UserID},
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
			},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:  "kid of another household",
			actor: parent,
			input: &usecase.ChoreInput{Title: "x", AssignedTo: foreignKid.UserID},
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
				fx.profiles.EXPECT().FindByUserID(ctx, foreignKid.UserID).Return(foreignKid, nil)
			},
			wantErr: domainerrors.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx := createTestChoreService(t)
			tt.setup(fx)

			chore, err := srv.CreateChore(ctx, tt.actor.UserID, tt.input)

			assert.Nil(t, chore)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestChoreService_ListChores(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)
	chores := []*entity.Chore{{ID: uuid.New(), AssignedTo: kid.UserID}}

	t.Run("kid sees active chores of today", func(t *testing.T) {
		srv, fx := createTestChoreService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.chores.EXPECT().ListActiveByAssignee(ctx, kid.UserID, "2026-03-01").Return(chores, nil)

		got, err := srv.ListChores(ctx, kid.UserID)

		require.NoError(t, err)
		assert.Equal(t, chores, got)
	})

	t.Run("parent sees linked kids' chores", func(t *testing.T) {
		srv, fx := createTestChoreService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.profiles.EXPECT().ListKidsByParent(ctx, parent.UserID).Return([]*entity.Profile{kid}, nil)
		fx.chores.EXPECT().ListByAssignees(ctx, []uuid.UUID{kid.UserID}).Return(chores, nil)

		got, err := srv.ListChores(ctx, parent.UserID)

		require.NoError(t, err)
		assert.Equal(t, chores, got)
	})
}

func TestChoreService_GetChore_HiddenFromOtherKid(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	kid := newKid(nil, 0)
	otherKid := newKid(nil, 0)
	chore := &entity.Chore{ID: uuid.New(), AssignedTo: otherKid.UserID}

	fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().FindByID(ctx, chore.ID).Return(chore, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, otherKid.UserID).Return(otherKid, nil)

	got, err := srv.GetChore(ctx, kid.UserID, chore.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrChoreNotFound))
}

func TestChoreService_DeleteChore(t *testing.T) {
	srv, fx := createTestChoreService(t)

	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)
	chore := &entity.Chore{ID: uuid.New(), AssignedTo: kid.UserID}

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.chores.EXPECT().FindByID(ctx, chore.ID).Return(chore, nil)
	fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
	fx.chores.EXPECT().Delete(ctx, chore.ID).Return(nil)

	require.NoError(t, srv.DeleteChore(ctx, parent.UserID, chore.ID))
}
