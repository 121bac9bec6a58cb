package impl

import (
	"context"
	"testing"
	"time"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"
	"chorechart/internal/domain/service"
	mockSvc "chorechart/internal/mocks/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var redemptionTestNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

func createTestRedemptionService(t *testing.T) (*redemptionService, *txFixture, *mockSvc.MockQRCodeService) {
	fx := newTxFixture(t)
	qr := mockSvc.NewMockQRCodeService(t)
	uc, err := NewRedemptionService(RedemptionServiceParams{
		TxManager:     fx.txManager,
		QRCodeService: qr,
		Publisher:     fx.publisher,
		Config:        newTestConfig(0),
		Logger:        newDiscardLogger(),
	})
	require.NoError(t, err)
	srv := uc.(*redemptionService)
	srv.clock = fixedClock(redemptionTestNow)

	return srv, fx, qr
}

func TestRedemptionService_ProcessRedemption_RejectRefunds(t *testing.T) {
	srv, fx, _ := createTestRedemptionService(t)

	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)
	redemption := &entity.Redemption{ID: uuid.New(), UserID: kid.UserID, RewardTitle: "Ice cream", Cost: 150, Status: entity.RedemptionPending}

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.redemptions.EXPECT().FindByID(ctx, redemption.ID).Return(redemption, nil)
	fx.redemptions.EXPECT().MarkProcessed(ctx, redemption.ID, entity.RedemptionRejected, redemptionTestNow, parent.UserID).Return(nil)
	fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, kid.UserID).Return(kid, nil)
	fx.profiles.EXPECT().UpdatePoints(ctx, kid.UserID, 150).Return(nil)
	fx.publisher.EXPECT().
		PublishLedgerEvent(ctx, mock.MatchedBy(func(e *service.LedgerEvent) bool {
			return e.Type == service.EventRedemptionProcessed && e.Data["status"] == "REJECTED" && e.RecipientIDs[0] == kid.UserID.String()
		})).
		Return(nil)

	got, err := srv.ProcessRedemption(ctx, parent.UserID, redemption.ID, &usecase.ProcessRedemptionInput{Action: "reject"})

	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionRejected, got.Status)
	require.NotNil(t, got.ProcessedAt)
	assert.Equal(t, redemptionTestNow, *got.ProcessedAt)
	assert.Equal(t, 150, kid.Points)
}

func TestRedemptionService_ProcessRedemption_ApproveKeepsPoints(t *testing.T) {
	srv, fx, _ := createTestRedemptionService(t)

	ctx := context.Background()
	parent := newParent()
	redemption := &entity.Redemption{ID: uuid.New(), UserID: uuid.New(), Cost: 50, Status: entity.RedemptionPending}

	fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
	fx.redemptions.EXPECT().FindByID(ctx, redemption.ID).Return(redemption, nil)
	fx.redemptions.EXPECT().MarkProcessed(ctx, redemption.ID, entity.RedemptionApproved, redemptionTestNow, parent.UserID).Return(nil)
	fx.publisher.EXPECT().PublishLedgerEvent(ctx, mock.Anything).Return(nil)

	got, err := srv.ProcessRedemption(ctx, parent.UserID, redemption.ID, &usecase.ProcessRedemptionInput{Action: "APPROVE"})

	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionApproved, got.Status)
	fx.profiles.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything)
}

func TestRedemptionService_ProcessRedemption_Errors(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)
	pending := &entity.Redemption{ID: uuid.New(), UserID: kid.UserID, Cost: 10, Status: entity.RedemptionPending}

	tests := []struct {
		name    string
		actor   *entity.Profile
		action  string
		setup   func(fx *txFixture)
		wantErr error
	}{
		{
			name:   "missing redemption",
			actor:  parent,
			action: "approve",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
				fx.redemptions.EXPECT().FindByID(ctx, pending.ID).Return(nil, repository.ErrRedemptionNotFound)
			},
			wantErr: domainerrors.ErrRedemptionNotFound,
		},
		{
			name:   "kid cannot process",
			actor:  kid,
			action: "approve",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
				fx.redemptions.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
			},
			wantErr: domainerrors.ErrPermissionDenied,
		},
		{
			name:   "unknown action",
			actor:  parent,
			action: "maybe",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
				fx.redemptions.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
			},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:   "already processed",
			actor:  parent,
			action: "reject",
			setup: func(fx *txFixture) {
				fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
				fx.redemptions.EXPECT().FindByID(ctx, pending.ID).Return(pending, nil)
				fx.redemptions.EXPECT().
					MarkProcessed(ctx, pending.ID, entity.RedemptionRejected, redemptionTestNow, parent.UserID).
					Return(repository.ErrRedemptionNotPending)
			},
			wantErr: domainerrors.ErrAlreadyProcessed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, fx, _ := createTestRedemptionService(t)
			tt.setup(fx)

			got, err := srv.ProcessRedemption(ctx, tt.actor.UserID, pending.ID, &usecase.ProcessRedemptionInput{Action: tt.action})

			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			fx.profiles.AssertNotCalled(t, "UpdatePoints", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRedemptionService_ListRedemptions_Scope(t *testing.T) {
	ctx := context.Background()
	parent := newParent()
	kid := newKid(parent, 0)

	t.Run("parent sees the global queue", func(t *testing.T) {
		srv, fx, _ := createTestRedemptionService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.redemptions.EXPECT().
			List(ctx, repository.RedemptionFilter{Status: entity.RedemptionPending}).
			Return([]*entity.Redemption{}, nil)

		_, err := srv.ListRedemptions(ctx, parent.UserID, entity.RedemptionPending)
		require.NoError(t, err)
	})

	t.Run("kid sees own redemptions", func(t *testing.T) {
		srv, fx, _ := createTestRedemptionService(t)
		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.redemptions.EXPECT().
			List(ctx, mock.MatchedBy(func(f repository.RedemptionFilter) bool {
				return f.UserID != nil && *f.UserID == kid.UserID && f.Status == ""
			})).
			Return([]*entity.Redemption{}, nil)

		_, err := srv.ListRedemptions(ctx, kid.UserID, "")
		require.NoError(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		srv, _, _ := createTestRedemptionService(t)

		_, err := srv.ListRedemptions(ctx, kid.UserID, "LOST")
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestRedemptionService_GetVoucher(t *testing.T) {
	ctx := context.Background()
	kid := newKid(nil, 0)

	t.Run("approved", func(t *testing.T) {
		srv, fx, qr := createTestRedemptionService(t)
		redemption := &entity.Redemption{ID: uuid.New(), UserID: kid.UserID, RewardTitle: "Zoo", Status: entity.RedemptionApproved}

		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.redemptions.EXPECT().FindByID(ctx, redemption.ID).Return(redemption, nil)
		qr.EXPECT().
			GenerateVoucherQR(service.VoucherData{RedemptionID: redemption.ID, UserID: kid.UserID, RewardTitle: "Zoo"}).
			Return([]byte("png"), nil)

		png, err := srv.GetVoucher(ctx, kid.UserID, redemption.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("pending", func(t *testing.T) {
		srv, fx, _ := createTestRedemptionService(t)
		redemption := &entity.Redemption{ID: uuid.New(), UserID: kid.UserID, Status: entity.RedemptionPending}

		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.redemptions.EXPECT().FindByID(ctx, redemption.ID).Return(redemption, nil)

		_, err := srv.GetVoucher(ctx, kid.UserID, redemption.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrVoucherUnavailable))
	})

	t.Run("another kid's voucher", func(t *testing.T) {
		srv, fx, _ := createTestRedemptionService(t)
		redemption := &entity.Redemption{ID: uuid.New(), UserID: uuid.New(), Status: entity.RedemptionApproved}

		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)
		fx.redemptions.EXPECT().FindByID(ctx, redemption.ID).Return(redemption, nil)

		_, err := srv.GetVoucher(ctx, kid.UserID, redemption.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrRedemptionNotFound))
	})
}
