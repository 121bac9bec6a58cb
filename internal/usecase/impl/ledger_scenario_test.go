package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"
	_ "time/tzdata"

	"chorechart/internal/domain/constants"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/infra/auth"
	"chorechart/internal/infra/persistence/migrations"
	"chorechart/internal/infra/persistence/postgres"
	"chorechart/internal/infra/qrcode"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledger wires the real services to a private in-memory SQLite database.
type ledger struct {
	accounts    usecase.AccountUsecase
	profiles    usecase.ProfileUsecase
	chores      *choreService
	rewards     *rewardService
	redemptions *redemptionService
	now         time.Time
}

func newLedger(t *testing.T, timezone string, start time.Time) *ledger {
	t.Helper()

	db, err := postgres.OpenSQLite(postgres.SQLiteMemoryDSN(uuid.NewString()))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, migrations.Up(sqlDB, constants.DatabaseDriverSQLite))

	cfg := newTestConfig(5)
	cfg.SecretKey.Access = "scenario-access-secret"
	cfg.SecretKey.Refresh = "scenario-refresh-secret"
	cfg.Auth.AccessTTL = time.Hour
	cfg.Auth.RefreshTTL = 24 * time.Hour
	cfg.Ledger.Timezone = timezone

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	txManager := postgres.NewTransactionManager(db)

	l := &ledger{now: start}
	now := func() time.Time { return l.now }

	l.accounts, err = NewAccountService(AccountServiceParams{
		TxManager:        txManager,
		RefreshTokenRepo: postgres.NewRefreshTokenRepository(db),
		Hasher:           auth.NewBcryptHasher(cfg),
		TokenService:     tokens,
		Config:           cfg,
		Logger:           logger,
	})
	require.NoError(t, err)
	l.profiles = NewProfileService(ProfileServiceParams{TxManager: txManager, Logger: logger})

	chores, err := NewChoreService(ChoreServiceParams{TxManager: txManager, Config: cfg, Logger: logger})
	require.NoError(t, err)
	l.chores = chores.(*choreService)
	l.chores.clock.now = now

	rewards, err := NewRewardService(RewardServiceParams{TxManager: txManager, Config: cfg, Logger: logger})
	require.NoError(t, err)
	l.rewards = rewards.(*rewardService)
	l.rewards.clock.now = now

	redemptions, err := NewRedemptionService(RedemptionServiceParams{
		TxManager:     txManager,
		QRCodeService: qrcode.NewQRCodeService(128, "medium"),
		Config:        cfg,
		Logger:        logger,
	})
	require.NoError(t, err)
	l.redemptions = redemptions.(*redemptionService)
	l.redemptions.clock.now = now

	return l
}

// household registers a parent and one linked kid.
func (l *ledger) household(t *testing.T) (parent, kid *entity.User) {
	t.Helper()
	ctx := context.Background()

	parent, err := l.accounts.RegisterParent(ctx, &usecase.RegisterParentInput{Username: "mom", Password: "secret1", Name: "媽媽"})
	require.NoError(t, err)
	kid, err = l.accounts.CreateKid(ctx, parent.ID, &usecase.CreateKidInput{Username: "amy", Password: "secret2", Name: "Amy"})
	require.NoError(t, err)

	return parent, kid
}

func (l *ledger) points(t *testing.T, id uuid.UUID) int {
	t.Helper()

	profile, err := l.profiles.GetMyProfile(context.Background(), id)
	require.NoError(t, err)

	return profile.Points
}

func TestLedgerScenario(t *testing.T) {
	l := newLedger(t, "UTC", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()
	parent, kid := l.household(t)

	login, err := l.accounts.Login(ctx, &usecase.LoginInput{Username: "amy", Password: "secret2"})
	require.NoError(t, err)
	assert.Equal(t, kid.ID, login.User.ID)

	twenty, thirty := 20, 30
	daily, err := l.chores.CreateChore(ctx, parent.ID, &usecase.ChoreInput{
		Title: "倒垃圾", PointsValue: &twenty, AssignedTo: kid.ID, ChoreType: string(entity.ChoreTypeDaily),
	})
	require.NoError(t, err)
	once, err := l.chores.CreateChore(ctx, parent.ID, &usecase.ChoreInput{
		Title: "洗車", PointsValue: &thirty, AssignedTo: kid.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ChoreTypeOneTime, once.ChoreType)

	t.Run("daily chore counts once per calendar date", func(t *testing.T) {
		out, err := l.chores.CompleteChore(ctx, kid.ID, daily.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, out.Points)

		_, err = l.chores.CompleteChore(ctx, kid.ID, daily.ID)
		require.ErrorIs(t, err, domainerrors.ErrAlreadyCompleted)
		assert.Equal(t, 20, l.points(t, kid.ID))

		l.now = l.now.Add(24 * time.Hour)
		out, err = l.chores.CompleteChore(ctx, kid.ID, daily.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, out.Points)
	})

	t.Run("one-time chore disappears once completed", func(t *testing.T) {
		out, err := l.chores.CompleteChore(ctx, kid.ID, once.ID)
		require.NoError(t, err)
		assert.Equal(t, 70, out.Points)

		_, err = l.chores.GetChore(ctx, kid.ID, once.ID)
		require.ErrorIs(t, err, domainerrors.ErrChoreNotFound)
	})

	t.Run("behavior adjusts the balance", func(t *testing.T) {
		out, err := l.profiles.LogBehavior(ctx, parent.ID, kid.ID, &usecase.LogBehaviorInput{ActionType: "GOOD", Note: "幫忙煮飯"})
		require.NoError(t, err)
		assert.Equal(t, 170, out.Points)

		out, err = l.profiles.LogBehavior(ctx, parent.ID, kid.ID, &usecase.LogBehaviorInput{ActionType: "BAD"})
		require.NoError(t, err)
		assert.Equal(t, 160, out.Points)
	})

	cost := 150
	reward, err := l.rewards.CreateReward(ctx, parent.ID, &usecase.RewardInput{Title: "看電影", Cost: &cost})
	require.NoError(t, err)

	var rejectedID uuid.UUID
	t.Run("redeem debits and reject refunds", func(t *testing.T) {
		out, err := l.rewards.RedeemReward(ctx, kid.ID, reward.ID)
		require.NoError(t, err)
		assert.Equal(t, 10, out.Points)
		assert.Equal(t, entity.RedemptionPending, out.Redemption.Status)
		rejectedID = out.Redemption.ID

		_, err = l.rewards.RedeemReward(ctx, kid.ID, reward.ID)
		require.ErrorIs(t, err, domainerrors.ErrInsufficientPoints)
		assert.Equal(t, 10, l.points(t, kid.ID))

		processed, err := l.redemptions.ProcessRedemption(ctx, parent.ID, rejectedID, &usecase.ProcessRedemptionInput{Action: "reject"})
		require.NoError(t, err)
		assert.Equal(t, entity.RedemptionRejected, processed.Status)
		assert.Equal(t, 160, l.points(t, kid.ID))

		_, err = l.redemptions.ProcessRedemption(ctx, parent.ID, rejectedID, &usecase.ProcessRedemptionInput{Action: "approve"})
		require.ErrorIs(t, err, domainerrors.ErrAlreadyProcessed)
		assert.Equal(t, 160, l.points(t, kid.ID))
	})

	t.Run("approve keeps the debit and issues a voucher", func(t *testing.T) {
		out, err := l.rewards.RedeemReward(ctx, kid.ID, reward.ID)
		require.NoError(t, err)

		_, err = l.redemptions.GetVoucher(ctx, kid.ID, out.Redemption.ID)
		require.ErrorIs(t, err, domainerrors.ErrVoucherUnavailable)

		_, err = l.redemptions.ProcessRedemption(ctx, parent.ID, out.Redemption.ID, &usecase.ProcessRedemptionInput{Action: "approve"})
		require.NoError(t, err)
		assert.Equal(t, 10, l.points(t, kid.ID))

		png, err := l.redemptions.GetVoucher(ctx, kid.ID, out.Redemption.ID)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	t.Run("activity explains the balance", func(t *testing.T) {
		activity, err := l.profiles.GetActivity(ctx, parent.ID, kid.ID)
		require.NoError(t, err)

		assert.Len(t, activity.Completions, 3)
		assert.Len(t, activity.Behavior, 2)
		assert.Len(t, activity.Redemptions, 2)

		balance := 0
		for _, c := range activity.Completions {
			balance += c.PointsEarned
		}
		for _, b := range activity.Behavior {
			balance += b.PointsChange
		}
		for _, r := range activity.Redemptions {
			if r.Status != entity.RedemptionRejected {
				balance -= r.Cost
			}
		}
		assert.Equal(t, l.points(t, kid.ID), balance)
	})
}

func TestLedgerDailyChoreAcrossMidnight(t *testing.T) {
	taipei, err := time.LoadLocation("Asia/Taipei")
	require.NoError(t, err)

	// 23:59 in Taipei is still 15:59 UTC of the same day.
	l := newLedger(t, "Asia/Taipei", time.Date(2026, 3, 1, 23, 59, 0, 0, taipei))
	ctx := context.Background()
	parent, kid := l.household(t)

	twenty := 20
	daily, err := l.chores.CreateChore(ctx, parent.ID, &usecase.ChoreInput{
		Title: "餵貓", PointsValue: &twenty, AssignedTo: kid.ID, ChoreType: string(entity.ChoreTypeDaily),
	})
	require.NoError(t, err)

	first, err := l.chores.CompleteChore(ctx, kid.ID, daily.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, first.Points)
	assert.Equal(t, "2026-03-01", first.Completion.CompletedOn)

	l.now = time.Date(2026, 3, 2, 0, 1, 0, 0, taipei)
	second, err := l.chores.CompleteChore(ctx, kid.ID, daily.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, second.Points)
	assert.Equal(t, "2026-03-02", second.Completion.CompletedOn)

	_, err = l.chores.CompleteChore(ctx, kid.ID, daily.ID)
	require.ErrorIs(t, err, domainerrors.ErrAlreadyCompleted)
	assert.Equal(t, 40, l.points(t, kid.ID))
}

func TestLedgerDailyChoreSwitchedToOneTime(t *testing.T) {
	l := newLedger(t, "UTC", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	ctx := context.Background()
	parent, kid := l.household(t)

	twenty := 20
	input := &usecase.ChoreInput{
		Title: "倒垃圾", PointsValue: &twenty, AssignedTo: kid.ID, ChoreType: string(entity.ChoreTypeDaily),
	}
	chore, err := l.chores.CreateChore(ctx, parent.ID, input)
	require.NoError(t, err)

	_, err = l.chores.CompleteChore(ctx, kid.ID, chore.ID)
	require.NoError(t, err)

	input.ChoreType = string(entity.ChoreTypeOneTime)
	_, err = l.chores.UpdateChore(ctx, parent.ID, chore.ID, input)
	require.NoError(t, err)

	active, err := l.chores.ListChores(ctx, kid.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)

	out, err := l.chores.CompleteChore(ctx, kid.ID, chore.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, out.Points)
	assert.Equal(t, entity.ChoreTypeOneTime, out.Completion.ChoreType)

	_, err = l.chores.GetChore(ctx, kid.ID, chore.ID)
	require.ErrorIs(t, err, domainerrors.ErrChoreNotFound)
}

func TestNewChoreService_UnknownLedgerTimezone(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Ledger.Timezone = "Asia/Taipeii"

	_, err := NewChoreService(ChoreServiceParams{Config: cfg, Logger: newDiscardLogger()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Asia/Taipeii")
}
