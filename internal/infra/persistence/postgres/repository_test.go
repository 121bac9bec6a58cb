package postgres

import (
	"context"
	"testing"
	"time"

	"chorechart/internal/domain/constants"
	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/repository"
	"chorechart/internal/infra/persistence/migrations"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite(SQLiteMemoryDSN(uuid.NewString()))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migrations.Up(sqlDB, constants.DatabaseDriverSQLite))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, role entity.Role, parentID *uuid.UUID) *entity.User {
	t.Helper()

	ctx := context.Background()
	user := &entity.User{Username: username, Name: username}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	profile := &entity.Profile{UserID: user.ID, Role: role, ParentID: parentID}
	require.NoError(t, NewProfileRepository(db).Create(ctx, profile))
	user.Profile = profile

	return user
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	parent := createTestUser(t, db, "mom", entity.RoleParent, nil)

	found, err := repo.FindByUsername(ctx, "mom")
	require.NoError(t, err)
	assert.Equal(t, parent.ID, found.ID)
	require.NotNil(t, found.Profile)
	assert.Equal(t, entity.RoleParent, found.Profile.Role)
	assert.Equal(t, "mom", found.Profile.Username)

	err = repo.Create(ctx, &entity.User{Username: "mom"})
	assert.ErrorIs(t, err, repository.ErrDuplicateUsername)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	parent := createTestUser(t, db, "dad", entity.RoleParent, nil)
	kid := createTestUser(t, db, "ian", entity.RoleKid, &parent.ID)

	require.NoError(t, NewBehaviorLogRepository(db).Create(ctx, &entity.BehaviorLog{
		UserID:       kid.ID,
		ActionType:   entity.BehaviorGood,
		PointsChange: entity.GoodBehaviorPoints,
		LoggedBy:     parent.ID,
	}))

	require.NoError(t, NewUserRepository(db).Delete(ctx, kid.ID))

	_, err := NewProfileRepository(db).FindByUserID(ctx, kid.ID)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)

	logs, err := NewBehaviorLogRepository(db).ListByUsers(ctx, []uuid.UUID{kid.ID}, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)

	assert.ErrorIs(t, NewUserRepository(db).Delete(ctx, kid.ID), repository.ErrUserNotFound)
}

func TestProfileRepository_KidsAndPoints(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewProfileRepository(db)

	parent := createTestUser(t, db, "mom", entity.RoleParent, nil)
	createTestUser(t, db, "zoe", entity.RoleKid, &parent.ID)
	gael := createTestUser(t, db, "gael", entity.RoleKid, &parent.ID)
	createTestUser(t, db, "stranger", entity.RoleKid, nil)

	kids, err := repo.ListKidsByParent(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "gael", kids[0].Username)
	assert.Equal(t, "zoe", kids[1].Username)

	require.NoError(t, repo.UpdatePoints(ctx, gael.ID, 120))

	err = NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		locked, err := factory.NewProfileRepository().FindByUserIDForUpdate(ctx, gael.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, 120, locked.Points)
		assert.Equal(t, "gael", locked.Username)

		return nil
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateParent(ctx, gael.ID, nil))
	kids, err = repo.ListKidsByParent(ctx, parent.ID)
	require.NoError(t, err)
	assert.Len(t, kids, 1)

	assert.ErrorIs(t, repo.UpdatePoints(ctx, uuid.New(), 1), repository.ErrProfileNotFound)
}

func TestChoreRepository_ListActiveByAssignee(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	chores := NewChoreRepository(db)
	completions := NewCompletionRepository(db)

	parent := createTestUser(t, db, "mom", entity.RoleParent, nil)
	kid := createTestUser(t, db, "ian", entity.RoleKid, &parent.ID)

	daily := &entity.Chore{Title: "Brush teeth", PointsValue: 5, AssignedTo: kid.ID, ChoreType: entity.ChoreTypeDaily, Icon: "🪥", CreatedBy: parent.ID}
	oneTime := &entity.Chore{Title: "Clean garage", PointsValue: 0, AssignedTo: kid.ID, ChoreType: entity.ChoreTypeOneTime, Icon: "🧹", CreatedBy: parent.ID}
	require.NoError(t, chores.Create(ctx, daily))
	require.NoError(t, chores.Create(ctx, oneTime))

	stored, err := chores.FindByID(ctx, oneTime.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.PointsValue)

	require.NoError(t, completions.Create(ctx, &entity.ChoreCompletion{
		UserID:       kid.ID,
		ChoreID:      daily.ID,
		ChoreTitle:   daily.Title,
		PointsEarned: daily.PointsValue,
		ChoreType:    entity.ChoreTypeDaily,
		CompletedAt:  time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC),
		CompletedOn:  "2024-05-01",
	}))

	active, err := chores.ListActiveByAssignee(ctx, kid.ID, "2024-05-01")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, oneTime.ID, active[0].ID)

	active, err = chores.ListActiveByAssignee(ctx, kid.ID, "2024-05-02")
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := chores.ListByAssignees(ctx, []uuid.UUID{kid.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCompletionRepository_DuplicateOnSameDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCompletionRepository(db)

	kid := createTestUser(t, db, "gael", entity.RoleKid, nil)
	choreID := uuid.New()

	completion := func(on string) *entity.ChoreCompletion {
		return &entity.ChoreCompletion{
			UserID:       kid.ID,
			ChoreID:      choreID,
			ChoreTitle:   "Feed the cat",
			PointsEarned: 10,
			ChoreType:    entity.ChoreTypeDaily,
			CompletedAt:  time.Now(),
			CompletedOn:  on,
		}
	}

	require.NoError(t, repo.Create(ctx, completion("2024-05-01")))
	assert.ErrorIs(t, repo.Create(ctx, completion("2024-05-01")), repository.ErrDuplicateCompletion)
	require.NoError(t, repo.Create(ctx, completion("2024-05-02")))

	done, err := repo.ExistsOn(ctx, kid.ID, choreID, "2024-05-01")
	require.NoError(t, err)
	assert.True(t, done)

	done, err = repo.ExistsOn(ctx, kid.ID, choreID, "2024-05-03")
	require.NoError(t, err)
	assert.False(t, done)

	list, err := repo.ListByUser(ctx, kid.ID, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCompletionRepository_OneTimeHasNoDateKey(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCompletionRepository(db)

	kid := createTestUser(t, db, "amy", entity.RoleKid, nil)
	choreID := uuid.New()

	completion := func(choreType entity.ChoreType) *entity.ChoreCompletion {
		return &entity.ChoreCompletion{
			UserID:       kid.ID,
			ChoreID:      choreID,
			ChoreTitle:   "Wash the car",
			PointsEarned: 30,
			ChoreType:    choreType,
			CompletedAt:  time.Now(),
			CompletedOn:  "2024-05-01",
		}
	}

	// A chore switched from DAILY to ONE_TIME after being completed today.
	require.NoError(t, repo.Create(ctx, completion(entity.ChoreTypeDaily)))
	require.NoError(t, repo.Create(ctx, completion(entity.ChoreTypeOneTime)))
	require.NoError(t, repo.Create(ctx, completion(entity.ChoreTypeOneTime)))

	list, err := repo.ListByUser(ctx, kid.ID, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.ElementsMatch(t,
		[]entity.ChoreType{entity.ChoreTypeDaily, entity.ChoreTypeOneTime, entity.ChoreTypeOneTime},
		[]entity.ChoreType{list[0].ChoreType, list[1].ChoreType, list[2].ChoreType},
	)
}

func TestRedemptionRepository_MarkProcessedOnce(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRedemptionRepository(db)

	parent := createTestUser(t, db, "mom", entity.RoleParent, nil)
	kid := createTestUser(t, db, "ian", entity.RoleKid, &parent.ID)

	redemption := &entity.Redemption{
		UserID:      kid.ID,
		RewardID:    uuid.New(),
		RewardTitle: "Ice cream",
		Cost:        50,
		ClaimedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(ctx, redemption))

	pending, err := repo.List(ctx, repository.RedemptionFilter{Status: entity.RedemptionPending})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	now := time.Now()
	require.NoError(t, repo.MarkProcessed(ctx, redemption.ID, entity.RedemptionApproved, now, parent.ID))

	err = repo.MarkProcessed(ctx, redemption.ID, entity.RedemptionRejected, now, parent.ID)
	assert.ErrorIs(t, err, repository.ErrRedemptionNotPending)

	err = repo.MarkProcessed(ctx, uuid.New(), entity.RedemptionRejected, now, parent.ID)
	assert.ErrorIs(t, err, repository.ErrRedemptionNotFound)

	stored, err := repo.FindByID(ctx, redemption.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RedemptionApproved, stored.Status)
	require.NotNil(t, stored.ProcessedBy)
	assert.Equal(t, parent.ID, *stored.ProcessedBy)

	own, err := repo.List(ctx, repository.RedemptionFilter{UserID: &parent.ID})
	require.NoError(t, err)
	assert.Empty(t, own)
}

func TestRewardRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewRewardRepository(db)

	parent := createTestUser(t, db, "mom", entity.RoleParent, nil)

	reward := &entity.Reward{Title: "Movie night", Cost: 200, Icon: "🎬", CreatedBy: parent.ID}
	require.NoError(t, repo.Create(ctx, reward))

	reward.Cost = 150
	require.NoError(t, repo.Update(ctx, reward))

	stored, err := repo.FindByID(ctx, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, stored.Cost)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, reward.ID))
	_, err = repo.FindByID(ctx, reward.ID)
	assert.ErrorIs(t, err, repository.ErrRewardNotFound)
}

func TestDeviceRepository_DeactivateAndReactivate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewDeviceRepository(db)

	kid := createTestUser(t, db, "ian", entity.RoleKid, nil)

	device := &entity.UserDevice{UserID: kid.ID, FCMToken: "token-1", DeviceID: "tablet", Platform: entity.PlatformAndroid, IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, device))

	err := repo.CreateDevice(ctx, &entity.UserDevice{UserID: kid.ID, FCMToken: "token-2", DeviceID: "tablet", Platform: entity.PlatformAndroid, IsActive: true})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)

	require.NoError(t, repo.DeactivateByTokens(ctx, []string{"token-1"}))
	active, err := repo.FindActiveDevicesByUsers(ctx, []uuid.UUID{kid.ID})
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-3"))
	active, err = repo.FindActiveDevicesByUsers(ctx, []uuid.UUID{kid.ID})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-3", active[0].FCMToken)

	require.NoError(t, repo.DeleteDevice(ctx, device.ID))
	assert.ErrorIs(t, repo.DeleteDevice(ctx, device.ID), repository.ErrDeviceNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	kid := createTestUser(t, db, "gael", entity.RoleKid, nil)
	errBoom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewProfileRepository().UpdatePoints(ctx, kid.ID, 500); err != nil {
			return err
		}

		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	profile, err := NewProfileRepository(db).FindByUserID(ctx, kid.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, profile.Points)
}
