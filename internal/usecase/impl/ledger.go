package impl

import (
	"context"
	"time"

	"chorechart/config"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// activityLimit caps each list returned in a profile's activity view.
const activityLimit = 50

// clock supplies the current time and the ledger time zone used for calendar dates.
type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(cfg *config.Config) (clock, error) {
	loc := time.UTC
	if cfg != nil {
		l, err := cfg.LedgerLocation()
		if err != nil {
			return clock{}, err
		}
		loc = l
	}

	return clock{now: time.Now, loc: loc}, nil
}

// dateOf returns the ledger calendar date of t.
func (c clock) dateOf(t time.Time) string {
	return entity.CalendarDate(t, c.loc)
}

// loadActor loads the caller's profile from the store. Permission checks always use
// this profile, never the roles carried in the token.
func loadActor(ctx context.Context, profiles repository.ProfileRepository, actorID uuid.UUID) (*entity.Profile, error) {
	actor, err := profiles.FindByUserID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "actor has no profile")
		}

		return nil, errors.Wrap(err, "failed to load actor profile")
	}

	return actor, nil
}

// lockActor loads the caller's profile with a row lock held until the transaction ends.
func lockActor(ctx context.Context, profiles repository.ProfileRepository, actorID uuid.UUID) (*entity.Profile, error) {
	actor, err := profiles.FindByUserIDForUpdate(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "actor has no profile")
		}

		return nil, errors.Wrap(err, "failed to lock actor profile")
	}

	return actor, nil
}

// findProfile loads a target profile, mapping a miss to PROFILE_NOT_FOUND.
func findProfile(ctx context.Context, profiles repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// lockProfile is findProfile with a row lock.
func lockProfile(ctx context.Context, profiles repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := profiles.FindByUserIDForUpdate(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProfileNotFound)
		}

		return nil, errors.Wrap(err, "failed to lock profile")
	}

	return profile, nil
}

// credit adds amount to a locked profile and stores the new balance.
func credit(ctx context.Context, profiles repository.ProfileRepository, profile *entity.Profile, amount int) (int, error) {
	balance := profile.Credit(amount)
	if err := profiles.UpdatePoints(ctx, profile.UserID, balance); err != nil {
		return 0, errors.Wrap(err, "failed to credit points")
	}

	return balance, nil
}

// debit subtracts amount from a locked profile, clamping at zero, and stores the new balance.
func debit(ctx context.Context, profiles repository.ProfileRepository, profile *entity.Profile, amount int) (int, error) {
	balance := profile.Debit(amount)
	if err := profiles.UpdatePoints(ctx, profile.UserID, balance); err != nil {
		return 0, errors.Wrap(err, "failed to debit points")
	}

	return balance, nil
}

func profileIDs(profiles []*entity.Profile) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.UserID)
	}

	return ids
}
