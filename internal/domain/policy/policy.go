// Package policy decides who may see and change which household records.
// Every usecase and both delivery surfaces go through these checks; a caller's
// profile is always the one loaded from the store, never the token claims.
package policy

import (
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"

	"github.com/google/uuid"
)

// CanViewProfile reports whether actor may see target: their own profile, or a kid linked to them.
func CanViewProfile(actor, target *entity.Profile) bool {
	if actor == nil || target == nil {
		return false
	}
	if actor.UserID == target.UserID {
		return true
	}

	return actor.IsParent() && target.IsKid() && target.IsChildOf(actor.UserID)
}

// RequireParent fails with PermissionDenied unless actor is a PARENT.
func RequireParent(actor *entity.Profile) error {
	if !actor.IsParent() {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// RequireKid fails with PermissionDenied unless actor is a KID.
func RequireKid(actor *entity.Profile) error {
	if !actor.IsKid() {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// CanViewChore reports whether actor may see a chore assigned to assignee.
func CanViewChore(actor *entity.Profile, chore *entity.Chore, assignee *entity.Profile) bool {
	if actor == nil || chore == nil {
		return false
	}
	if actor.IsKid() {
		return chore.AssignedTo == actor.UserID
	}

	return assignee != nil && assignee.UserID == chore.AssignedTo && CanViewProfile(actor, assignee)
}

// CheckAssign validates a chore assignment made by actor.
// Only parents assign, and only to kids linked to them.
func CheckAssign(actor, assignee *entity.Profile) error {
	if err := RequireParent(actor); err != nil {
		return err
	}
	if assignee == nil || !CanViewProfile(actor, assignee) {
		return domainerrors.ErrProfileNotFound
	}
	if !assignee.IsKid() {
		return domainerrors.ErrValidationFailed.WithDetails("chores can only be assigned to kids")
	}

	return nil
}

// CheckManageChore validates an update or deletion of chore by actor.
func CheckManageChore(actor *entity.Profile, chore *entity.Chore, assignee *entity.Profile) error {
	if err := RequireParent(actor); err != nil {
		return err
	}
	if !CanViewChore(actor, chore, assignee) {
		return domainerrors.ErrChoreNotFound
	}

	return nil
}

// CheckComplete validates that actor may complete chore. Only the assignee may.
func CheckComplete(actor *entity.Profile, chore *entity.Chore) error {
	if actor == nil || chore == nil || chore.AssignedTo != actor.UserID {
		return domainerrors.ErrPermissionDenied
	}

	return nil
}

// CheckManageRewards validates reward create, update and delete.
func CheckManageRewards(actor *entity.Profile) error {
	return RequireParent(actor)
}

// CheckRedeem validates that actor may spend their own points on a reward.
func CheckRedeem(actor *entity.Profile) error {
	return RequireKid(actor)
}

// CanViewRedemption reports whether actor may see r. Parents review every redemption.
func CanViewRedemption(actor *entity.Profile, r *entity.Redemption) bool {
	if actor == nil || r == nil {
		return false
	}

	return actor.IsParent() || r.UserID == actor.UserID
}

// RedemptionScope returns the user filter for listing redemptions: nil for parents, the kid's own id otherwise.
func RedemptionScope(actor *entity.Profile) *uuid.UUID {
	if actor.IsParent() {
		return nil
	}
	id := actor.UserID

	return &id
}

// CheckProcessRedemption validates an approve or reject decision.
func CheckProcessRedemption(actor *entity.Profile) error {
	return RequireParent(actor)
}

// CheckLogBehavior validates a behavior adjustment of target by actor.
func CheckLogBehavior(actor, target *entity.Profile) error {
	if err := RequireParent(actor); err != nil {
		return err
	}
	if !CanViewProfile(actor, target) {
		return domainerrors.ErrProfileNotFound
	}
	if !target.IsKid() {
		return domainerrors.ErrValidationFailed.WithDetails("behavior can only be logged for kids")
	}

	return nil
}

// CheckCreateKid validates kid account creation.
func CheckCreateKid(actor *entity.Profile) error {
	return RequireParent(actor)
}

// CheckRelink validates linking target to newParent, or unlinking it when newParent is nil.
// A parent may only link kids to themself.
func CheckRelink(actor, target, newParent *entity.Profile) error {
	if err := RequireParent(actor); err != nil {
		return err
	}
	if !CanViewProfile(actor, target) {
		return domainerrors.ErrProfileNotFound
	}
	if !target.IsKid() {
		return domainerrors.ErrValidationFailed.WithDetails("only kids can be linked to a parent")
	}
	if newParent != nil && !newParent.IsParent() {
		return domainerrors.ErrValidationFailed.WithDetails("parent_id must reference a parent profile")
	}
	if newParent != nil && newParent.UserID != actor.UserID {
		return domainerrors.ErrPermissionDenied.WithDetails("kids can only be linked to yourself")
	}

	return nil
}

// CheckDeleteKid validates deletion of a kid account by actor.
func CheckDeleteKid(actor, target *entity.Profile) error {
	if err := RequireParent(actor); err != nil {
		return err
	}
	if !CanViewProfile(actor, target) || !target.IsKid() {
		return domainerrors.ErrProfileNotFound
	}

	return nil
}
