package policy

import (
	"testing"

	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

type household struct {
	parent      *entity.Profile
	otherParent *entity.Profile
	kid         *entity.Profile
	otherKid    *entity.Profile
}

func newHousehold() household {
	parent := &entity.Profile{UserID: uuid.New(), Role: entity.RoleParent}
	otherParent := &entity.Profile{UserID: uuid.New(), Role: entity.RoleParent}
	kid := &entity.Profile{UserID: uuid.New(), Role: entity.RoleKid, ParentID: &parent.UserID}
	otherKid := &entity.Profile{UserID: uuid.New(), Role: entity.RoleKid, ParentID: &otherParent.UserID}

	return household{parent: parent, otherParent: otherParent, kid: kid, otherKid: otherKid}
}

func TestCanViewProfile(t *testing.T) {
	h := newHousehold()

	assert.True(t, CanViewProfile(h.parent, h.parent))
	assert.True(t, CanViewProfile(h.parent, h.kid))
	assert.False(t, CanViewProfile(h.parent, h.otherKid), "linkage is strict")
	assert.False(t, CanViewProfile(h.parent, h.otherParent))
	assert.True(t, CanViewProfile(h.kid, h.kid))
	assert.False(t, CanViewProfile(h.kid, h.parent))
	assert.False(t, CanViewProfile(h.kid, h.otherKid))
	assert.False(t, CanViewProfile(nil, h.kid))
}

func TestCanViewChore(t *testing.T) {
	h := newHousehold()
	chore := &entity.Chore{ID: uuid.New(), AssignedTo: h.kid.UserID}

	assert.True(t, CanViewChore(h.kid, chore, h.kid))
	assert.False(t, CanViewChore(h.otherKid, chore, h.kid))
	assert.True(t, CanViewChore(h.parent, chore, h.kid))
	assert.False(t, CanViewChore(h.otherParent, chore, h.kid))
	assert.False(t, CanViewChore(h.parent, chore, h.otherKid), "assignee must match the chore")
}

func TestCheckAssign(t *testing.T) {
	h := newHousehold()

	assert.NoError(t, CheckAssign(h.parent, h.kid))
	assert.True(t, errors.Is(CheckAssign(h.kid, h.kid), domainerrors.ErrPermissionDenied))
	assert.True(t, errors.Is(CheckAssign(h.parent, h.otherKid), domainerrors.ErrProfileNotFound))
	assert.True(t, errors.Is(CheckAssign(h.parent, h.parent), domainerrors.ErrValidationFailed))
}

func TestCheckComplete(t *testing.T) {
	h := newHousehold()
	chore := &entity.Chore{AssignedTo: h.kid.UserID}

	assert.NoError(t, CheckComplete(h.kid, chore))
	assert.True(t, errors.Is(CheckComplete(h.otherKid, chore), domainerrors.ErrPermissionDenied))
	assert.True(t, errors.Is(CheckComplete(h.parent, chore), domainerrors.ErrPermissionDenied))
}

func TestRoleGates(t *testing.T) {
	h := newHousehold()

	assert.NoError(t, CheckRedeem(h.kid))
	assert.True(t, errors.Is(CheckRedeem(h.parent), domainerrors.ErrPermissionDenied))
	assert.NoError(t, CheckProcessRedemption(h.parent))
	assert.True(t, errors.Is(CheckProcessRedemption(h.kid), domainerrors.ErrPermissionDenied))
	assert.NoError(t, CheckManageRewards(h.parent))
	assert.True(t, errors.Is(CheckManageRewards(h.kid), domainerrors.ErrPermissionDenied))
	assert.NoError(t, CheckCreateKid(h.parent))
	assert.True(t, errors.Is(CheckCreateKid(h.kid), domainerrors.ErrPermissionDenied))
}

func TestRedemptionVisibility(t *testing.T) {
	h := newHousehold()
	own := &entity.Redemption{UserID: h.kid.UserID}
	foreign := &entity.Redemption{UserID: h.otherKid.UserID}

	assert.True(t, CanViewRedemption(h.kid, own))
	assert.False(t, CanViewRedemption(h.kid, foreign))
	assert.True(t, CanViewRedemption(h.parent, foreign), "parents review the global queue")

	assert.Nil(t, RedemptionScope(h.parent))
	if scope := RedemptionScope(h.kid); assert.NotNil(t, scope) {
		assert.Equal(t, h.kid.UserID, *scope)
	}
}

func TestCheckLogBehavior(t *testing.T) {
	h := newHousehold()

	assert.NoError(t, CheckLogBehavior(h.parent, h.kid))
	assert.True(t, errors.Is(CheckLogBehavior(h.kid, h.kid), domainerrors.ErrPermissionDenied))
	assert.True(t, errors.Is(CheckLogBehavior(h.parent, h.otherKid), domainerrors.ErrProfileNotFound))
	assert.True(t, errors.Is(CheckLogBehavior(h.parent, h.parent), domainerrors.ErrValidationFailed))
}

func TestCheckRelink(t *testing.T) {
	h := newHousehold()

	assert.NoError(t, CheckRelink(h.parent, h.kid, h.parent))
	assert.NoError(t, CheckRelink(h.parent, h.kid, nil))
	assert.True(t, errors.Is(CheckRelink(h.parent, h.kid, h.otherParent), domainerrors.ErrPermissionDenied),
		"another household cannot be handed a kid")
	assert.True(t, errors.Is(CheckRelink(h.parent, h.kid, h.otherKid), domainerrors.ErrValidationFailed))
	assert.True(t, errors.Is(CheckRelink(h.parent, h.otherKid, h.parent), domainerrors.ErrProfileNotFound))
	assert.True(t, errors.Is(CheckRelink(h.kid, h.kid, h.parent), domainerrors.ErrPermissionDenied))
}

func TestCheckDeleteKid(t *testing.T) {
	h := newHousehold()

	assert.NoError(t, CheckDeleteKid(h.parent, h.kid))
	assert.True(t, errors.Is(CheckDeleteKid(h.parent, h.parent), domainerrors.ErrProfileNotFound))
	assert.True(t, errors.Is(CheckDeleteKid(h.parent, h.otherKid), domainerrors.ErrProfileNotFound))
	assert.True(t, errors.Is(CheckDeleteKid(h.kid, h.kid), domainerrors.ErrPermissionDenied))
}
