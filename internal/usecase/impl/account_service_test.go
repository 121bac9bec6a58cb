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

type accountFixture struct {
	*txFixture
	hasher *mockSvc.MockPasswordHasher
	jwt    *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T, maxActiveSessions int) (*accountService, *accountFixture) {
	fx := &accountFixture{
		txFixture: newTxFixture(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		jwt:       mockSvc.NewMockTokenService(t),
	}
	uc, err := NewAccountService(AccountServiceParams{
		TxManager:        fx.txManager,
		RefreshTokenRepo: fx.tokens,
		Hasher:           fx.hasher,
		TokenService:     fx.jwt,
		Config:           newTestConfig(maxActiveSessions),
		Logger:           newDiscardLogger(),
	})
	require.NoError(t, err)
	srv := uc.(*accountService)
	srv.clock = fixedClock(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

	return srv, fx
}

func newUserWithProfile(profile *entity.Profile) *entity.User {
	return &entity.User{ID: profile.UserID, Username: profile.Username, Name: profile.Name, Profile: profile}
}

func TestAccountService_RegisterParent(t *testing.T) {
	srv, fx := createTestAccountService(t, 0)

	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
		Return(nil)
	fx.profiles.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
			return p.UserID == userID && p.Role == entity.RoleParent && p.ParentID == nil && p.Points == 0
		})).
		Return(nil)
	fx.auths.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == userID && a.ProviderUserID == "mom" && a.PasswordHash == "hashed"
		})).
		Return(nil)

	user, err := srv.RegisterParent(ctx, &usecase.RegisterParentInput{Username: " mom ", Password: "secret1", Name: "Mom"})

	require.NoError(t, err)
	assert.Equal(t, "mom", user.Username)
	require.NotNil(t, user.Profile)
	assert.Equal(t, entity.RoleParent, user.Profile.Role)
}

func TestAccountService_RegisterParent_DuplicateUsername(t *testing.T) {
	srv, fx := createTestAccountService(t, 0)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.users.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateUsername)

	user, err := srv.RegisterParent(ctx, &usecase.RegisterParentInput{Username: "mom", Password: "secret1"})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_CreateKid(t *testing.T) {
	ctx := context.Background()
	parent := newParent()

	t.Run("linked to the calling parent", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)

		fx.profiles.EXPECT().FindByUserID(ctx, parent.UserID).Return(parent, nil)
		fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
		fx.users.EXPECT().Create(ctx, mock.Anything).Return(nil)
		fx.profiles.EXPECT().
			Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
				return p.Role == entity.RoleKid && p.ParentID != nil && *p.ParentID == parent.UserID
			})).
			Return(nil)
		fx.auths.EXPECT().CreateAuthentication(ctx, mock.Anything).Return(nil)

		user, err := srv.CreateKid(ctx, parent.UserID, &usecase.CreateKidInput{Username: "amy", Password: "secret1"})

		require.NoError(t, err)
		assert.Equal(t, entity.RoleKid, user.Profile.Role)
	})

	t.Run("kid cannot create kids", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		kid := newKid(parent, 0)

		fx.profiles.EXPECT().FindByUserID(ctx, kid.UserID).Return(kid, nil)

		user, err := srv.CreateKid(ctx, kid.UserID, &usecase.CreateKidInput{Username: "bob", Password: "secret1"})

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
		fx.hasher.AssertNotCalled(t, "Hash", mock.Anything)
	})
}

func TestAccountService_Login(t *testing.T) {
	srv, fx := createTestAccountService(t, 0)

	ctx := context.Background()
	kid := newKid(nil, 0)
	user := newUserWithProfile(kid)

	fx.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypePassword, "amy").
		Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.jwt.EXPECT().GenerateTokens(user.ID, []string{"KID"}).Return("access", "refresh", nil)
	fx.jwt.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.tokens.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == user.ID && rt.TokenHash == hashToken("refresh") &&
				rt.ExpiresAt.Equal(time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC))
		})).
		Return(nil)

	output, err := srv.Login(ctx, &usecase.LoginInput{Username: "amy", Password: "secret1"})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestAccountService_Login_Errors(t *testing.T) {
	ctx := context.Background()
	kid := newKid(nil, 0)
	user := newUserWithProfile(kid)

	t.Run("unknown username", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.auths.EXPECT().FindAuthentication(ctx, entity.ProviderTypePassword, "ghost").Return(nil, repository.ErrAuthNotFound)

		_, err := srv.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "x"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.auths.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypePassword, "amy").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := srv.Login(ctx, &usecase.LoginInput{Username: "amy", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		fx.jwt.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
	})

	t.Run("session limit reached", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 2)
		fx.auths.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypePassword, "amy").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.profiles.EXPECT().FindByUserIDForUpdate(ctx, user.ID).Return(kid, nil)
		fx.tokens.EXPECT().CountActiveSessionsByUserID(ctx, user.ID).Return(2, nil)

		_, err := srv.Login(ctx, &usecase.LoginInput{Username: "amy", Password: "secret1"})

		assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
	})
}

func TestAccountService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	kid := newKid(nil, 0)
	user := newUserWithProfile(kid)

	t.Run("issues a new access token", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.jwt.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.tokens.EXPECT().
			FindRefreshTokenByHash(ctx, hashToken("refresh")).
			Return(&entity.RefreshToken{UserID: user.ID}, nil)
		fx.users.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.jwt.EXPECT().GenerateAccessToken(user.ID, []string{"KID"}).Return("access2", nil)

		output, err := srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "access2", output.AccessToken)
	})

	t.Run("access token is refused", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.jwt.EXPECT().ValidateToken("access").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeAccess}, nil)

		_, err := srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "access"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("revoked", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.jwt.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.tokens.EXPECT().FindRefreshTokenByHash(ctx, hashToken("refresh")).Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenNotFound))
	})

	t.Run("expired", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.jwt.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: user.ID, Type: service.TokenTypeRefresh}, nil)
		fx.tokens.EXPECT().FindRefreshTokenByHash(ctx, hashToken("refresh")).Return(nil, repository.ErrRefreshTokenExpired)

		_, err := srv.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenExpired))
	})
}

func TestAccountService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the token", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.tokens.EXPECT().DeleteRefreshTokenByHash(ctx, hashToken("refresh")).Return(nil)

		require.NoError(t, srv.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
	})

	t.Run("unknown token is fine", func(t *testing.T) {
		srv, fx := createTestAccountService(t, 0)
		fx.tokens.EXPECT().DeleteRefreshTokenByHash(ctx, hashToken("gone")).Return(repository.ErrRefreshTokenNotFound)

		require.NoError(t, srv.Logout(ctx, &usecase.LogoutInput{RefreshToken: "gone"}))
	})

	t.Run("missing token", func(t *testing.T) {
		srv, _ := createTestAccountService(t, 0)

		err := srv.Logout(ctx, &usecase.LogoutInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
