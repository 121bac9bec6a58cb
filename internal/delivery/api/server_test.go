package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"chorechart/config"
	apimiddleware "chorechart/internal/delivery/api/middleware"
	"chorechart/internal/delivery/api/router"
	"chorechart/internal/delivery/api/router/handler"
	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/service"
	mockSvc "chorechart/internal/mocks/service"
	mockUC "chorechart/internal/mocks/usecase"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	parentToken = "parent-token"
	kidToken    = "kid-token"
)

type apiFixture struct {
	e           *echo.Echo
	tokens      *mockSvc.MockTokenService
	accounts    *mockUC.MockAccountUsecase
	profiles    *mockUC.MockProfileUsecase
	chores      *mockUC.MockChoreUsecase
	rewards     *mockUC.MockRewardUsecase
	redemptions *mockUC.MockRedemptionUsecase
	devices     *mockUC.MockDeviceUsecase
	sessions    *mockUC.MockSessionUsecase
	parentID    uuid.UUID
	kidID       uuid.UUID
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		tokens:      mockSvc.NewMockTokenService(t),
		accounts:    mockUC.NewMockAccountUsecase(t),
		profiles:    mockUC.NewMockProfileUsecase(t),
		chores:      mockUC.NewMockChoreUsecase(t),
		rewards:     mockUC.NewMockRewardUsecase(t),
		redemptions: mockUC.NewMockRedemptionUsecase(t),
		devices:     mockUC.NewMockDeviceUsecase(t),
		sessions:    mockUC.NewMockSessionUsecase(t),
		parentID:    uuid.New(),
		kidID:       uuid.New(),
	}

	f.tokens.EXPECT().ValidateToken(parentToken).Return(&service.Claims{
		UserID: f.parentID,
		Roles:  []string{entity.RoleParent.String()},
		Type:   service.TokenTypeAccess,
	}, nil).Maybe()
	f.tokens.EXPECT().ValidateToken(kidToken).Return(&service.Claims{
		UserID: f.kidID,
		Roles:  []string{entity.RoleKid.String()},
		Type:   service.TokenTypeAccess,
	}, nil).Maybe()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	f.e = newEcho(cfg, logger, router.RouterParams{
		AccountHandler:    handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: f.accounts, Logger: logger}),
		ProfileHandler:    handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profiles, AccountUC: f.accounts, Logger: logger}),
		ChoreHandler:      handler.NewChoreHandler(handler.ChoreHandlerParams{ChoreUC: f.chores, Logger: logger}),
		RewardHandler:     handler.NewRewardHandler(handler.RewardHandlerParams{RewardUC: f.rewards, Logger: logger}),
		RedemptionHandler: handler.NewRedemptionHandler(handler.RedemptionHandlerParams{RedemptionUC: f.redemptions, Logger: logger}),
		DeviceHandler:     handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: f.devices, Logger: logger}),
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: f.sessions, Logger: logger}),
		AuthMiddleware:    apimiddleware.NewAuthMiddleware(f.tokens),
	})

	return f
}

func (f *apiFixture) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-test")

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func TestHealth(t *testing.T) {
	f := newAPIFixture(t)

	rec, _ := f.do(t, http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin_ReturnsTokenPair(t *testing.T) {
	f := newAPIFixture(t)
	f.accounts.EXPECT().Login(mock.Anything, &usecase.LoginInput{Username: "mom", Password: "secret1"}).
		Return(&usecase.LoginOutput{AccessToken: "a", RefreshToken: "r"}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/token", "", `{"username":"mom","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "a", out["access"])
	assert.Equal(t, "r", out["refresh"])
	assert.Equal(t, "req-test", env.Meta.RequestID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	f := newAPIFixture(t)
	f.accounts.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec, env := f.do(t, http.MethodPost, "/api/token", "", `{"username":"mom","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), env.Error.Code)
}

func TestRegister_ValidationFailed(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/register", "", `{"username":"ab","password":"1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "username: min=3")
	assert.Contains(t, env.Error.Details, "password: min=6")
}

func TestRegister_MalformedBody(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/register", "", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(f *apiFixture)
	}{
		{name: "missing header"},
		{name: "not bearer", header: "Token abc"},
		{
			name:   "invalid token",
			header: "Bearer broken",
			setup: func(f *apiFixture) {
				f.tokens.EXPECT().ValidateToken("broken").Return(nil, errors.New("bad signature"))
			},
		},
		{
			name:   "refresh token",
			header: "Bearer refresh",
			setup: func(f *apiFixture) {
				f.tokens.EXPECT().ValidateToken("refresh").Return(&service.Claims{
					UserID: uuid.New(),
					Type:   service.TokenTypeRefresh,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/chores", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			f.e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCreateKid_UsesCaller(t *testing.T) {
	f := newAPIFixture(t)
	kid := &entity.User{ID: uuid.New(), Username: "amy"}
	f.accounts.EXPECT().CreateKid(mock.Anything, f.parentID, &usecase.CreateKidInput{Username: "amy", Password: "secret1", Name: "Amy"}).
		Return(kid, nil)

	rec, _ := f.do(t, http.MethodPost, "/api/v1/profiles", parentToken, `{"username":"amy","password":"secret1","name":"Amy"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestLogBehavior(t *testing.T) {
	f := newAPIFixture(t)
	target := uuid.New()
	f.profiles.EXPECT().LogBehavior(mock.Anything, f.parentID, target, &usecase.LogBehaviorInput{ActionType: "GOOD", Note: "helped"}).
		Return(&usecase.LogBehaviorOutput{Points: 100}, nil)

	rec, env := f.do(t, http.MethodPost, "/api/v1/profiles/"+target.String()+"/log_behavior", parentToken, `{"action_type":"GOOD","note":"helped"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var out usecase.LogBehaviorOutput
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, 100, out.Points)
}

func TestGetProfile_InvalidID(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodGet, "/api/v1/profiles/not-a-uuid", parentToken, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "id: invalid id", env.Error.Details)
}

func TestCreateChore(t *testing.T) {
	f := newAPIFixture(t)
	points := 25
	input := &usecase.ChoreInput{Title: "Dishes", PointsValue: &points, AssignedTo: f.kidID, ChoreType: "DAILY"}
	f.chores.EXPECT().CreateChore(mock.Anything, f.parentID, input).
		Return(&entity.Chore{ID: uuid.New(), Title: "Dishes", PointsValue: 25, ChoreType: entity.ChoreTypeDaily}, nil)

	body := `{"title":"Dishes","points_value":25,"assigned_to":"` + f.kidID.String() + `","chore_type":"DAILY"}`
	rec, _ := f.do(t, http.MethodPost, "/api/v1/chores", parentToken, body)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateChore_RejectsUnknownType(t *testing.T) {
	f := newAPIFixture(t)

	body := `{"title":"Dishes","assigned_to":"` + f.kidID.String() + `","chore_type":"WEEKLY"}`
	rec, env := f.do(t, http.MethodPost, "/api/v1/chores", parentToken, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "chore_type: oneof")
}

func TestCompleteChore_AlreadyCompleted(t *testing.T) {
	f := newAPIFixture(t)
	choreID := uuid.New()
	f.chores.EXPECT().CompleteChore(mock.Anything, f.kidID, choreID).Return(nil, errors.WithStack(domainerrors.ErrAlreadyCompleted))

	rec, env := f.do(t, http.MethodPost, "/api/v1/chores/"+choreID.String()+"/complete", kidToken, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ALREADY_COMPLETED", env.Error.Code)
}

func TestRedeemReward_InsufficientPoints(t *testing.T) {
	f := newAPIFixture(t)
	rewardID := uuid.New()
	f.rewards.EXPECT().RedeemReward(mock.Anything, f.kidID, rewardID).Return(nil, errors.WithStack(domainerrors.ErrInsufficientPoints))

	rec, env := f.do(t, http.MethodPost, "/api/v1/rewards/"+rewardID.String()+"/redeem", kidToken, "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INSUFFICIENT_POINTS", env.Error.Code)
}

func TestProcessRedemption_KidTokenForbidden(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/redemptions/"+uuid.NewString()+"/process", kidToken, `{"action":"approve"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	require.NotNil(t, env.Error)
	assert.Nil(t, env.Error.Details)
}

func TestProcessRedemption_Approve(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	f.redemptions.EXPECT().ProcessRedemption(mock.Anything, f.parentID, id, &usecase.ProcessRedemptionInput{Action: "approve"}).
		Return(&entity.Redemption{ID: id, Status: entity.RedemptionApproved}, nil)

	rec, _ := f.do(t, http.MethodPost, "/api/v1/redemptions/"+id.String()+"/process", parentToken, `{"action":"approve"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListRedemptions_StatusFilter(t *testing.T) {
	f := newAPIFixture(t)
	f.redemptions.EXPECT().ListRedemptions(mock.Anything, f.parentID, entity.RedemptionPending).Return([]*entity.Redemption{}, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/redemptions?status=pending", parentToken, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := f.do(t, http.MethodGet, "/api/v1/redemptions?status=lost", parentToken, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
}

func TestGetVoucher_ReturnsPNG(t *testing.T) {
	f := newAPIFixture(t)
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}
	f.redemptions.EXPECT().GetVoucher(mock.Anything, f.kidID, id).Return(png, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/v1/redemptions/"+id.String()+"/voucher", kidToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRegisterDevice_ValidatesPlatform(t *testing.T) {
	f := newAPIFixture(t)

	rec, env := f.do(t, http.MethodPost, "/api/v1/devices", kidToken, `{"fcm_token":"t","device_id":"d","platform":"symbian"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Details, "platform: oneof")
}

func TestRevokeAllSessions(t *testing.T) {
	f := newAPIFixture(t)
	f.sessions.EXPECT().RevokeAllSessions(mock.Anything, f.parentID).Return(nil)

	rec, _ := f.do(t, http.MethodPost, "/api/v1/sessions/logout-all", parentToken, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnexpectedError_HidesDetails(t *testing.T) {
	f := newAPIFixture(t)
	f.chores.EXPECT().ListChores(mock.Anything, f.kidID).Return(nil, errors.New("db exploded"))

	rec, env := f.do(t, http.MethodGet, "/api/v1/chores", kidToken, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "db exploded")
}
