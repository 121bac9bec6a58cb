package web

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"chorechart/config"
	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	domainerrors "chorechart/internal/domain/errors"
	"chorechart/internal/domain/service"
	"chorechart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	parentHome    = "/dashboard/parent"
	kidHome       = "/dashboard/kid"
	parentTasks   = "/dashboard/parent/tasks"
	parentRewards = "/dashboard/parent/rewards"

	genericFailure = "系統發生錯誤，請稍後再試"

	csrfField      = "_csrf"
	csrfCookie     = "chorechart_csrf"
	csrfContextKey = "csrf"
)

// pageData is handed to every template.
type pageData struct {
	Title string
	Flash string
	CSRF  string
	Actor *entity.Profile
	Data  any
}

type loginForm struct {
	Username string
}

// HandlerParams holds dependencies for Handler, injected by Fx.
type HandlerParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	TokenService service.TokenService
	AccountUC    usecase.AccountUsecase
	DashboardUC  usecase.DashboardUsecase
	ProfileUC    usecase.ProfileUsecase
	ChoreUC      usecase.ChoreUsecase
	RewardUC     usecase.RewardUsecase
	RedemptionUC usecase.RedemptionUsecase
}

// Handler serves the server-rendered pages. Mutations redirect back to the page they came from
// and report failures through the flash cookie.
type Handler struct {
	logger       *slog.Logger
	session      *sessionCookies
	accountUC    usecase.AccountUsecase
	dashboardUC  usecase.DashboardUsecase
	profileUC    usecase.ProfileUsecase
	choreUC      usecase.ChoreUsecase
	rewardUC     usecase.RewardUsecase
	redemptionUC usecase.RedemptionUsecase
}

// NewHandler is the constructor for Handler.
func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		logger:       params.Logger,
		session:      newSessionCookies(params.Config, params.TokenService),
		accountUC:    params.AccountUC,
		dashboardUC:  params.DashboardUC,
		profileUC:    params.ProfileUC,
		choreUC:      params.ChoreUC,
		rewardUC:     params.RewardUC,
		redemptionUC: params.RedemptionUC,
	}
}

// RegisterRoutes mounts the pages on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error { return c.Redirect(http.StatusSeeOther, "/dashboard") })
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)

	g := e.Group("", h.session.Require)
	g.GET("/dashboard", h.Dashboard)
	g.GET(parentHome, h.ParentDashboard)
	g.GET(kidHome, h.KidDashboard)
	g.POST("/log-behavior/:kidID", h.LogBehavior)
	g.POST("/complete-chore/:choreID", h.CompleteChore)
	g.POST("/redeem-reward/:rewardID", h.RedeemReward)
	g.GET(parentTasks, h.TasksPage)
	g.POST(parentTasks, h.CreateTask)
	g.POST("/tasks/:id/delete", h.DeleteTask)
	g.GET(parentRewards, h.RewardsPage)
	g.POST(parentRewards, h.CreateReward)
	g.POST("/rewards/:id/delete", h.DeleteReward)
	g.POST("/dashboard/parent/redemptions/:id/:action", h.ProcessRedemption)
}

func (h *Handler) LoginPage(c echo.Context) error {
	return c.Render(http.StatusOK, "login", pageData{
		Title: "登入",
		Flash: h.session.popFlash(c),
		CSRF:  csrfToken(c),
		Data:  loginForm{},
	})
}

func (h *Handler) Login(c echo.Context) error {
	input := &usecase.LoginInput{
		Username: strings.TrimSpace(c.FormValue("username")),
		Password: c.FormValue("password"),
	}
	form := loginForm{Username: input.Username}

	if input.Username == "" || input.Password == "" {
		return c.Render(http.StatusBadRequest, "login", pageData{Title: "登入", Flash: "請輸入帳號與密碼", CSRF: csrfToken(c), Data: form})
	}

	out, err := h.accountUC.Login(c.Request().Context(), input)
	if err != nil {
		status, message := h.describe(c, err)

		return c.Render(status, "login", pageData{Title: "登入", Flash: message, CSRF: csrfToken(c), Data: form})
	}

	h.session.start(c, out.AccessToken, out.RefreshToken)

	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) Logout(c echo.Context) error {
	if refresh := h.session.end(c); refresh != "" {
		if err := h.accountUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: refresh}); err != nil {
			h.log(c).Warn("Failed to revoke refresh token on logout", slog.Any("error", err))
		}
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Dashboard sends the caller to the landing page of their role.
func (h *Handler) Dashboard(c echo.Context) error {
	actor, err := h.dashboardUC.GetActor(c.Request().Context(), h.actorID(c))
	if err != nil {
		_, message := h.describe(c, err)
		h.session.end(c)
		h.session.setFlash(c, message)

		return c.Redirect(http.StatusSeeOther, "/login")
	}

	if actor.IsParent() {
		return c.Redirect(http.StatusSeeOther, parentHome)
	}

	return c.Redirect(http.StatusSeeOther, kidHome)
}

func (h *Handler) ParentDashboard(c echo.Context) error {
	dashboard, err := h.dashboardUC.ParentDashboard(c.Request().Context(), h.actorID(c))
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}

	return h.render(c, "parent_dashboard", "家長總覽", dashboard.Parent, dashboard)
}

func (h *Handler) KidDashboard(c echo.Context) error {
	dashboard, err := h.dashboardUC.KidDashboard(c.Request().Context(), h.actorID(c))
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}

	return h.render(c, "kid_dashboard", "我的家務", dashboard.Kid, dashboard)
}

func (h *Handler) LogBehavior(c echo.Context) error {
	kidID, err := h.pathID(c, "kidID")
	if err != nil {
		return h.fail(c, err, parentHome)
	}

	input := &usecase.LogBehaviorInput{
		ActionType: c.FormValue("action_type"),
		Note:       strings.TrimSpace(c.FormValue("note")),
	}
	if err := c.Validate(input); err != nil {
		return h.fail(c, err, parentHome)
	}

	if _, err := h.profileUC.LogBehavior(c.Request().Context(), h.actorID(c), kidID, input); err != nil {
		return h.fail(c, err, parentHome)
	}

	return c.Redirect(http.StatusSeeOther, parentHome)
}

func (h *Handler) CompleteChore(c echo.Context) error {
	choreID, err := h.pathID(c, "choreID")
	if err != nil {
		return h.fail(c, err, kidHome)
	}

	if _, err := h.choreUC.CompleteChore(c.Request().Context(), h.actorID(c), choreID); err != nil {
		// A double click on a daily chore is not worth a message.
		if errors.Is(err, domainerrors.ErrAlreadyCompleted) {
			return c.Redirect(http.StatusSeeOther, kidHome)
		}

		return h.fail(c, err, kidHome)
	}

	return c.Redirect(http.StatusSeeOther, kidHome)
}

func (h *Handler) RedeemReward(c echo.Context) error {
	rewardID, err := h.pathID(c, "rewardID")
	if err != nil {
		return h.fail(c, err, kidHome)
	}

	if _, err := h.rewardUC.RedeemReward(c.Request().Context(), h.actorID(c), rewardID); err != nil {
		return h.fail(c, err, kidHome)
	}

	h.session.setFlash(c, "已送出兌換申請，等待家長審核")

	return c.Redirect(http.StatusSeeOther, kidHome)
}

func (h *Handler) TasksPage(c echo.Context) error {
	management, err := h.dashboardUC.ParentManagement(c.Request().Context(), h.actorID(c))
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}

	return h.render(c, "parent_tasks", "家務管理", management.Parent, management)
}

func (h *Handler) CreateTask(c echo.Context) error {
	input := &usecase.ChoreInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		ChoreType:   c.FormValue("chore_type"),
		Icon:        strings.TrimSpace(c.FormValue("icon")),
	}

	assignedTo, err := uuid.Parse(c.FormValue("assigned_to"))
	if err != nil {
		return h.fail(c, domainerrors.ErrValidationFailed.WithDetails("assigned_to"), parentTasks)
	}
	input.AssignedTo = assignedTo

	if input.PointsValue, err = optionalInt(c.FormValue("points_value")); err != nil {
		return h.fail(c, domainerrors.ErrValidationFailed.WithDetails("points_value"), parentTasks)
	}

	if err := c.Validate(input); err != nil {
		return h.fail(c, err, parentTasks)
	}

	if _, err := h.choreUC.CreateChore(c.Request().Context(), h.actorID(c), input); err != nil {
		return h.fail(c, err, parentTasks)
	}

	return c.Redirect(http.StatusSeeOther, parentTasks)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	choreID, err := h.pathID(c, "id")
	if err != nil {
		return h.fail(c, err, parentTasks)
	}

	if err := h.choreUC.DeleteChore(c.Request().Context(), h.actorID(c), choreID); err != nil {
		return h.fail(c, err, parentTasks)
	}

	return c.Redirect(http.StatusSeeOther, parentTasks)
}

func (h *Handler) RewardsPage(c echo.Context) error {
	management, err := h.dashboardUC.ParentManagement(c.Request().Context(), h.actorID(c))
	if err != nil {
		return h.fail(c, err, "/dashboard")
	}

	return h.render(c, "parent_rewards", "獎勵管理", management.Parent, management)
}

func (h *Handler) CreateReward(c echo.Context) error {
	input := &usecase.RewardInput{
		Title:       strings.TrimSpace(c.FormValue("title")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Icon:        strings.TrimSpace(c.FormValue("icon")),
	}

	var err error
	if input.Cost, err = optionalInt(c.FormValue("cost")); err != nil {
		return h.fail(c, domainerrors.ErrValidationFailed.WithDetails("cost"), parentRewards)
	}

	if err := c.Validate(input); err != nil {
		return h.fail(c, err, parentRewards)
	}

	if _, err := h.rewardUC.CreateReward(c.Request().Context(), h.actorID(c), input); err != nil {
		return h.fail(c, err, parentRewards)
	}

	return c.Redirect(http.StatusSeeOther, parentRewards)
}

func (h *Handler) DeleteReward(c echo.Context) error {
	rewardID, err := h.pathID(c, "id")
	if err != nil {
		return h.fail(c, err, parentRewards)
	}

	if err := h.rewardUC.DeleteReward(c.Request().Context(), h.actorID(c), rewardID); err != nil {
		return h.fail(c, err, parentRewards)
	}

	return c.Redirect(http.StatusSeeOther, parentRewards)
}

func (h *Handler) ProcessRedemption(c echo.Context) error {
	redemptionID, err := h.pathID(c, "id")
	if err != nil {
		return h.fail(c, err, parentHome)
	}

	input := &usecase.ProcessRedemptionInput{Action: c.Param("action")}
	if _, err := h.redemptionUC.ProcessRedemption(c.Request().Context(), h.actorID(c), redemptionID, input); err != nil {
		return h.fail(c, err, parentHome)
	}

	return c.Redirect(http.StatusSeeOther, parentHome)
}

func (h *Handler) render(c echo.Context, page, title string, actor *entity.Profile, data any) error {
	return c.Render(http.StatusOK, page, pageData{
		Title: title,
		Flash: h.session.popFlash(c),
		CSRF:  csrfToken(c),
		Actor: actor,
		Data:  data,
	})
}

// fail flashes the error and redirects to target.
func (h *Handler) fail(c echo.Context, err error, target string) error {
	_, message := h.describe(c, err)
	h.session.setFlash(c, message)

	return c.Redirect(http.StatusSeeOther, target)
}

// describe maps err to a status and a one-line user message. Unexpected errors are logged.
func (h *Handler) describe(c echo.Context, err error) (int, string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() < http.StatusInternalServerError {
			return appErr.HTTPCode(), appErr.Message()
		}
	}

	h.log(c).Error("Web request failed", slog.Any("error", err), slog.String("path", c.Request().URL.Path))

	return http.StatusInternalServerError, genericFailure
}

func (h *Handler) actorID(c echo.Context) uuid.UUID {
	userID, _ := deliverycontext.GetUserID(c)

	return userID
}

func (h *Handler) pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name))
	}

	return id, nil
}

func (h *Handler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// csrfToken returns the token the CSRF middleware issued for this request.
func csrfToken(c echo.Context) string {
	token, _ := c.Get(csrfContextKey).(string)

	return token
}

// optionalInt parses a form number; an empty field yields nil.
func optionalInt(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &n, nil
}
