package web

import (
	"net/http"
	"net/url"
	"time"

	"chorechart/config"
	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const flashMaxAge = 60 // seconds

// sessionCookies issues and reads the cookies of the web surface. The session cookie
// holds the signed access token; a companion cookie keeps the refresh token for logout.
type sessionCookies struct {
	name       string
	flashName  string
	secure     bool
	accessTTL  time.Duration
	refreshTTL time.Duration
	tokenSvc   service.TokenService
}

func newSessionCookies(cfg *config.Config, tokenSvc service.TokenService) *sessionCookies {
	s := &sessionCookies{
		tokenSvc:  tokenSvc,
		name:      "chorechart_session",
		flashName: "chorechart_flash",
	}
	if cfg.Web != nil {
		if cfg.Web.CookieName != "" {
			s.name = cfg.Web.CookieName
		}
		if cfg.Web.FlashCookieName != "" {
			s.flashName = cfg.Web.FlashCookieName
		}
		s.secure = cfg.Web.CookieSecure
	}
	if cfg.Auth != nil {
		s.accessTTL = cfg.Auth.AccessTTL
		s.refreshTTL = cfg.Auth.RefreshTTL
	}

	return s
}

func (s *sessionCookies) refreshName() string {
	return s.name + "_refresh"
}

func (s *sessionCookies) cookie(name, value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	}
}

func (s *sessionCookies) expired(name string) *http.Cookie {
	c := s.cookie(name, "", 0)
	c.MaxAge = -1

	return c
}

// start stores the token pair after a successful login.
func (s *sessionCookies) start(c echo.Context, accessToken, refreshToken string) {
	c.SetCookie(s.cookie(s.name, accessToken, s.accessTTL))
	c.SetCookie(s.cookie(s.refreshName(), refreshToken, s.refreshTTL))
}

// end clears the session and returns the refresh token it carried, if any.
func (s *sessionCookies) end(c echo.Context) string {
	var refresh string
	if ck, err := c.Cookie(s.refreshName()); err == nil {
		refresh = ck.Value
	}

	c.SetCookie(s.expired(s.name))
	c.SetCookie(s.expired(s.refreshName()))

	return refresh
}

// setFlash queues a one-line message for the next page.
func (s *sessionCookies) setFlash(c echo.Context, message string) {
	c.SetCookie(s.cookie(s.flashName, url.QueryEscape(message), flashMaxAge*time.Second))
}

// popFlash reads and clears the queued message.
func (s *sessionCookies) popFlash(c echo.Context) string {
	ck, err := c.Cookie(s.flashName)
	if err != nil || ck.Value == "" {
		return ""
	}
	c.SetCookie(s.expired(s.flashName))

	message, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}

	return message
}

// Require redirects to the login page unless the session cookie holds a valid access token.
func (s *sessionCookies) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ck, err := c.Cookie(s.name)
		if err != nil || ck.Value == "" {
			return c.Redirect(http.StatusSeeOther, "/login")
		}

		claims, err := s.tokenSvc.ValidateToken(ck.Value)
		if err != nil || claims.Type != service.TokenTypeAccess {
			s.end(c)
			s.setFlash(c, "登入已逾時，請重新登入")

			return c.Redirect(http.StatusSeeOther, "/login")
		}

		deliverycontext.SetPrincipal(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}
