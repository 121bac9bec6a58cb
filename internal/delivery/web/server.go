// Package web serves the server-rendered dashboards for parents and kids.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"chorechart/config"
	"chorechart/internal/delivery"
	"chorechart/internal/delivery/api/validator"
	"chorechart/internal/delivery/middleware"
	"chorechart/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultWebPort = 8000

type webServer struct {
	port   int
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the web server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Handler *Handler
}

// NewServer builds the web delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := newEcho(params.Cfg, params.Logger, params.Handler)
	if err != nil {
		return nil, err
	}

	port := defaultWebPort
	if params.Cfg.Web != nil && params.Cfg.Web.Port != 0 {
		port = params.Cfg.Web.Port
	}

	srv := &webServer{
		port:   port,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, h *Handler) (*echo.Echo, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = r
	e.Validator = validator.New()

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)

	// 3. Logger middleware
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}

	e.Use(echomiddleware.CSRFWithConfig(csrfConfig(cfg)))

	e.HTTPErrorHandler = errorPage(logger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	h.RegisterRoutes(e)

	return e, nil
}

// csrfConfig guards every form post with a double-submit token kept in its own cookie.
func csrfConfig(cfg *config.Config) echomiddleware.CSRFConfig {
	return echomiddleware.CSRFConfig{
		TokenLookup:    "form:" + csrfField,
		ContextKey:     csrfContextKey,
		CookieName:     csrfCookie,
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.Web != nil && cfg.Web.CookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/health"
		},
	}
}

// errorPage renders unexpected failures with the shared layout.
func errorPage(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := genericFailure

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			status = httpErr.Code
			message = http.StatusText(httpErr.Code)
		} else {
			logger.Error("Unhandled web error", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
		}

		if renderErr := c.Render(status, "error", pageData{Title: "發生錯誤", CSRF: csrfToken(c), Data: message}); renderErr != nil {
			logger.Error("Failed to render error page", slog.Any("error", renderErr))
		}
	}
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.port))
	s.logger.Info("Starting web HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
