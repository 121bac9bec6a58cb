package middleware

import (
	"strings"

	"chorechart/internal/delivery/api/response"
	deliverycontext "chorechart/internal/delivery/context"
	"chorechart/internal/domain/entity"
	"chorechart/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}
		if claims.Type != service.TokenTypeAccess {
			return response.Unauthorized(c, "INVALID_TOKEN", "Access token required")
		}

		deliverycontext.SetPrincipal(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole rejects callers whose token lacks role. It must be used AFTER Authenticate.
// Usecases still re-check permissions against the stored profile.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetRoles(c).Contains(role) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}
