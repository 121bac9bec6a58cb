// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"chorechart/config"
	"chorechart/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned when a token fails signature, expiry or claim checks.
var ErrInvalidToken = errors.New("invalid token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  string        // Secret key for signing access tokens.
	refreshSecret string        // Secret key for signing refresh tokens.
	accessTTL     time.Duration // Time-to-live for access tokens.
	refreshTTL    time.Duration // Time-to-live for refresh tokens.
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL := 24 * time.Hour
	refreshTTL := 7 * 24 * time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL > 0 {
			accessTTL = cfg.Auth.AccessTTL
		}
		if cfg.Auth.RefreshTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTTL
		}
	}

	return &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given user and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, nil, s.refreshTTL, s.refreshSecret, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateAccessToken creates a standalone access token.
func (s *jwtService) GenerateAccessToken(userID uuid.UUID, roles []string) (string, error) {
	return s.generateToken(userID, roles, s.accessTTL, s.accessSecret, service.TokenTypeAccess)
}

// ValidateToken parses the token with the access secret first and falls back to the refresh secret.
// The "type" claim must agree with the secret that verified the signature.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{}); err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "failed to parse token structure")
	}

	if claims, err := s.parse(tokenString, s.accessSecret); err == nil {
		if claims.Type != service.TokenTypeAccess {
			return nil, errors.Wrap(ErrInvalidToken, "token type mismatch")
		}

		return claims, nil
	}

	claims, err := s.parse(tokenString, s.refreshSecret)
	if err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeRefresh {
		return nil, errors.Wrap(ErrInvalidToken, "token type mismatch")
	}

	return claims, nil
}

// GetAccessTokenDuration returns the configured duration for access tokens.
func (s *jwtService) GetAccessTokenDuration() time.Duration {
	return s.accessTTL
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) parse(tokenString, secret string) (*service.Claims, error) {
	mapClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(ErrInvalidToken, "token verification failed")
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "missing subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, "invalid subject")
	}

	claims := &service.Claims{UserID: userID}
	claims.Type, _ = mapClaims["type"].(string)
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		claims.Roles = make([]string, 0, len(rawRoles))
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}

	return claims, nil
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, roles []string, ttl time.Duration, secret, tokenType string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),     // Subject (who the token is for)
		"iat":  now.Unix(),          // Issued At
		"exp":  now.Add(ttl).Unix(), // Expiration Time
		"jti":  uuid.NewString(),    // Keeps two tokens issued in the same second distinct
		"type": tokenType,           // Type of token (access or refresh)
	}
	// Only add roles to the access token for stateless authorization.
	if roles != nil {
		claims["roles"] = roles
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}
