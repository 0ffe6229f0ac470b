// Package middleware contains the HTTP-specific middleware chain.
package middleware

import (
	"slices"
	"strings"

	"capsule/internal/delivery/http/response"
	"capsule/internal/domain/entity"
	"capsule/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys written by Authenticate and read by handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the caller's
// identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "AUTH_HEADER_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "AUTH_FORMAT_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextKeyRoles).([]string)
			if !ok {
				return response.Forbidden(c, "ROLE_MISSING", "Permission denied: role information missing")
			}

			if !slices.Contains(roles, string(requiredRole)) {
				return response.Forbidden(c, "ROLE_REQUIRED", "Permission denied: require '"+string(requiredRole)+"' role")
			}

			return next(c)
		}
	}
}

// UserID returns the authenticated caller's id set by Authenticate.
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return id, ok
}
