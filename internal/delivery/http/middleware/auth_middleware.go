package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/subahan00/job-portal/internal/delivery/http/response"
	"github.com/subahan00/job-portal/internal/domain"
	"github.com/subahan00/job-portal/pkg/apperror"
	"github.com/subahan00/job-portal/pkg/audit"
	"github.com/subahan00/job-portal/pkg/token"
)

func AuthMiddleware(tokens *token.Manager, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		// 1. Try to get token from Header
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			// 2. Try to get token from Cookie
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, apperror.KindUnauthorized,
				"Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			audit.Record(audit.Event{
				Event:     audit.EventInvalidToken,
				IP:        c.ClientIP(),
				RequestID: c.GetString("RequestID"),
				Details:   map[string]interface{}{"path": c.Request.URL.Path},
			})
			response.Error(c, http.StatusUnauthorized, apperror.KindUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		// The role claim can go stale, so each request re-reads the user
		// and trusts the stored role over the token's.
		user, err := authUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, apperror.KindUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), user.Role)

		c.Next()
	}
}

// RequireRole gates a route group to one role. It runs after
// AuthMiddleware and reads the role it stored.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(string(domain.KeyUserRole)) != role {
			audit.Record(audit.Event{
				Event:     audit.EventForbiddenAccess,
				Subject:   c.GetString(string(domain.KeyUserID)),
				IP:        c.ClientIP(),
				RequestID: c.GetString("RequestID"),
				Details:   map[string]interface{}{"path": c.Request.URL.Path},
			})
			response.Error(c, http.StatusForbidden, apperror.KindForbidden,
				"You don't have permissions to access this resource", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PrincipalFrom rebuilds the authenticated caller from the context keys
// set by AuthMiddleware.
func PrincipalFrom(c *gin.Context) domain.Principal {
	return domain.Principal{
		UserID: c.GetString(string(domain.KeyUserID)),
		Role:   c.GetString(string(domain.KeyUserRole)),
	}
}
