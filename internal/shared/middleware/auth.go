package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"catalog-backend/internal/shared/response"
	"catalog-backend/pkg/jwt"
)

// ContextAccountIDKey is the gin context key holding the authenticated
// account id, set by AuthMiddleware.
const ContextAccountIDKey = "accountID"

// Generic on purpose: the gate never explains which part of the
// credential check failed.
const credentialsMessage = "could not validate credentials"

// AccountChecker resolves token subjects without pulling in the whole
// account domain. Satisfied by account.Repository.
type AccountChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// ExtractBearerToken pulls the token out of the Authorization header.
// Returns "" when the header is absent or not in "Bearer <token>" form.
func ExtractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}

// AuthMiddleware guards protected endpoints. It extracts the bearer
// token, validates it as an access token, checks the subject still
// exists, and injects the account id into the request context. Any
// failure short-circuits with 401 before business logic runs.
func AuthMiddleware(jwtManager *jwt.Manager, accounts AccountChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractBearerToken(c)
		if token == "" {
			response.Unauthorized(c, credentialsMessage)
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			response.Unauthorized(c, credentialsMessage)
			c.Abort()
			return
		}

		exists, err := accounts.ExistsByID(c.Request.Context(), claims.AccountID)
		if err != nil || !exists {
			response.Unauthorized(c, credentialsMessage)
			c.Abort()
			return
		}

		c.Set(ContextAccountIDKey, claims.AccountID)
		c.Next()
	}
}

// CurrentAccountID reads the authenticated account id set by AuthMiddleware.
func CurrentAccountID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(ContextAccountIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
