package middleware

import (
	"go-admin-console/internal/commons/response"
	"go-admin-console/pkg/token"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionCookie is where the console keeps the admin's session token.
const SessionCookie = "authToken"

const sessionContextKey = "session"

type AuthMiddleware struct {
	logger     *logrus.Logger
	jwtManager *token.TokenManager
}

func NewAuthMiddleware(logger *logrus.Logger, jwtManager *token.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

// SessionAuth resolves the session from the authToken cookie, falling back to
// a bearer Authorization header, and attaches it to the request context. The
// session is the only channel through which backend credentials travel.
func (m *AuthMiddleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			authHeader := c.GetHeader("Authorization")
			bearerToken := strings.Split(authHeader, "Bearer ")
			if len(bearerToken) == 2 {
				raw = bearerToken[1]
			}
		}

		if raw == "" {
			resp := response.UnauthorizedErrorWithAdditionalInfo("Login required")
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		session, err := m.jwtManager.ValidateToken(raw)
		if err != nil {
			resp := response.UnauthorizedErrorWithAdditionalInfo(err.Error())
			c.AbortWithStatusJSON(resp.StatusCode, resp)
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext retrieves the session attached by SessionAuth.
func SessionFromContext(c *gin.Context) (*token.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*token.Session)
	return session, ok
}
