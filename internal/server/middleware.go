package server

import (
	"github.com/abiramijewels/aurum/internal/actorctx"
	authdomain "github.com/abiramijewels/aurum/internal/auth/domain"
	"github.com/gin-gonic/gin"
)

const contextUserKey = "current_user"

// AuthRequired resolves the session cookie to a user and stamps the request
// context with the acting user's email.
func (s *Server) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		user, err := s.authsvc.ResolveSession(c.Request.Context(), token)
		if err != nil {
			s.sessions.Clear(c)
			AbortWithError(c, err)
			return
		}

		c.Set(contextUserKey, user)
		c.Request = c.Request.WithContext(actorctx.WithActor(c.Request.Context(), user.Email))
		c.Next()
	}
}

// AdminRequired gates the back office on the configured admin allow-list.
// Must run after AuthRequired.
func (s *Server) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			AbortWithError(c, ErrUnauthorized)
			return
		}
		if !s.cfg.IsAdminEmail(user.Email) {
			AbortWithError(c, ErrForbidden)
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *authdomain.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*authdomain.User)
	if !ok {
		return nil
	}
	return user
}
