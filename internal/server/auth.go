package server

import (
	"fmt"
	"net/http"

	authdomain "github.com/abiramijewels/aurum/internal/auth/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Wishlist []string `json:"wishlist"`
	IsAdmin  bool     `json:"is_admin"`
}

func (s *Server) userResponse(user *authdomain.User) userResponse {
	wishlist := make([]string, 0, len(user.Wishlist))
	wishlist = append(wishlist, user.Wishlist...)
	return userResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Wishlist: wishlist,
		IsAdmin:  s.cfg.IsAdminEmail(user.Email),
	}
}

func (s *Server) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.authsvc.Signup(c.Request.Context(), authdomain.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	token, expiresAt, err := s.authsvc.CreateSession(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.sessions.Set(c, token, expiresAt)

	c.JSON(http.StatusCreated, s.userResponse(user))
}

func (s *Server) Login(c *gin.Context) {
	bucket := s.loginLimiter.Bucket()
	key := fmt.Sprintf("login:%s", c.ClientIP())
	allowed, err := bucket.Allow(c.Request.Context(), key)
	if err != nil {
		// Redis being down must not lock everyone out.
		s.log.Warn("login rate limit check failed", zap.Error(err))
		allowed = true
	}
	if !allowed {
		AbortWithError(c, ErrTooManyLogins)
		return
	}

	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	user, err := s.authsvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	token, expiresAt, err := s.authsvc.CreateSession(c.Request.Context(), user.ID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.sessions.Set(c, token, expiresAt)

	c.JSON(http.StatusOK, s.userResponse(user))
}

func (s *Server) Logout(c *gin.Context) {
	if token, ok := s.sessions.ReadToken(c); ok {
		// The cookie is cleared either way; logout must not fail the request.
		if err := s.authsvc.RevokeSession(c.Request.Context(), token); err != nil {
			s.log.Warn("session revoke failed", zap.Error(err))
		}
	}
	s.sessions.Clear(c)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, s.userResponse(user))
}

func (s *Server) ToggleWishlist(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	updated, err := s.authsvc.ToggleWishlist(c.Request.Context(), user.Email, c.Param("productId"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.userResponse(updated))
}
