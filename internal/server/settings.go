package server

import (
	"net/http"

	settingsdomain "github.com/abiramijewels/aurum/internal/settings/domain"
	"github.com/gin-gonic/gin"
)

// GetStorefrontSettings serves the public rates ticker and showcase layout.
func (s *Server) GetStorefrontSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settingsSvc.Current().ToExternal())
}

func (s *Server) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, s.settingsSvc.Current().ToExternal())
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var req settingsdomain.External
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if err := s.settingsSvc.Save(c.Request.Context(), settingsdomain.FromExternal(req)); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, s.settingsSvc.Current().ToExternal())
}
