package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListCustomers(c *gin.Context) {
	items, err := s.customersSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": items})
}
