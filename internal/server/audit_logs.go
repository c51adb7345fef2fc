package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListAuditLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": s.auditSvc.List()})
}
