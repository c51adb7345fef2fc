package server

import (
	"net/http"

	ordersdomain "github.com/abiramijewels/aurum/internal/orders/domain"
	"github.com/gin-gonic/gin"
)

type updateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) ListOrders(c *gin.Context) {
	items, err := s.ordersSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": items})
}

func (s *Server) UpdateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	order, err := s.ordersSvc.UpdateStatus(c.Request.Context(), c.Param("id"), ordersdomain.Status(req.Status))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}
