package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gdevgproject/perfume-shop/internal/interfaces"
)

type CreateOrderRequest struct {
	UserID string             `json:"user_id"`
	Items  []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type ChangeStatusRequest struct {
	Status string `json:"status"`
	Actor  string `json:"actor"`
}

func (s *Server) createOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	items := make([]interfaces.CreateOrderItemCommand, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, interfaces.CreateOrderItemCommand{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	order, err := s.orders.CreateOrder(c.Request.Context(), interfaces.CreateOrderCommand{
		UserID: req.UserID,
		Items:  items,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) getOrder(c *gin.Context) {
	order, err := s.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) listUserOrders(c *gin.Context) {
	orders, err := s.orders.ListOrdersByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (s *Server) changeOrderStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	order, err := s.orders.ChangeStatus(c.Request.Context(), interfaces.ChangeStatusCommand{
		OrderID: c.Param("id"),
		Status:  req.Status,
		Actor:   req.Actor,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) getOrderStatus(c *gin.Context) {
	result, err := s.tracking.GetOrderStatus(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"order_id":       result.OrderID,
		"order_code":     result.OrderCode,
		"current_status": result.CurrentStatus,
		"updated_at":     result.UpdatedAt,
	})
}

func (s *Server) getOrderHistory(c *gin.Context) {
	history, err := s.tracking.GetOrderHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
