package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// idParam — числовой :id из пути.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) listOrders(c *gin.Context) {
	page := 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v > 0 {
		page = v
	}

	result, err := h.deps.Orders.ListMyOrders(
		c.Request.Context(),
		c.Query("status"),
		c.Query("ordering"),
		page,
	)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.deps.Orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) cancelOrder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	order, err := h.deps.Orders.CancelOrder(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) paymentStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	status, err := h.deps.Payments.PaymentStatus(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

func (h *Handler) confirmPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.TransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transaction_id is required"})
		return
	}

	if err := h.deps.Payments.ConfirmPayment(c.Request.Context(), id, req.TransactionID); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
