package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/joaomacarrao/storefront/internal/cart"
	"github.com/joaomacarrao/storefront/internal/domain"
)

// cartView — состояние корзины вместе с производными суммами.
type cartView struct {
	Items       []domain.CartLine `json:"items"`
	Subtotal    domain.Money      `json:"subtotal"`
	DeliveryFee domain.Money      `json:"delivery_fee"`
	Total       domain.Money      `json:"total"`
	ItemsCount  int               `json:"items_count"`
}

func viewOf(s *cart.Store) cartView {
	snapshot := s.Snapshot()
	return cartView{
		Items:       snapshot.Items,
		Subtotal:    s.Subtotal(),
		DeliveryFee: s.DeliveryFee(),
		Total:       s.Total(),
		ItemsCount:  s.ItemsCount(),
	}
}

// dishIDParam — числовой :dishID из пути.
func dishIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("dishID"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid dish id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, viewOf(h.cartStore(c)))
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req struct {
		Dish     domain.Dish `json:"dish"`
		Quantity int         `json:"quantity"`
		Notes    string      `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Dish.ID <= 0 || req.Dish.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish id and name are required"})
		return
	}

	s := h.cartStore(c)
	s.AddItem(c.Request.Context(), req.Dish, req.Quantity, req.Notes)
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) updateCartQuantity(c *gin.Context) {
	dishID, ok := dishIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	s := h.cartStore(c)
	s.UpdateQuantity(c.Request.Context(), dishID, req.Quantity)
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) updateCartNotes(c *gin.Context) {
	dishID, ok := dishIDParam(c)
	if !ok {
		return
	}
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	s := h.cartStore(c)
	s.UpdateNotes(c.Request.Context(), dishID, req.Notes)
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) removeCartItem(c *gin.Context) {
	dishID, ok := dishIDParam(c)
	if !ok {
		return
	}

	s := h.cartStore(c)
	s.RemoveItem(c.Request.Context(), dishID)
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) clearCart(c *gin.Context) {
	s := h.cartStore(c)
	s.Clear(c.Request.Context())
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *Handler) setDeliveryFee(c *gin.Context) {
	var req struct {
		DeliveryFee domain.Money `json:"delivery_fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.DeliveryFee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "delivery fee must be non-negative"})
		return
	}

	s := h.cartStore(c)
	s.SetDeliveryFee(c.Request.Context(), req.DeliveryFee)
	c.JSON(http.StatusOK, viewOf(s))
}
