package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaomacarrao/storefront/internal/checkout"
	"github.com/joaomacarrao/storefront/internal/domain"
)

// session — активная сессия оформления; nil + 404, если оформление не начато.
func (h *Handler) session(c *gin.Context) *checkout.Session {
	s := h.deps.Checkouts.Get(sessionID(c))
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout not started"})
	}
	return s
}

func (h *Handler) startCheckout(c *gin.Context) {
	store := h.cartStore(c)
	if store.ItemsCount() == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	}
	s := h.deps.Checkouts.Start(sessionID(c), store)
	c.JSON(http.StatusCreated, s.State())
}

func (h *Handler) checkoutState(c *gin.Context) {
	if s := h.session(c); s != nil {
		c.JSON(http.StatusOK, s.State())
	}
}

func (h *Handler) setCheckoutDelivery(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	var req struct {
		Address string `json:"address"`
		City    string `json:"city"`
		ZipCode string `json:"zip_code"`
		Notes   string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	s.SetDelivery(req.Address, req.City, req.ZipCode, req.Notes)
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) checkoutNext(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	if err := s.ProceedToPaymentMethod(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) checkoutBack(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	if err := s.Back(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) selectPaymentMethod(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	var req struct {
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := s.SelectPaymentMethod(req.PaymentMethod); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) confirmCheckout(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	if err := s.Confirm(c.Request.Context()); err != nil {
		// Сессия уже на шаге error с извлечённым сообщением: отдаём её состояние.
		if st := s.State(); st.Step == checkout.StepError {
			c.JSON(http.StatusBadGateway, st)
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) retryCheckout(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	if err := s.Retry(); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

// completeCheckout — подтверждение успешной оплаты.
// При переданном transaction_id платёж дополнительно подтверждается в бэкенде.
func (h *Handler) completeCheckout(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	var req struct {
		TransactionID string `json:"transaction_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if req.TransactionID != "" {
		if payment := s.State().Payment; payment != nil && payment.PaymentID() > 0 {
			if err := h.deps.Payments.ConfirmPayment(c.Request.Context(), payment.PaymentID(), req.TransactionID); err != nil {
				h.fail(c, err)
				return
			}
		}
	}

	if err := s.PaymentSucceeded(c.Request.Context()); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) failCheckout(c *gin.Context) {
	s := h.session(c)
	if s == nil {
		return
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := s.PaymentFailed(req.Message); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s.State())
}

func (h *Handler) abandonCheckout(c *gin.Context) {
	h.deps.Checkouts.Remove(sessionID(c))
	c.Status(http.StatusNoContent)
}
