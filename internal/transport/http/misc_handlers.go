package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/pkg/httpx"
)

// Окно списка отзывов по умолчанию и его потолок.
const (
	defaultReviewsLimit = 20
	maxReviewsLimit     = 100
)

func (h *Handler) createReview(c *gin.Context) {
	var req domain.ReviewCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Dish <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dish is required"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	review, err := h.deps.Reviews.CreateReview(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) markReviewHelpful(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.deps.Reviews.MarkHelpful(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// listDishReviews — бэкенд отдаёт список целиком, окно limit/offset
// вырезается на нашей стороне.
func (h *Handler) listDishReviews(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	reviews, err := h.deps.Reviews.ListDishReviews(c.Request.Context(), id, c.Query("ordering"))
	if err != nil {
		h.fail(c, err)
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, defaultReviewsLimit, maxReviewsLimit)
	if offset >= len(reviews) {
		reviews = reviews[:0]
	} else {
		end := httpx.ClampInt(offset+limit, 0, len(reviews))
		reviews = reviews[offset:end]
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *Handler) dishReviewStats(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	stats, err := h.deps.Reviews.DishStats(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) accessibilityConfig(c *gin.Context) {
	cfg, err := h.deps.Accessibility.Config(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// synthesizeSpeech — синтез речи с языком и голосом из настроек сессии.
// Выключенный TTS — конфликт, а не ошибка ввода.
func (h *Handler) synthesizeSpeech(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	settings := h.settingsService(c).Settings()
	if !settings.TTSEnabled {
		c.JSON(http.StatusConflict, gin.H{"error": "text-to-speech is disabled"})
		return
	}

	resp, err := h.deps.Accessibility.Synthesize(c.Request.Context(), &domain.TTSRequest{
		Text:         req.Text,
		LanguageCode: settings.Language,
		VoiceGender:  settings.VoiceGender,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) shortcutsHelp(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"help": h.deps.Shortcuts.HelpText()})
}

func (h *Handler) sendContactMessage(c *gin.Context) {
	var req domain.ContactMessage
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and message are required"})
		return
	}

	sent, err := h.deps.Contact.Send(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, sent)
}

func (h *Handler) adminStats(c *gin.Context) {
	stats, err := h.deps.Admin.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
