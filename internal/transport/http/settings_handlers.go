package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joaomacarrao/storefront/internal/domain"
)

func (h *Handler) getSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settingsService(c).Settings())
}

func (h *Handler) resetSettings(c *gin.Context) {
	svc := h.settingsService(c)
	svc.Reset(c.Request.Context())
	c.JSON(http.StatusOK, svc.Settings())
}

func (h *Handler) setFontSize(c *gin.Context) {
	var req struct {
		Size int `json:"size"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svc := h.settingsService(c)
	svc.SetFontSize(c.Request.Context(), req.Size)
	c.JSON(http.StatusOK, svc.Settings())
}

func (h *Handler) increaseFontSize(c *gin.Context) {
	svc := h.settingsService(c)
	svc.IncreaseFontSize(c.Request.Context())
	c.JSON(http.StatusOK, svc.Settings())
}

func (h *Handler) decreaseFontSize(c *gin.Context) {
	svc := h.settingsService(c)
	svc.DecreaseFontSize(c.Request.Context())
	c.JSON(http.StatusOK, svc.Settings())
}

func (h *Handler) resetFontSize(c *gin.Context) {
	svc := h.settingsService(c)
	svc.ResetFontSize(c.Request.Context())
	c.JSON(http.StatusOK, svc.Settings())
}

// toggleFeature — переключатели по имени из пути.
func (h *Handler) toggleFeature(c *gin.Context) {
	svc := h.settingsService(c)
	ctx := c.Request.Context()

	switch c.Param("feature") {
	case "high-contrast":
		svc.ToggleHighContrast(ctx)
	case "simplified-reading":
		svc.ToggleSimplifiedReading(ctx)
	case "tts":
		svc.ToggleTTS(ctx)
	case "libras":
		svc.ToggleLibras(ctx)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown feature"})
		return
	}
	c.JSON(http.StatusOK, svc.Settings())
}

func (h *Handler) setLanguage(c *gin.Context) {
	var req struct {
		Language domain.LanguageCode `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svc := h.settingsService(c)
	if err := svc.SetLanguage(c.Request.Context(), req.Language); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Settings())
}

func (h *Handler) setVoiceGender(c *gin.Context) {
	var req struct {
		VoiceGender domain.VoiceGender `json:"voice_gender"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	svc := h.settingsService(c)
	if err := svc.SetVoiceGender(c.Request.Context(), req.VoiceGender); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, svc.Settings())
}
