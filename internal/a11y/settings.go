package a11y

import (
	"context"
	"errors"
	"sync"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
)

// Document — приёмник визуальных побочных эффектов настроек:
// корневой размер шрифта и классы-маркеры режимов отображения.
type Document interface {
	SetRootFontSize(px int)
	SetClass(name string, on bool)
}

// Классы-маркеры, которые выставляются на корне документа.
const (
	ClassHighContrast      = "high-contrast"
	ClassSimplifiedReading = "simplified-reading"
)

var (
	// ErrUnknownLanguage — язык вне поддерживаемого набора.
	ErrUnknownLanguage = errors.New("a11y: unknown language code")
	// ErrUnknownVoice — голос вне поддерживаемого набора.
	ErrUnknownVoice = errors.New("a11y: unknown voice gender")
)

// Service — настройки доступности одной сессии.
// Каждый сеттер применяет частичное изменение, прогоняет побочные
// эффекты через Document и сохраняет объект настроек целиком.
// Сбой сохранения не прерывает изменение (best-effort, только лог).
type Service struct {
	mu        sync.Mutex
	sessionID string
	settings  domain.AccessibilitySettings

	doc  Document
	repo ports.SettingsRepository
	log  ports.Logger
}

// NewService — сервис с настройками по умолчанию.
func NewService(sessionID string, doc Document, repo ports.SettingsRepository, log ports.Logger) *Service {
	s := &Service{
		sessionID: sessionID,
		settings:  domain.DefaultAccessibilitySettings(),
		doc:       doc,
		repo:      repo,
		log:       log,
	}
	s.mu.Lock()
	s.applyLocked()
	s.mu.Unlock()
	return s
}

// restore — восстановление из сохранённых настроек (гидрация).
func (s *Service) restore(saved *domain.AccessibilitySettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = *saved
	s.settings.FontSize = clampFontSize(s.settings.FontSize)
	s.applyLocked()
}

// Settings — копия текущих настроек.
func (s *Service) Settings() domain.AccessibilitySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// SetFontSize — размер шрифта с зажимом в [FontSizeMin, FontSizeMax].
func (s *Service) SetFontSize(ctx context.Context, px int) {
	s.mutate(ctx, func() { s.settings.FontSize = clampFontSize(px) })
}

// IncreaseFontSize — шаг вверх, не выше максимума.
func (s *Service) IncreaseFontSize(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.FontSize = clampFontSize(s.settings.FontSize + domain.FontSizeStep) })
}

// DecreaseFontSize — шаг вниз, не ниже минимума.
func (s *Service) DecreaseFontSize(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.FontSize = clampFontSize(s.settings.FontSize - domain.FontSizeStep) })
}

// ResetFontSize — возврат к значению по умолчанию.
func (s *Service) ResetFontSize(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.FontSize = domain.FontSizeDefault })
}

// EnableHighContrast — идемпотентное включение высокого контраста.
func (s *Service) EnableHighContrast(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.HighContrast = true })
}

// DisableHighContrast — идемпотентное выключение высокого контраста.
func (s *Service) DisableHighContrast(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.HighContrast = false })
}

// ToggleHighContrast — переключение высокого контраста.
func (s *Service) ToggleHighContrast(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.HighContrast = !s.settings.HighContrast })
}

// ToggleSimplifiedReading — переключение упрощённого чтения.
func (s *Service) ToggleSimplifiedReading(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.SimplifiedReading = !s.settings.SimplifiedReading })
}

// ToggleTTS — переключение синтеза речи.
func (s *Service) ToggleTTS(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.TTSEnabled = !s.settings.TTSEnabled })
}

// ToggleLibras — переключение видео на языке жестов.
func (s *Service) ToggleLibras(ctx context.Context) {
	s.mutate(ctx, func() { s.settings.LibrasEnabled = !s.settings.LibrasEnabled })
}

// SetLanguage — язык интерфейса и синтеза.
func (s *Service) SetLanguage(ctx context.Context, lang domain.LanguageCode) error {
	if !lang.Valid() {
		return ErrUnknownLanguage
	}
	s.mutate(ctx, func() { s.settings.Language = lang })
	return nil
}

// SetVoiceGender — голос синтеза.
func (s *Service) SetVoiceGender(ctx context.Context, g domain.VoiceGender) error {
	if !g.Valid() {
		return ErrUnknownVoice
	}
	s.mutate(ctx, func() { s.settings.VoiceGender = g })
	return nil
}

// Reset — все настройки к значениям по умолчанию.
func (s *Service) Reset(ctx context.Context) {
	s.mutate(ctx, func() { s.settings = domain.DefaultAccessibilitySettings() })
}

// mutate — общий путь изменения: мутация, побочные эффекты, сохранение.
func (s *Service) mutate(ctx context.Context, change func()) {
	s.mu.Lock()
	change()
	s.applyLocked()
	saved := s.settings
	s.mu.Unlock()

	if s.repo == nil {
		return
	}
	if err := s.repo.Save(ctx, s.sessionID, &saved); err != nil {
		s.log.Warnf(ctx, "accessibility settings persist failed session=%s err=%v", s.sessionID, err)
	}
}

// applyLocked — прогон побочных эффектов по текущим настройкам.
func (s *Service) applyLocked() {
	if s.doc == nil {
		return
	}
	s.doc.SetRootFontSize(s.settings.FontSize)
	s.doc.SetClass(ClassHighContrast, s.settings.HighContrast)
	s.doc.SetClass(ClassSimplifiedReading, s.settings.SimplifiedReading)
}

// clampFontSize — зажим размера шрифта в допустимые границы.
func clampFontSize(px int) int {
	if px < domain.FontSizeMin {
		return domain.FontSizeMin
	}
	if px > domain.FontSizeMax {
		return domain.FontSizeMax
	}
	return px
}
