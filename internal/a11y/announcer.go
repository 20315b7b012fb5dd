package a11y

import (
	"sync"
	"time"

	"github.com/joaomacarrao/storefront/pkg/metrics"
)

// Priority — настойчивость ARIA-объявления.
type Priority string

const (
	PriorityPolite    Priority = "polite"
	PriorityAssertive Priority = "assertive"
)

// DefaultClearAfter — задержка очистки текста после объявления.
const DefaultClearAfter = time.Second

// Announcer — две закадровые live-области (polite и assertive).
// Перед записью текст области очищается: скринридеры не повторяют
// объявление, если содержимое области не менялось. Через clearAfter
// после записи текст стирается, чтобы то же сообщение могло
// прозвучать снова.
type Announcer struct {
	mu         sync.Mutex
	clearAfter time.Duration
	regions    map[Priority]*liveRegion

	// onChange — наблюдатель записей в области (транспорту и тестам).
	onChange func(p Priority, text string)
}

type liveRegion struct {
	text  string
	timer *time.Timer
}

// NewAnnouncer — области с задержкой очистки clearAfter
// (0 — DefaultClearAfter).
func NewAnnouncer(clearAfter time.Duration, onChange func(p Priority, text string)) *Announcer {
	if clearAfter <= 0 {
		clearAfter = DefaultClearAfter
	}
	return &Announcer{
		clearAfter: clearAfter,
		regions: map[Priority]*liveRegion{
			PriorityPolite:    {},
			PriorityAssertive: {},
		},
		onChange: onChange,
	}
}

// Announce — объявление с приоритетом и автоочисткой.
func (a *Announcer) Announce(message string, p Priority) {
	a.write(message, p, a.clearAfter)
}

// AnnounceError — "Erro: ..." с приоритетом assertive.
func (a *Announcer) AnnounceError(message string) {
	a.Announce("Erro: "+message, PriorityAssertive)
}

// AnnounceSuccess — "Sucesso: ..." с приоритетом polite.
func (a *Announcer) AnnounceSuccess(message string) {
	a.Announce("Sucesso: "+message, PriorityPolite)
}

// AnnounceWarning — "Aviso: ..." с приоритетом assertive.
func (a *Announcer) AnnounceWarning(message string) {
	a.Announce("Aviso: "+message, PriorityAssertive)
}

// AnnounceInfo — "Informação: ..." с приоритетом polite.
func (a *Announcer) AnnounceInfo(message string) {
	a.Announce("Informação: "+message, PriorityPolite)
}

// AnnounceLoading — индикатор загрузки без автоочистки:
// висит до явного ClearLoading.
func (a *Announcer) AnnounceLoading(message string) {
	if message == "" {
		message = "Carregando..."
	}
	a.write(message, PriorityPolite, 0)
}

// ClearLoading — очистка polite-области после загрузки.
func (a *Announcer) ClearLoading() {
	a.mu.Lock()
	a.setTextLocked(a.regions[PriorityPolite], PriorityPolite, "")
	a.mu.Unlock()
}

// Text — текущий текст области (для рендера и тестов).
func (a *Announcer) Text(p Priority) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.regions[p].text
}

// Close — остановка отложенных очисток.
func (a *Announcer) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.regions {
		if r.timer != nil {
			r.timer.Stop()
			r.timer = nil
		}
	}
}

// write — очистка, запись и планирование автоочистки.
func (a *Announcer) write(message string, p Priority, clearAfter time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	r := a.regions[p]
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}

	// Сброс перед записью гарантирует повторное озвучивание
	// одинаковых сообщений подряд.
	if r.text != "" {
		a.setTextLocked(r, p, "")
	}
	a.setTextLocked(r, p, message)
	metrics.Announcements.WithLabelValues(string(p)).Inc()

	if clearAfter > 0 {
		r.timer = time.AfterFunc(clearAfter, func() {
			a.mu.Lock()
			a.setTextLocked(r, p, "")
			r.timer = nil
			a.mu.Unlock()
		})
	}
}

func (a *Announcer) setTextLocked(r *liveRegion, p Priority, text string) {
	r.text = text
	if a.onChange != nil {
		a.onChange(p, text)
	}
}
