package a11y

import "sync"

// HeadlessDocument — документ без рендеринга: запоминает применённые
// побочные эффекты (размер шрифта, классы-маркеры), чтобы их можно было
// наблюдать в диагностике и тестах.
type HeadlessDocument struct {
	mu       sync.Mutex
	fontSize int
	classes  map[string]bool
}

func NewHeadlessDocument() *HeadlessDocument {
	return &HeadlessDocument{classes: make(map[string]bool)}
}

func (d *HeadlessDocument) SetRootFontSize(px int) {
	d.mu.Lock()
	d.fontSize = px
	d.mu.Unlock()
}

func (d *HeadlessDocument) SetClass(name string, on bool) {
	d.mu.Lock()
	if on {
		d.classes[name] = true
	} else {
		delete(d.classes, name)
	}
	d.mu.Unlock()
}

// FontSize — последний применённый размер шрифта.
func (d *HeadlessDocument) FontSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.fontSize
}

// HasClass — включён ли класс-маркер.
func (d *HeadlessDocument) HasClass(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.classes[name]
}
