package a11y

import (
	"context"
	"strings"
	"sync"
)

// Modifiers — зажатые модификаторы нажатия.
type Modifiers struct {
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Shortcut — одна привязка клавиши к действию.
type Shortcut struct {
	Key         string
	Mods        Modifiers
	Description string
	Action      func(ctx context.Context)
	Enabled     bool
}

// ShortcutDispatcher — упорядоченный реестр горячих клавиш:
// сначала привязки по умолчанию, затем пользовательские.
// Срабатывает первая привязка с точным совпадением клавиши и
// набора модификаторов; лишний модификатор отменяет совпадение
// (Ctrl+Alt+H не задевает привязку на Ctrl+H).
type ShortcutDispatcher struct {
	mu        sync.Mutex
	shortcuts []Shortcut
}

// NewShortcutDispatcher — реестр с переданным набором привязок.
func NewShortcutDispatcher(defaults ...Shortcut) *ShortcutDispatcher {
	return &ShortcutDispatcher{shortcuts: defaults}
}

// Register — дописывает пользовательскую привязку в конец списка.
func (d *ShortcutDispatcher) Register(s Shortcut) {
	d.mu.Lock()
	d.shortcuts = append(d.shortcuts, s)
	d.mu.Unlock()
}

// Dispatch — обработка нажатия; true, если привязка сработала.
func (d *ShortcutDispatcher) Dispatch(ctx context.Context, key string, mods Modifiers) bool {
	d.mu.Lock()
	shortcuts := make([]Shortcut, len(d.shortcuts))
	copy(shortcuts, d.shortcuts)
	d.mu.Unlock()

	for _, s := range shortcuts {
		if !s.Enabled {
			continue
		}
		if strings.EqualFold(key, s.Key) && mods == s.Mods {
			s.Action(ctx)
			return true
		}
	}
	return false
}

// List — активные привязки в порядке приоритета.
func (d *ShortcutDispatcher) List() []Shortcut {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Shortcut, 0, len(d.shortcuts))
	for _, s := range d.shortcuts {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// HelpText — список привязок для подсказки, по строке на привязку.
func (d *ShortcutDispatcher) HelpText() string {
	var b strings.Builder
	for i, s := range d.List() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(FormatShortcut(s))
		b.WriteString(": ")
		b.WriteString(s.Description)
	}
	return b.String()
}

// FormatShortcut — отображение привязки вида "Ctrl + Alt + H".
func FormatShortcut(s Shortcut) string {
	parts := make([]string, 0, 4)
	if s.Mods.Ctrl {
		parts = append(parts, "Ctrl")
	}
	if s.Mods.Alt {
		parts = append(parts, "Alt")
	}
	if s.Mods.Shift {
		parts = append(parts, "Shift")
	}
	parts = append(parts, strings.ToUpper(s.Key))
	return strings.Join(parts, " + ")
}

// DefaultShortcuts — стандартный набор привязок доступности.
// showHelp — действие подсказки Ctrl+Alt+? (список привязок).
func DefaultShortcuts(svc *Service, showHelp func(ctx context.Context)) []Shortcut {
	ctrl := Modifiers{Ctrl: true}
	ctrlAlt := Modifiers{Ctrl: true, Alt: true}
	return []Shortcut{
		{Key: "+", Mods: ctrl, Description: "Aumentar tamanho da fonte", Action: svc.IncreaseFontSize, Enabled: true},
		{Key: "-", Mods: ctrl, Description: "Diminuir tamanho da fonte", Action: svc.DecreaseFontSize, Enabled: true},
		{Key: "h", Mods: ctrlAlt, Description: "Alternar alto contraste", Action: svc.ToggleHighContrast, Enabled: true},
		{Key: "s", Mods: ctrlAlt, Description: "Alternar leitura simplificada", Action: svc.ToggleSimplifiedReading, Enabled: true},
		{Key: "t", Mods: ctrlAlt, Description: "Alternar Text-to-Speech", Action: svc.ToggleTTS, Enabled: true},
		{Key: "l", Mods: ctrlAlt, Description: "Alternar LIBRAS", Action: svc.ToggleLibras, Enabled: true},
		{Key: "?", Mods: ctrlAlt, Description: "Mostrar atalhos de acessibilidade", Action: showHelp, Enabled: true},
	}
}
