package a11y

// Surface — поверхность с фокусируемыми элементами.
// Focusables отдаёт идентификаторы в порядке обхода; невидимые и
// выключенные элементы в список не входят.
type Surface interface {
	Focusables() []string
	Focused() string
	Focus(id string)
}

// TrapOptions — поведение ловушки фокуса.
type TrapOptions struct {
	// AutoFocus — при активации перевести фокус на первый элемент.
	AutoFocus bool
	// RestoreFocus — при деактивации вернуть фокус прежнему элементу.
	RestoreFocus bool
	// Loop — на границе заворачивать к противоположному краю;
	// иначе фокус остаётся на месте.
	Loop bool
}

// DefaultTrapOptions — автофокус, восстановление и заворот включены.
func DefaultTrapOptions() TrapOptions {
	return TrapOptions{AutoFocus: true, RestoreFocus: true, Loop: true}
}

// FocusTrap — удержание Tab-обхода внутри контейнера (модальные окна).
type FocusTrap struct {
	surface Surface
	opts    TrapOptions

	active   bool
	previous string
}

// NewFocusTrap — ловушка поверх поверхности; не активна до Activate.
func NewFocusTrap(surface Surface, opts TrapOptions) *FocusTrap {
	return &FocusTrap{surface: surface, opts: opts}
}

// Active — активна ли ловушка.
func (t *FocusTrap) Active() bool { return t.active }

// Activate — включение: запоминает текущий фокус и, при AutoFocus,
// переводит его на первый фокусируемый элемент.
func (t *FocusTrap) Activate() {
	if t.active {
		return
	}
	t.active = true
	t.previous = t.surface.Focused()
	if t.opts.AutoFocus {
		t.FocusFirst()
	}
}

// Deactivate — выключение с опциональным возвратом фокуса.
func (t *FocusTrap) Deactivate() {
	if !t.active {
		return
	}
	t.active = false
	if t.opts.RestoreFocus && t.previous != "" {
		t.surface.Focus(t.previous)
		t.previous = ""
	}
}

// HandleTab — шаг обхода: Tab вперёд, Shift+Tab назад.
// Вне активной ловушки — no-op; true, если нажатие обработано.
func (t *FocusTrap) HandleTab(shift bool) bool {
	if !t.active {
		return false
	}
	elements := t.surface.Focusables()
	if len(elements) == 0 {
		return false
	}

	idx := indexOf(elements, t.surface.Focused())
	var next int
	if shift {
		next = idx - 1
		if idx <= 0 {
			if !t.opts.Loop {
				next = 0
			} else {
				next = len(elements) - 1
			}
		}
	} else {
		next = idx + 1
		if next >= len(elements) {
			if !t.opts.Loop {
				next = len(elements) - 1
			} else {
				next = 0
			}
		}
	}
	t.surface.Focus(elements[next])
	return true
}

// FocusFirst — фокус на первый фокусируемый элемент.
func (t *FocusTrap) FocusFirst() {
	if elements := t.surface.Focusables(); len(elements) > 0 {
		t.surface.Focus(elements[0])
	}
}

// FocusLast — фокус на последний фокусируемый элемент.
func (t *FocusTrap) FocusLast() {
	if elements := t.surface.Focusables(); len(elements) > 0 {
		t.surface.Focus(elements[len(elements)-1])
	}
}

// indexOf — позиция id в списке; -1, если нет.
func indexOf(elements []string, id string) int {
	for i, e := range elements {
		if e == id {
			return i
		}
	}
	return -1
}
