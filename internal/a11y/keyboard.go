package a11y

// Клавиши, которые понимает навигатор.
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyEnter      = "Enter"
	KeySpace      = " "
	KeyTab        = "Tab"
)

// NavigatorOptions — поведение клавиатурной навигации.
type NavigatorOptions struct {
	// Loop — заворот на границах при стрелках.
	Loop bool
	// OnFocus — вызывается после перевода фокуса навигатором.
	OnFocus func(id string, index int)
	// OnSelect — вызывается на Enter/Space по отслеживаемому элементу.
	OnSelect func(id string, index int)
}

// KeyboardNavigator — "бегающий" фокус внутри контейнера: стрелки
// двигают фокус, Home/End — к краям, Enter/Space выбирают, Tab только
// синхронизирует отслеживаемую позицию, не меняя нативный обход.
type KeyboardNavigator struct {
	surface Surface
	opts    NavigatorOptions
	current int
}

// NewKeyboardNavigator — навигатор поверх поверхности.
func NewKeyboardNavigator(surface Surface, opts NavigatorOptions) *KeyboardNavigator {
	return &KeyboardNavigator{surface: surface, opts: opts, current: -1}
}

// Current — отслеживаемый индекс; -1 до первого перемещения.
func (n *KeyboardNavigator) Current() int { return n.current }

// HandleKey — обработка нажатия; true, если нажатие обработано.
// Нажатия с Ctrl или Alt навигатору не принадлежат.
func (n *KeyboardNavigator) HandleKey(key string, mods Modifiers) bool {
	if mods.Ctrl || mods.Alt {
		return false
	}

	switch key {
	case KeyArrowDown, KeyArrowRight:
		n.FocusNext()
	case KeyArrowUp, KeyArrowLeft:
		n.FocusPrevious()
	case KeyHome:
		n.FocusFirst()
	case KeyEnd:
		n.FocusLast()
	case KeyEnter, KeySpace:
		return n.selectFocused()
	case KeyTab:
		// Tab не перехватывается: только синхронизация позиции.
		n.trackFocused()
		return false
	default:
		return false
	}
	return true
}

// FocusNext — следующий элемент; на границе заворот при Loop.
func (n *KeyboardNavigator) FocusNext() {
	elements := n.surface.Focusables()
	if len(elements) == 0 {
		return
	}
	next := (n.current + 1) % len(elements)
	if next == 0 && n.current >= 0 && !n.opts.Loop {
		return
	}
	n.focusIndex(elements, next)
}

// FocusPrevious — предыдущий элемент; на границе заворот при Loop.
func (n *KeyboardNavigator) FocusPrevious() {
	elements := n.surface.Focusables()
	if len(elements) == 0 {
		return
	}
	prev := n.current - 1
	if prev < 0 {
		if n.current >= 0 && !n.opts.Loop {
			return
		}
		prev = len(elements) - 1
	}
	n.focusIndex(elements, prev)
}

// FocusFirst — первый элемент.
func (n *KeyboardNavigator) FocusFirst() {
	if elements := n.surface.Focusables(); len(elements) > 0 {
		n.focusIndex(elements, 0)
	}
}

// FocusLast — последний элемент.
func (n *KeyboardNavigator) FocusLast() {
	if elements := n.surface.Focusables(); len(elements) > 0 {
		n.focusIndex(elements, len(elements)-1)
	}
}

// FocusIndex — элемент по индексу; вне диапазона — no-op.
func (n *KeyboardNavigator) FocusIndex(index int) {
	elements := n.surface.Focusables()
	if index < 0 || index >= len(elements) {
		return
	}
	n.focusIndex(elements, index)
}

func (n *KeyboardNavigator) focusIndex(elements []string, index int) {
	n.current = index
	n.surface.Focus(elements[index])
	if n.opts.OnFocus != nil {
		n.opts.OnFocus(elements[index], index)
	}
}

// selectFocused — выбор сфокусированного элемента, если он отслеживается.
func (n *KeyboardNavigator) selectFocused() bool {
	elements := n.surface.Focusables()
	idx := indexOf(elements, n.surface.Focused())
	if idx < 0 {
		return false
	}
	if n.opts.OnSelect != nil {
		n.opts.OnSelect(elements[idx], idx)
	}
	return true
}

// trackFocused — синхронизация отслеживаемого индекса после Tab.
func (n *KeyboardNavigator) trackFocused() {
	elements := n.surface.Focusables()
	if idx := indexOf(elements, n.surface.Focused()); idx >= 0 {
		n.current = idx
	}
}
