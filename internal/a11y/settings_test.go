package a11y

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/joaomacarrao/storefront/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// fakeDoc — документ, запоминающий применённые побочные эффекты.
type fakeDoc struct {
	fontSize int
	classes  map[string]bool
}

func newFakeDoc() *fakeDoc { return &fakeDoc{classes: make(map[string]bool)} }

func (d *fakeDoc) SetRootFontSize(px int)        { d.fontSize = px }
func (d *fakeDoc) SetClass(name string, on bool) { d.classes[name] = on }

// settingsRepo — in-memory хранилище настроек для тестов.
type settingsRepo struct {
	mu      sync.Mutex
	byID    map[string]*domain.AccessibilitySettings
	saveErr error
	saves   int
}

func newSettingsRepo() *settingsRepo {
	return &settingsRepo{byID: make(map[string]*domain.AccessibilitySettings)}
}

func (r *settingsRepo) Get(_ context.Context, sessionID string) (*domain.AccessibilitySettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[sessionID], nil
}

func (r *settingsRepo) Save(_ context.Context, sessionID string, s *domain.AccessibilitySettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.saveErr != nil {
		return r.saveErr
	}
	cp := *s
	r.byID[sessionID] = &cp
	return nil
}

func TestService_FontSizeClamp(t *testing.T) {
	ctx := context.Background()
	svc := NewService("s1", newFakeDoc(), newSettingsRepo(), noopLogger{})

	cases := []struct {
		in, want int
	}{
		{-100, domain.FontSizeMin},
		{0, domain.FontSizeMin},
		{12, 12},
		{17, 17},
		{24, 24},
		{25, domain.FontSizeMax},
		{100000, domain.FontSizeMax},
	}
	for _, c := range cases {
		svc.SetFontSize(ctx, c.in)
		if got := svc.Settings().FontSize; got != c.want {
			t.Fatalf("SetFontSize(%d) → %d, ожидали %d", c.in, got, c.want)
		}
	}
}

func TestService_FontSizeStepAndReset(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDoc()
	svc := NewService("s1", doc, newSettingsRepo(), noopLogger{})

	svc.IncreaseFontSize(ctx)
	svc.IncreaseFontSize(ctx)
	if got := svc.Settings().FontSize; got != 20 {
		t.Fatalf("после двух шагов вверх = %d, ожидали 20", got)
	}

	// У максимума шаг вверх останавливается.
	for i := 0; i < 10; i++ {
		svc.IncreaseFontSize(ctx)
	}
	if got := svc.Settings().FontSize; got != domain.FontSizeMax {
		t.Fatalf("fontSize = %d, ожидали максимум", got)
	}

	svc.ResetFontSize(ctx)
	if got := svc.Settings().FontSize; got != domain.FontSizeDefault {
		t.Fatalf("после Reset = %d, ожидали %d", got, domain.FontSizeDefault)
	}
	if doc.fontSize != domain.FontSizeDefault {
		t.Fatalf("документ не получил размер: %d", doc.fontSize)
	}
}

func TestService_HighContrastIdempotent(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDoc()
	svc := NewService("s1", doc, newSettingsRepo(), noopLogger{})

	svc.EnableHighContrast(ctx)
	svc.EnableHighContrast(ctx)
	if !svc.Settings().HighContrast || !doc.classes[ClassHighContrast] {
		t.Fatal("двойное включение должно оставлять контраст включённым")
	}

	svc.DisableHighContrast(ctx)
	svc.DisableHighContrast(ctx)
	if svc.Settings().HighContrast || doc.classes[ClassHighContrast] {
		t.Fatal("двойное выключение должно оставлять контраст выключенным")
	}

	svc.ToggleHighContrast(ctx)
	if !svc.Settings().HighContrast {
		t.Fatal("Toggle из выключенного должен включать")
	}
}

func TestService_TogglesAndEnums(t *testing.T) {
	ctx := context.Background()
	doc := newFakeDoc()
	svc := NewService("s1", doc, newSettingsRepo(), noopLogger{})

	svc.ToggleSimplifiedReading(ctx)
	if !svc.Settings().SimplifiedReading || !doc.classes[ClassSimplifiedReading] {
		t.Fatal("упрощённое чтение не включилось")
	}
	svc.ToggleTTS(ctx)
	svc.ToggleLibras(ctx)
	st := svc.Settings()
	if !st.TTSEnabled || !st.LibrasEnabled {
		t.Fatalf("настройки = %+v", st)
	}

	if err := svc.SetLanguage(ctx, domain.LangEnglish); err != nil {
		t.Fatalf("SetLanguage: %v", err)
	}
	if err := svc.SetLanguage(ctx, "fr-FR"); !errors.Is(err, ErrUnknownLanguage) {
		t.Fatalf("неизвестный язык: err = %v", err)
	}
	if err := svc.SetVoiceGender(ctx, domain.VoiceFemale); err != nil {
		t.Fatalf("SetVoiceGender: %v", err)
	}
	if err := svc.SetVoiceGender(ctx, "ROBOT"); !errors.Is(err, ErrUnknownVoice) {
		t.Fatalf("неизвестный голос: err = %v", err)
	}

	svc.Reset(ctx)
	if got := svc.Settings(); got != domain.DefaultAccessibilitySettings() {
		t.Fatalf("после Reset = %+v", got)
	}
}

func TestService_PersistsWholeObjectAndToleratesFailure(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo()
	svc := NewService("s1", newFakeDoc(), repo, noopLogger{})

	svc.ToggleHighContrast(ctx)
	svc.SetFontSize(ctx, 20)

	saved := repo.byID["s1"]
	if saved == nil || !saved.HighContrast || saved.FontSize != 20 {
		t.Fatalf("сохранено = %+v", saved)
	}
	if repo.saves != 2 {
		t.Fatalf("saves = %d, ожидали запись на каждое изменение", repo.saves)
	}

	repo.saveErr = errors.New("quota exceeded")
	svc.ToggleTTS(ctx)
	if !svc.Settings().TTSEnabled {
		t.Fatal("сбой сохранения не должен откатывать изменение")
	}
}

func TestManager_LoadHydratesAndCaches(t *testing.T) {
	ctx := context.Background()
	repo := newSettingsRepo()
	repo.byID["s1"] = &domain.AccessibilitySettings{
		FontSize:     40, // вне границ: при гидрации зажимается
		HighContrast: true,
		Language:     domain.LangSpanish,
		VoiceGender:  domain.VoiceMale,
	}
	m := NewManager(func() Document { return newFakeDoc() }, repo, noopLogger{})

	svc := m.Load(ctx, "s1")
	st := svc.Settings()
	if st.FontSize != domain.FontSizeMax || !st.HighContrast || st.Language != domain.LangSpanish {
		t.Fatalf("гидрация = %+v", st)
	}
	if again := m.Load(ctx, "s1"); again != svc {
		t.Fatal("одна сессия — один сервис")
	}

	fresh := m.Load(ctx, "s2")
	if got := fresh.Settings(); got != domain.DefaultAccessibilitySettings() {
		t.Fatalf("новая сессия должна получать умолчания: %+v", got)
	}
}
