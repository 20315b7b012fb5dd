package domain

// LanguageCode — язык интерфейса и синтеза речи.
type LanguageCode string

const (
	LangPortuguese LanguageCode = "pt-BR"
	LangEnglish    LanguageCode = "en-US"
	LangSpanish    LanguageCode = "es-ES"
)

// Valid — язык из поддерживаемого набора.
func (l LanguageCode) Valid() bool {
	switch l {
	case LangPortuguese, LangEnglish, LangSpanish:
		return true
	}
	return false
}

// VoiceGender — голос синтеза речи.
type VoiceGender string

const (
	VoiceNeutral VoiceGender = "NEUTRAL"
	VoiceMale    VoiceGender = "MALE"
	VoiceFemale  VoiceGender = "FEMALE"
)

// Valid — голос из поддерживаемого набора.
func (g VoiceGender) Valid() bool {
	switch g {
	case VoiceNeutral, VoiceMale, VoiceFemale:
		return true
	}
	return false
}

// Границы размера шрифта в пикселях.
const (
	FontSizeMin     = 12
	FontSizeMax     = 24
	FontSizeDefault = 16
	FontSizeStep    = 2
)

// AccessibilitySettings — настройки доступности одной сессии.
// Сохраняются в хранилище целиком при каждом изменении.
type AccessibilitySettings struct {
	FontSize          int          `json:"fontSize"`
	HighContrast      bool         `json:"highContrast"`
	SimplifiedReading bool         `json:"simplifiedReading"`
	TTSEnabled        bool         `json:"ttsEnabled"`
	Language          LanguageCode `json:"language"`
	VoiceGender       VoiceGender  `json:"voiceGender"`
	LibrasEnabled     bool         `json:"librasEnabled"`
}

// DefaultAccessibilitySettings — значения по умолчанию.
func DefaultAccessibilitySettings() AccessibilitySettings {
	return AccessibilitySettings{
		FontSize:          FontSizeDefault,
		HighContrast:      false,
		SimplifiedReading: false,
		TTSEnabled:        false,
		Language:          LangPortuguese,
		VoiceGender:       VoiceNeutral,
		LibrasEnabled:     false,
	}
}

// SettingsStorageName — фиксированное имя записи настроек в хранилище.
const SettingsStorageName = "accessibility_settings"

// AccessibilityConfig — конфигурация доступности с бэкенда.
type AccessibilityConfig struct {
	Languages    []LanguageCode  `json:"languages"`
	VoiceGenders []VoiceGender   `json:"voice_genders"`
	Features     map[string]bool `json:"features,omitempty"`
}

// TTSRequest — запрос синтеза речи.
type TTSRequest struct {
	Text         string       `json:"text"`
	LanguageCode LanguageCode `json:"language_code"`
	VoiceGender  VoiceGender  `json:"voice_gender"`
}

// TTSResponse — ответ синтеза: аудио в base64 и ссылка на файл.
type TTSResponse struct {
	AudioContent string `json:"audio_content"`
	AudioURL     string `json:"audio_url,omitempty"`
}
