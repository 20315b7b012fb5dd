package a11y

import (
	"context"
	"sync"
	"time"

	"github.com/joaomacarrao/storefront/internal/domain"
	"github.com/joaomacarrao/storefront/internal/ports"
	"github.com/joaomacarrao/storefront/pkg/metrics"
)

// Player — приёмник синтезированного аудио (base64).
// Сбой воспроизведения — best-effort, наружу не выходит.
type Player interface {
	Play(audioContent string) error
}

// Speaker — озвучивание текста через шлюз синтеза речи.
// Речь включается настройкой ttsEnabled; флаг speaking отсекает
// перекрывающиеся реплики; очередь сериализует несколько запросов
// с фиксированной паузой между репликами.
type Speaker struct {
	settings *Service
	gateway  ports.AccessibilityGateway
	player   Player
	log      ports.Logger

	mu       sync.Mutex
	speaking bool

	queueMu    sync.Mutex
	queue      []string
	processing bool
	queueDelay time.Duration
}

// NewSpeaker — озвучка поверх сервиса настроек и шлюза синтеза.
// queueDelay — пауза между репликами очереди.
func NewSpeaker(settings *Service, gateway ports.AccessibilityGateway, player Player, log ports.Logger, queueDelay time.Duration) *Speaker {
	return &Speaker{
		settings:   settings,
		gateway:    gateway,
		player:     player,
		log:        log,
		queueDelay: queueDelay,
	}
}

// Speaking — идёт ли сейчас воспроизведение.
func (s *Speaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// Speak — озвучить текст. Молчаливый no-op, когда синтез выключен
// или другая реплика ещё звучит; ошибка — только сбой синтеза.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	st := s.settings.Settings()
	if !st.TTSEnabled {
		metrics.TTSRequests.WithLabelValues("skipped").Inc()
		return nil
	}

	s.mu.Lock()
	if s.speaking {
		s.mu.Unlock()
		metrics.TTSRequests.WithLabelValues("skipped").Inc()
		return nil
	}
	s.speaking = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.speaking = false
		s.mu.Unlock()
	}()

	resp, err := s.gateway.Synthesize(ctx, &domain.TTSRequest{
		Text:         text,
		LanguageCode: st.Language,
		VoiceGender:  st.VoiceGender,
	})
	if err != nil {
		metrics.TTSRequests.WithLabelValues("error").Inc()
		s.log.Errorf(ctx, "tts synthesize failed err=%v", err)
		return err
	}
	metrics.TTSRequests.WithLabelValues("ok").Inc()

	if s.player != nil {
		if err := s.player.Play(resp.AudioContent); err != nil {
			s.log.Warnf(ctx, "tts playback failed err=%v", err)
		}
	}
	return nil
}

// Enqueue — поставить текст в очередь озвучивания.
func (s *Speaker) Enqueue(text string) {
	s.queueMu.Lock()
	s.queue = append(s.queue, text)
	s.queueMu.Unlock()
}

// ProcessQueue — последовательное озвучивание очереди с паузой между
// репликами. Повторный вызов во время обработки — no-op; сбой одной
// реплики не останавливает остальные.
func (s *Speaker) ProcessQueue(ctx context.Context) {
	s.queueMu.Lock()
	if s.processing {
		s.queueMu.Unlock()
		return
	}
	s.processing = true
	s.queueMu.Unlock()

	defer func() {
		s.queueMu.Lock()
		s.processing = false
		s.queueMu.Unlock()
	}()

	for {
		s.queueMu.Lock()
		if len(s.queue) == 0 {
			s.queueMu.Unlock()
			return
		}
		text := s.queue[0]
		s.queue = s.queue[1:]
		s.queueMu.Unlock()

		if err := ctx.Err(); err != nil {
			return
		}
		if err := s.Speak(ctx, text); err != nil {
			s.log.Warnf(ctx, "tts queue item failed err=%v", err)
		}

		if s.queueDelay > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.queueDelay):
			}
		}
	}
}
