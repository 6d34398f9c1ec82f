package discovery

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.IDiscoverySession = (*Session)(nil)

type sessionState int

const (
	stateIdle sessionState = iota
	stateSubscribing
	statePopulated
	stateUnsubscribed
)

func (s sessionState) String() string {
	switch s {
	case stateSubscribing:
		return "subscribing"
	case statePopulated:
		return "populated"
	case stateUnsubscribed:
		return "unsubscribed"
	default:
		return "idle"
	}
}

// Session: живая выдача одного экрана, не больше одной активной подписки на ленту.
// Каждый Start увеличивает токен; доставки со старым токеном отбрасываются.
// onUpdate вызывается под мьютексом сессии и не должен вызывать методы сессии.
type Session struct {
	id       uuid.UUID
	uc       *UseCase
	onUpdate func(domain.DiscoveryUpdate)

	mu     sync.Mutex
	state  sessionState
	token  uint64
	cancel func()
}

// NewSession создаёт сессию в состоянии Idle.
func (u *UseCase) NewSession(onUpdate func(domain.DiscoveryUpdate)) ports.IDiscoverySession {
	if onUpdate == nil {
		onUpdate = func(domain.DiscoveryUpdate) {}
	}
	activeSessions.Inc()
	return &Session{id: uuid.New(), uc: u, onUpdate: onUpdate}
}

// ID: идентификатор сессии.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Start снимает прежнюю подписку и подписывается на категорию относительно ref.
// Отказ подписки доставляется как пустой список с ошибкой и возвращается вызывающему.
func (s *Session) Start(ctx context.Context, category string, ref domain.GeoPoint) error {
	if category == "" || ref.Latitude == 0 || ref.Longitude == 0 {
		return domain.ErrInvalidQuery
	}

	s.mu.Lock()
	if s.state == stateUnsubscribed {
		s.mu.Unlock()
		return domain.ErrSessionClosed
	}
	s.teardownLocked()
	s.token++
	token := s.token
	s.state = stateSubscribing
	s.mu.Unlock()

	cancel, err := s.uc.feed.Subscribe(ctx, domain.CategoryFilter(category),
		func(recs []domain.ProviderRecord) { s.deliver(token, category, ref, recs) },
		func(err error) { s.fail(token, category, err) },
	)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token {
		// Сессию переподписали или закрыли, пока шла подписка.
		if cancel != nil {
			cancel()
		}
		if s.state == stateUnsubscribed {
			return domain.ErrSessionClosed
		}
		return nil
	}
	if err != nil {
		err = fmt.Errorf("%w: %w", domain.ErrSubscriptionFailed, err)
		s.uc.log.Warn("provider feed subscribe", "session", s.id, "category", category, "error", err)
		s.state = statePopulated
		sessionDeliveries.WithLabelValues("error").Inc()
		s.onUpdate(domain.DiscoveryUpdate{SessionID: s.id, Category: category, Providers: []domain.Provider{}, Err: err})
		return err
	}
	s.cancel = cancel
	s.uc.log.Debug("session subscribed", "session", s.id, "category", category)
	return nil
}

// Close снимает подписку. После возврата onUpdate больше не вызывается. Повторный вызов ничего не делает.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == stateUnsubscribed {
		return
	}
	s.teardownLocked()
	s.token++
	s.state = stateUnsubscribed
	activeSessions.Dec()
	s.uc.log.Debug("session closed", "session", s.id)
}

func (s *Session) teardownLocked() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// deliver пересобирает проекции и отдаёт полный список, если токен ещё актуален.
func (s *Session) deliver(token uint64, category string, ref domain.GeoPoint, recs []domain.ProviderRecord) {
	providers := s.uc.Build(recs, ref)

	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token || s.state == stateUnsubscribed {
		sessionDeliveries.WithLabelValues("stale").Inc()
		return
	}
	s.state = statePopulated
	sessionDeliveries.WithLabelValues("delivered").Inc()
	s.onUpdate(domain.DiscoveryUpdate{SessionID: s.id, Category: category, Providers: providers})
}

// fail сообщает об ошибке потока пустым списком. Повторной подписки нет.
func (s *Session) fail(token uint64, category string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.token || s.state == stateUnsubscribed {
		sessionDeliveries.WithLabelValues("stale").Inc()
		return
	}
	s.uc.log.Warn("provider feed error", "session", s.id, "category", category, "error", err)
	s.state = statePopulated
	sessionDeliveries.WithLabelValues("error").Inc()
	s.onUpdate(domain.DiscoveryUpdate{
		SessionID: s.id,
		Category:  category,
		Providers: []domain.Provider{},
		Err:       fmt.Errorf("%w: %w", domain.ErrSubscriptionFailed, err),
	})
}

func (s *Session) currentState() sessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
