package netstatus

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

var _ ports.INetworkStatus = (*Monitor)(nil)

// Config: настройки проверки сети. Переменные: GSS_NETWORK_PROBE_ADDR, GSS_NETWORK_INTERVAL, GSS_NETWORK_TIMEOUT.
type Config struct {
	ProbeAddr string        `envconfig:"PROBE_ADDR" default:"1.1.1.1:53"`
	Interval  time.Duration `envconfig:"INTERVAL" default:"10s"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"3s"`
}

// Pinger: проверка доступности бэкенда (документного хранилища).
type Pinger interface {
	Ping(ctx context.Context) error
}

// Monitor определяет состояние сети: TCP-соединение с ProbeAddr означает «подключены»,
// пинг бэкенда: «интернет доступен». Без Pinger доступность неизвестна.
type Monitor struct {
	cfg    Config
	pinger Pinger
	log    *slog.Logger
	dialer net.Dialer

	mu     sync.Mutex
	last   *domain.NetworkState
	subs   map[int]func(domain.NetworkState)
	nextID int
}

// New создаёт монитор. Опрос запускается через Run.
func New(cfg Config, pinger Pinger, log *slog.Logger) *Monitor {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 3 * time.Second
	}
	return &Monitor{
		cfg:    cfg,
		pinger: pinger,
		log:    log,
		subs:   make(map[int]func(domain.NetworkState)),
	}
}

// FetchCurrentStatus отдаёт состояние из последнего опроса Run.
// До первого опроса проверяет сеть сразу.
func (m *Monitor) FetchCurrentStatus(ctx context.Context) (domain.NetworkState, error) {
	m.mu.Lock()
	last := m.last
	m.mu.Unlock()
	if last != nil {
		return *last, nil
	}
	return m.check(ctx)
}

// check: TCP-соединение с ProbeAddr и пинг бэкенда, не дольше Timeout.
func (m *Monitor) check(ctx context.Context) (domain.NetworkState, error) {
	ctx, cancel := context.WithTimeout(ctx, m.cfg.Timeout)
	defer cancel()

	conn, err := m.dialer.DialContext(ctx, "tcp", m.cfg.ProbeAddr)
	if err != nil {
		if errors.Is(ctx.Err(), context.Canceled) {
			return domain.NetworkState{}, ctx.Err()
		}
		return domain.NetworkState{Connected: false}, nil
	}
	_ = conn.Close()

	st := domain.NetworkState{Connected: true}
	if m.pinger != nil {
		reachable := m.pinger.Ping(ctx) == nil
		st.Reachable = &reachable
	}
	return st, nil
}

// Subscribe регистрирует cb на изменения состояния. Отписка идемпотентна.
func (m *Monitor) Subscribe(cb func(domain.NetworkState)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = cb
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

// Run опрашивает сеть с интервалом до отмены ctx и рассылает изменения подписчикам.
func (m *Monitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	m.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.poll(ctx)
		}
	}
}

// poll проверяет сеть и уведомляет подписчиков, если состояние изменилось.
func (m *Monitor) poll(ctx context.Context) {
	st, err := m.check(ctx)
	if err != nil {
		return
	}

	m.mu.Lock()
	if m.last != nil && sameState(*m.last, st) {
		m.mu.Unlock()
		return
	}
	m.last = &st
	subs := make([]func(domain.NetworkState), 0, len(m.subs))
	for _, cb := range m.subs {
		subs = append(subs, cb)
	}
	m.mu.Unlock()

	m.log.Info("network status changed", "connected", st.Connected, "online", st.Online())
	for _, cb := range subs {
		cb(st)
	}
}

func sameState(a, b domain.NetworkState) bool {
	if a.Connected != b.Connected {
		return false
	}
	if a.Reachable == nil || b.Reachable == nil {
		return a.Reachable == nil && b.Reachable == nil
	}
	return *a.Reachable == *b.Reachable
}
