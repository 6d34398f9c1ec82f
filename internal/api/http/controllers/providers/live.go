package providers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/ports"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	maxMessage = 4096
)

// Типы сообщений живой ленты.
const (
	msgSubscribe = "subscribe"
	msgSort      = "sort"
	msgProviders = "providers"
	msgError     = "error"
)

// clientMessage: подписка на категорию или смена сортировки.
type clientMessage struct {
	Type     string  `json:"type"`
	Category string  `json:"category,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lng      float64 `json:"lng,omitempty"`
	Sort     string  `json:"sort,omitempty"`
}

// serverMessage: полный отсортированный список или ошибка.
type serverMessage struct {
	Type      string        `json:"type"`
	Category  string        `json:"category,omitempty"`
	Strategy  string        `json:"strategy,omitempty"`
	Providers []ProviderDTO `json:"providers"`
	Error     string        `json:"error,omitempty"`
}

// liveState: последнее состояние ленты соединения. Пишут колбэк сессии и читатель, отправляет писатель.
type liveState struct {
	mu        sync.Mutex
	category  string
	strategy  domain.RankingStrategy
	providers []domain.Provider
	feedErr   error
	ready     bool
	dirty     bool
	errs      []string
	notify    chan struct{}
}

func newLiveState() *liveState {
	return &liveState{strategy: domain.StrategyRecommended, notify: make(chan struct{}, 1)}
}

func (s *liveState) signal() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// onUpdate вызывается сессией под её мьютексом, поэтому только сохраняет снимок.
func (s *liveState) onUpdate(u domain.DiscoveryUpdate) {
	s.mu.Lock()
	s.category = u.Category
	s.providers = u.Providers
	s.feedErr = u.Err
	s.ready = true
	s.dirty = true
	s.mu.Unlock()
	s.signal()
}

func (s *liveState) setStrategy(st domain.RankingStrategy) {
	s.mu.Lock()
	s.strategy = st
	s.dirty = true
	s.mu.Unlock()
	s.signal()
}

func (s *liveState) fail(msg string) {
	s.mu.Lock()
	s.errs = append(s.errs, msg)
	s.mu.Unlock()
	s.signal()
}

// drain собирает сообщения к отправке: сначала ошибки, затем список, если он изменился.
func (s *liveState) drain(rank func([]domain.Provider, domain.RankingStrategy) []domain.Provider) []serverMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]serverMessage, 0, len(s.errs)+1)
	for _, e := range s.errs {
		out = append(out, serverMessage{Type: msgError, Providers: []ProviderDTO{}, Error: e})
	}
	s.errs = nil
	if s.ready && s.dirty {
		s.dirty = false
		out = append(out, serverMessage{
			Type:      msgProviders,
			Category:  s.category,
			Strategy:  string(s.strategy),
			Providers: toDTOs(rank(s.providers, s.strategy)),
			Error:     errString(s.feedErr),
		})
	}
	return out
}

func (c *Controller) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(c.origins) == 0 {
				return true
			}
			_, ok := c.origins[origin]
			return ok
		},
	}
}

// @Summary Живая лента провайдеров
// @Description Websocket. Клиент шлёт {"type":"subscribe",category,lat,lng,sort} или {"type":"sort",sort};
// @Description сервер на каждое изменение ленты присылает полный отсортированный список.
// @Tags providers
// @Router /api/v1/providers/live [get]
func (c *Controller) live(ctx *gin.Context) {
	conn, err := c.upgrader().Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.log.Warn("websocket upgrade failed", "error", err)
		return
	}
	connCtx, cancel := context.WithCancel(context.WithoutCancel(ctx.Request.Context()))
	defer cancel()

	state := newLiveState()
	session := c.uc.NewSession(state.onUpdate)
	defer session.Close()
	c.log.Info("live session opened", "session", session.ID(), "ip", ctx.ClientIP())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.writeLoop(connCtx, conn, state)
		// Разблокирует читателя, если писатель вышел первым.
		_ = conn.Close()
	}()

	c.readLoop(connCtx, conn, session, state)
	cancel()
	wg.Wait()
	c.log.Info("live session closed", "session", session.ID())
}

// readLoop обрабатывает сообщения клиента до ошибки чтения или закрытия соединения.
func (c *Controller) readLoop(ctx context.Context, conn *websocket.Conn, session ports.IDiscoverySession, state *liveState) {
	conn.SetReadLimit(maxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.Debug("websocket read failed", "session", session.ID(), "error", err)
			}
			return
		}
		if ctx.Err() != nil {
			return
		}

		switch msg.Type {
		case msgSubscribe:
			if msg.Sort != "" {
				st, err := domain.ParseRankingStrategy(msg.Sort)
				if err != nil {
					state.fail(err.Error())
					continue
				}
				state.setStrategy(st)
			}
			ref := domain.GeoPoint{Latitude: msg.Lat, Longitude: msg.Lng}
			if err := session.Start(ctx, msg.Category, ref); err != nil {
				c.log.Warn("live subscribe failed", "session", session.ID(), "category", msg.Category, "error", err)
				// Отказ ленты уже доставлен сессией пустым списком с ошибкой.
				if !errors.Is(err, domain.ErrSubscriptionFailed) {
					state.fail(err.Error())
				}
			}
		case msgSort:
			st, err := domain.ParseRankingStrategy(msg.Sort)
			if err != nil {
				state.fail(err.Error())
				continue
			}
			state.setStrategy(st)
		default:
			state.fail("unknown message type: " + msg.Type)
		}
	}
}

// writeLoop единственный пишет в соединение: снимки ленты и пинги.
func (c *Controller) writeLoop(ctx context.Context, conn *websocket.Conn, state *liveState) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		case <-state.notify:
			for _, msg := range state.drain(c.uc.Rank) {
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(msg); err != nil {
					c.log.Debug("websocket write failed", "error", err)
					return
				}
			}
		}
	}
}
