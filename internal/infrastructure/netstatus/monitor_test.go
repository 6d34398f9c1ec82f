package netstatus

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
)

// newTestLogger создаёт логгер для тестов (выводит только ошибки, чтобы не засорять вывод).
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

// listen поднимает локальный TCP-сервер, принимающий соединения.
func listen(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()
	return ln.Addr().String()
}

// closedAddr возвращает адрес, на котором никто не слушает.
func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestFetchCurrentStatus(t *testing.T) {
	up := listen(t)
	down := closedAddr(t)

	tests := []struct {
		name       string
		addr       string
		pinger     Pinger
		wantConn   bool
		wantOnline bool
		wantKnown  bool
	}{
		{name: "подключены, без пингера", addr: up, wantConn: true, wantOnline: true},
		{name: "подключены, бэкенд отвечает", addr: up, pinger: pingerFunc(func(context.Context) error { return nil }), wantConn: true, wantOnline: true, wantKnown: true},
		{name: "подключены, бэкенд недоступен", addr: up, pinger: pingerFunc(func(context.Context) error { return errors.New("timeout") }), wantConn: true, wantOnline: false, wantKnown: true},
		{name: "нет соединения", addr: down, wantConn: false, wantOnline: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Config{ProbeAddr: tt.addr, Timeout: time.Second}, tt.pinger, newTestLogger())
			st, err := m.FetchCurrentStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantConn, st.Connected)
			assert.Equal(t, tt.wantOnline, st.Online())
			assert.Equal(t, tt.wantKnown, st.Reachable != nil)
		})
	}
}

func TestPoll_NotifiesOnChangeOnly(t *testing.T) {
	reachable := true
	m := New(Config{ProbeAddr: listen(t), Timeout: time.Second},
		pingerFunc(func(context.Context) error {
			if reachable {
				return nil
			}
			return errors.New("unreachable")
		}), newTestLogger())

	var got []bool
	unsubscribe := m.Subscribe(func(st domain.NetworkState) { got = append(got, st.Online()) })

	ctx := context.Background()
	m.poll(ctx)
	m.poll(ctx)
	reachable = false
	m.poll(ctx)
	m.poll(ctx)

	assert.Equal(t, []bool{true, false}, got, "уведомления только при смене состояния")

	unsubscribe()
	unsubscribe()
	reachable = true
	m.poll(ctx)
	assert.Len(t, got, 2, "после отписки уведомлений нет")
}

func TestFetchCurrentStatus_UsesLastPoll(t *testing.T) {
	var pings atomic.Int32
	m := New(Config{ProbeAddr: listen(t), Timeout: time.Second},
		pingerFunc(func(context.Context) error {
			pings.Add(1)
			return nil
		}), newTestLogger())

	ctx := context.Background()
	m.poll(ctx)
	require.Equal(t, int32(1), pings.Load())

	// Адрес больше не отвечает, но до следующего опроса отдаётся сохранённое состояние
	m.cfg.ProbeAddr = closedAddr(t)
	for range 3 {
		st, err := m.FetchCurrentStatus(ctx)
		require.NoError(t, err)
		assert.True(t, st.Online())
	}
	assert.Equal(t, int32(1), pings.Load(), "между опросами сеть не проверяется")

	m.poll(ctx)
	st, err := m.FetchCurrentStatus(ctx)
	require.NoError(t, err)
	assert.False(t, st.Connected, "следующий опрос обновляет состояние")
}

func TestFetchCurrentStatus_ChecksBeforeFirstPoll(t *testing.T) {
	m := New(Config{ProbeAddr: closedAddr(t), Timeout: time.Second}, nil, newTestLogger())
	st, err := m.FetchCurrentStatus(context.Background())
	require.NoError(t, err)
	assert.False(t, st.Connected)

	m.cfg.ProbeAddr = listen(t)
	st, err = m.FetchCurrentStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, st.Connected, "без опроса каждый вызов проверяет сеть")
}

func TestSameState(t *testing.T) {
	yes, no := true, false
	assert.True(t, sameState(domain.NetworkState{Connected: true}, domain.NetworkState{Connected: true}))
	assert.False(t, sameState(domain.NetworkState{Connected: true}, domain.NetworkState{Connected: false}))
	assert.False(t, sameState(domain.NetworkState{Connected: true, Reachable: &yes}, domain.NetworkState{Connected: true}))
	assert.False(t, sameState(domain.NetworkState{Connected: true, Reachable: &yes}, domain.NetworkState{Connected: true, Reachable: &no}))
	assert.True(t, sameState(domain.NetworkState{Connected: true, Reachable: &no}, domain.NetworkState{Connected: true, Reachable: &no}))
}
