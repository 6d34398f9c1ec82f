package discovery

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/markbriannn/gss-maasin-app-sub005/internal/domain"
	"github.com/markbriannn/gss-maasin-app-sub005/internal/mocks"
)

// feedCall: одна подписка на мок-ленту, её колбэки и число отмен.
type feedCall struct {
	filter     domain.ProviderFilter
	onSnapshot func([]domain.ProviderRecord)
	onError    func(error)
	canceled   int
}

// recorder собирает доставки сессии.
type recorder struct {
	mu      sync.Mutex
	updates []domain.DiscoveryUpdate
}

func (r *recorder) onUpdate(u domain.DiscoveryUpdate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates = append(r.updates, u)
}

func (r *recorder) all() []domain.DiscoveryUpdate {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.DiscoveryUpdate(nil), r.updates...)
}

// expectSubscribe программирует мок ленты: каждая подписка запоминается в calls.
func expectSubscribe(feed *mocks.MockIProviderFeed, calls *[]*feedCall) {
	feed.EXPECT().
		Subscribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, f domain.ProviderFilter, onSnapshot func([]domain.ProviderRecord), onError func(error)) (func(), error) {
			c := &feedCall{filter: f, onSnapshot: onSnapshot, onError: onError}
			*calls = append(*calls, c)
			return func() { c.canceled++ }, nil
		}).
		AnyTimes()
}

func newSessionUseCase(feed *mocks.MockIProviderFeed) *UseCase {
	return New(nil, feed, nil, nil, nil, newTestLogger(), Config{})
}

func TestSession_DeliversFullListOnEverySnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockIProviderFeed(ctrl)
	var calls []*feedCall
	expectSubscribe(feed, &calls)

	rec := &recorder{}
	s := newSessionUseCase(feed).NewSession(rec.onUpdate).(*Session)
	assert.Equal(t, stateIdle, s.currentState())

	require.NoError(t, s.Start(context.Background(), "electrician", maasin))
	require.Len(t, calls, 1)
	assert.Equal(t, domain.CategoryFilter("electrician"), calls[0].filter)
	assert.Equal(t, stateSubscribing, s.currentState())

	calls[0].onSnapshot([]domain.ProviderRecord{})
	calls[0].onSnapshot(electricians())

	updates := rec.all()
	require.Len(t, updates, 2, "первый снимок тоже доставляется")
	assert.Empty(t, updates[0].Providers)
	assert.Len(t, updates[1].Providers, 2)
	assert.Equal(t, s.ID(), updates[1].SessionID)
	assert.Equal(t, "electrician", updates[1].Category)
	assert.Equal(t, "< 5 mins", updates[1].Providers[0].EstimatedArrival)
	assert.Equal(t, statePopulated, s.currentState())
}

func TestSession_RestartCancelsPreviousAndDropsStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockIProviderFeed(ctrl)
	var calls []*feedCall
	expectSubscribe(feed, &calls)

	rec := &recorder{}
	s := newSessionUseCase(feed).NewSession(rec.onUpdate)

	require.NoError(t, s.Start(context.Background(), "electrician", maasin))
	require.NoError(t, s.Start(context.Background(), "plumber", maasin))

	require.Len(t, calls, 2)
	assert.Equal(t, 1, calls[0].canceled, "старая подписка снимается до новой")
	assert.Equal(t, 0, calls[1].canceled)

	// Старая лента успела прислать снимок после переподписки: он отбрасывается.
	calls[0].onSnapshot(electricians())
	calls[0].onError(errors.New("late error"))
	calls[1].onSnapshot(nil)

	updates := rec.all()
	require.Len(t, updates, 1)
	assert.Equal(t, "plumber", updates[0].Category)
	assert.NoError(t, updates[0].Err)
}

func TestSession_NoCallbackAfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockIProviderFeed(ctrl)
	var calls []*feedCall
	expectSubscribe(feed, &calls)

	rec := &recorder{}
	s := newSessionUseCase(feed).NewSession(rec.onUpdate).(*Session)
	require.NoError(t, s.Start(context.Background(), "electrician", maasin))

	s.Close()
	s.Close()

	assert.Equal(t, 1, calls[0].canceled, "отмена вызывается один раз")
	assert.Equal(t, stateUnsubscribed, s.currentState())

	calls[0].onSnapshot(electricians())
	calls[0].onError(errors.New("stream closed"))
	assert.Empty(t, rec.all(), "после Close колбэк не вызывается")

	err := s.Start(context.Background(), "electrician", maasin)
	assert.ErrorIs(t, err, domain.ErrSessionClosed)
	assert.Len(t, calls, 1)
}

func TestSession_SubscribeFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	denied := errors.New("permission denied")
	feed := mocks.NewMockIProviderFeed(ctrl)
	feed.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, denied)

	rec := &recorder{}
	s := newSessionUseCase(feed).NewSession(rec.onUpdate)

	err := s.Start(context.Background(), "electrician", maasin)
	assert.ErrorIs(t, err, domain.ErrSubscriptionFailed)
	assert.ErrorIs(t, err, denied)

	updates := rec.all()
	require.Len(t, updates, 1)
	assert.NotNil(t, updates[0].Providers)
	assert.Empty(t, updates[0].Providers, "отказ подписки: пустой список")
	assert.ErrorIs(t, updates[0].Err, domain.ErrSubscriptionFailed)

	// Close после неудачной подписки безопасен
	s.Close()
}

func TestSession_StreamErrorReportsEmptyList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := mocks.NewMockIProviderFeed(ctrl)
	var calls []*feedCall
	expectSubscribe(feed, &calls)

	rec := &recorder{}
	s := newSessionUseCase(feed).NewSession(rec.onUpdate)
	require.NoError(t, s.Start(context.Background(), "electrician", maasin))

	calls[0].onSnapshot(electricians())
	calls[0].onError(errors.New("change stream invalidated"))

	updates := rec.all()
	require.Len(t, updates, 2)
	assert.Empty(t, updates[1].Providers)
	assert.ErrorIs(t, updates[1].Err, domain.ErrSubscriptionFailed)
	assert.Len(t, calls, 1, "повторной подписки нет")
}

func TestSession_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Лента не вызывается
	feed := mocks.NewMockIProviderFeed(ctrl)
	s := newSessionUseCase(feed).NewSession(nil)

	assert.ErrorIs(t, s.Start(context.Background(), "", maasin), domain.ErrInvalidQuery)
	assert.ErrorIs(t, s.Start(context.Background(), "electrician", domain.GeoPoint{}), domain.ErrInvalidQuery)
}

func TestSession_SynchronousFirstSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Лента, которая отдаёт первый снимок прямо внутри Subscribe.
	feed := mocks.NewMockIProviderFeed(ctrl)
	feed.EXPECT().
		Subscribe(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.ProviderFilter, onSnapshot func([]domain.ProviderRecord), _ func(error)) (func(), error) {
			onSnapshot(electricians())
			return func() {}, nil
		})

	rec := &recorder{}
	s := newSessionUseCase(feed).NewSession(rec.onUpdate)
	require.NoError(t, s.Start(context.Background(), "electrician", maasin))

	require.Len(t, rec.all(), 1)
	s.Close()
}
