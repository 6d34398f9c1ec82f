package domain

import "errors"

var (
	// ErrInvalidQuery возвращается, когда не задана категория или опорная точка поиска.
	ErrInvalidQuery = errors.New("invalid discovery query")
	// ErrUnknownStrategy возвращается для неизвестной стратегии ранжирования.
	ErrUnknownStrategy = errors.New("unknown ranking strategy")
	// ErrSubscriptionFailed оборачивает отказ живой подписки на ленту провайдеров.
	ErrSubscriptionFailed = errors.New("provider feed subscription failed")
	// ErrSessionClosed возвращается при попытке переподписать закрытую сессию.
	ErrSessionClosed = errors.New("discovery session closed")
	// ErrInvalidProvider возвращается, если у записи провайдера нет идентификатора.
	ErrInvalidProvider = errors.New("invalid provider record")
)
