package domain

import (
	"time"

	"github.com/google/uuid"
)

// Сообщения для пользователя при работе с сохранёнными данными.
const (
	MsgOfflineCached  = "can't reach server, showing saved data"
	MsgOfflineNoData  = "no data available, please check your connection"
	MsgStaleFallback  = "couldn't refresh, showing saved data"
	MsgProvidersEmpty = "no providers available"
)

// DiscoveryQuery: параметры разового поиска провайдеров.
type DiscoveryQuery struct {
	Category     string
	Reference    GeoPoint
	Strategy     RankingStrategy
	ForceRefresh bool
}

// Validate проверяет, что категория и опорная точка заданы.
func (q DiscoveryQuery) Validate() error {
	if q.Category == "" || q.Reference.Latitude == 0 || q.Reference.Longitude == 0 {
		return ErrInvalidQuery
	}
	return nil
}

// SearchResult: ранжированная выдача и признаки её происхождения.
type SearchResult struct {
	Providers []Provider
	Strategy  RankingStrategy
	FromCache bool
	IsOffline bool
	Message   string
	Err       error
}

// DiscoveryUpdate: доставка живой сессии, полный пересобранный список (не дифф).
type DiscoveryUpdate struct {
	SessionID uuid.UUID
	Category  string
	Providers []Provider
	Err       error
}

// DiscoveryEvent: событие выполненного поиска для аналитики.
type DiscoveryEvent struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Strategy    RankingStrategy `json:"strategy"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	ResultCount int             `json:"result_count"`
	FromCache   bool            `json:"from_cache"`
	IsOffline   bool            `json:"is_offline"`
	Timestamp   time.Time       `json:"timestamp"`
}
