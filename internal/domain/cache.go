package domain

import "time"

// DefaultCacheTTL: срок жизни записи офлайн-кэша по умолчанию.
const DefaultCacheTTL = 24 * time.Hour

// CachedEntry: запись офлайн-кэша, значение и абсолютный срок истечения.
type CachedEntry struct {
	Key                 string
	Value               []byte
	ExpiresAtEpochMilli int64
}

// Expired сообщает, истекла ли запись к моменту now (строго больше).
func (e CachedEntry) Expired(now time.Time) bool {
	return now.UnixMilli() > e.ExpiresAtEpochMilli
}

// FetchResult: итог FetchWithOfflineFallback. Сами данные декодируются в dst вызывающего.
type FetchResult struct {
	// Found: в dst есть данные; false только для офлайн-режима без кэша.
	Found     bool
	FromCache bool
	IsOffline bool
	// Err: ошибка загрузки, если вместо свежих данных отдан кэш.
	Err error
}

// NetworkState: сырое состояние сети от источника статуса.
// Reachable == nil означает, что доступность интернета неизвестна.
type NetworkState struct {
	Connected bool
	Reachable *bool
}

// Online: подключены и интернет доступен (неизвестная доступность считается доступной).
func (s NetworkState) Online() bool {
	if !s.Connected {
		return false
	}
	return s.Reachable == nil || *s.Reachable
}
