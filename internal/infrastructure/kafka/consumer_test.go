package kafka

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEvent(t *testing.T) {
	ev, err := decodeEvent([]byte(`{"id":"6f1c1f0e-8f5e-4c53-9a53-0a3c0f6f2a11","category":"electrician","strategy":"nearest","result_count":2,"from_cache":true}`))
	require.NoError(t, err)
	assert.Equal(t, "electrician", ev.Category)
	assert.Equal(t, 2, ev.ResultCount)
	assert.True(t, ev.FromCache)
	assert.Equal(t, "6f1c1f0e-8f5e-4c53-9a53-0a3c0f6f2a11", ev.ID.String())

	_, err = decodeEvent([]byte(`not json`))
	assert.Error(t, err)

	_, err = decodeEvent([]byte(`{"strategy":"nearest"}`))
	assert.Error(t, err, "событие без категории отбрасывается")
}

func TestBrokersSlice(t *testing.T) {
	cfg := &Config{Brokers: "kafka-1:9092, kafka-2:9092,,"}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.brokersSlice())

	var empty *Config
	assert.Equal(t, []string{"localhost:9092"}, empty.brokersSlice())
}

func TestMessage_Headers(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := message([]byte("electrician"), []byte(`{}`), at)

	assert.Equal(t, "electrician", string(m.Key), "ключ: категория, одна категория в одну партицию")
	assert.Equal(t, at, m.Time)
	require.Len(t, m.Headers, 2)
	assert.Equal(t, headerContentType, m.Headers[0].Key)
	assert.Equal(t, "application/json", string(m.Headers[0].Value))
	assert.Equal(t, sourceName, string(m.Headers[1].Value))
}
