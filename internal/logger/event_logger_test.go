package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogger_LogAndGet(t *testing.T) {
	el := NewEventLogger(10)

	el.LogEvent(EventTransactionReceived, "antifraud-service", "api", map[string]interface{}{
		"transaction_id": int64(1),
	})
	el.LogEvent(EventDecisionMade, "antifraud-service", "engine", map[string]interface{}{
		"recommendation": "approve",
	})

	events := el.GetEvents(10)
	require.Len(t, events, 2)
	assert.Equal(t, EventTransactionReceived, events[0].Type)
	assert.Equal(t, EventDecisionMade, events[1].Type)
	assert.Equal(t, "engine", events[1].Component)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].Timestamp.IsZero())
}

func TestEventLogger_GetEventsLimit(t *testing.T) {
	el := NewEventLogger(100)
	for i := 0; i < 5; i++ {
		el.LogEvent(EventDecisionMade, "antifraud-service", "engine", map[string]interface{}{
			"n": i,
		})
	}

	// Возвращаются последние события
	events := el.GetEvents(2)
	require.Len(t, events, 2)
	assert.Equal(t, 3, events[0].Data["n"])
	assert.Equal(t, 4, events[1].Data["n"])

	// Неположительный лимит отдает все
	assert.Len(t, el.GetEvents(0), 5)
	assert.Len(t, el.GetEvents(-1), 5)
}

func TestEventLogger_MaxSizeTrimsOldest(t *testing.T) {
	el := NewEventLogger(3)
	for i := 0; i < 5; i++ {
		el.LogEvent(EventDecisionMade, "antifraud-service", "engine", map[string]interface{}{
			"n": i,
		})
	}

	events := el.GetEvents(10)
	require.Len(t, events, 3)
	assert.Equal(t, 2, events[0].Data["n"])
	assert.Equal(t, 4, events[2].Data["n"])
}

func TestEventLogger_GetStats(t *testing.T) {
	el := NewEventLogger(100)
	el.LogEvent(EventTransactionReceived, "antifraud-service", "api", nil)
	el.LogEvent(EventDecisionMade, "antifraud-service", "engine", nil)
	el.LogEvent(EventDecisionMade, "antifraud-service", "engine", nil)

	stats := el.GetStats()
	assert.Equal(t, 3, stats["total_events"])

	typeStats, ok := stats["event_types"].(map[string]int)
	require.True(t, ok, fmt.Sprintf("unexpected stats shape: %T", stats["event_types"]))
	assert.Equal(t, 2, typeStats[string(EventDecisionMade)])
	assert.Equal(t, 1, typeStats[string(EventTransactionReceived)])

	componentStats := stats["components"].(map[string]int)
	assert.Equal(t, 2, componentStats["engine"])
}
