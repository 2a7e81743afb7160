package reading

import (
	"log/slog"

	"sensorhub-server/internal/modules/reading/store"
	"sensorhub-server/internal/modules/reading/types"
)

// MQTTSubscriber interface for attaching message handlers
type MQTTSubscriber interface {
	SetMessageHandler(handler func(payload types.UpdatePayload) error)
}

// registerMQTTHandler routes inbound MQTT payloads into the reading store,
// identical in effect to POST /updateData.
func registerMQTTHandler(subscriber MQTTSubscriber, readingStore store.Store) {
	subscriber.SetMessageHandler(func(payload types.UpdatePayload) error {
		reading := readingStore.Set(payload.Temperature, payload.Humidity)
		slog.Debug("stored mqtt reading", "timestamp", *reading.Timestamp)
		return nil
	})
}
