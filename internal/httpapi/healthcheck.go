package httpapi

import (
	"net/http"

	"sensorhub-server/internal/utils"
)

// ConnChecker reports whether the MQTT ingest path is currently connected.
type ConnChecker interface {
	IsConnected() bool
}

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	mqtt ConnChecker
}

func NewHealthchecker(mqtt ConnChecker) healthchecker {
	return &healthcheckerImpl{mqtt: mqtt}
}

func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"mqtt_connected": h.mqtt.IsConnected(),
	})
}

func registerHealthcheck(mux *http.ServeMux, mqtt ConnChecker) {
	healthchecker := NewHealthchecker(mqtt)
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}
