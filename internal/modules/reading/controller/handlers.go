package controller

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"sensorhub-server/internal/modules/reading/types"
	"sensorhub-server/internal/utils"
)

func (c *readingControllerImpl) handleUpdateData(w http.ResponseWriter, r *http.Request) {
	var payload types.UpdatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		// Malformed or missing bodies are stored as nulls, never rejected.
		slog.Debug("update body not decoded, storing nulls", "error", err)
		payload = types.UpdatePayload{}
	}

	c.store.Set(payload.Temperature, payload.Humidity)
	utils.WriteText(w, http.StatusOK, "OK")
}

func (c *readingControllerImpl) handleGetData(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, c.store.Get())
}
