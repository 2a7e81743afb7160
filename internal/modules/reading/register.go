package reading

import (
	"net/http"

	"sensorhub-server/internal/modules/reading/controller"
	"sensorhub-server/internal/modules/reading/store"
)

func RegisterFeature(mux *http.ServeMux, readingStore store.Store, subscriber MQTTSubscriber) {
	readingController := controller.NewReadingController(readingStore)
	readingController.RegisterRoutes(mux)
	registerMQTTHandler(subscriber, readingStore)
}
