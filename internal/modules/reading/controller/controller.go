package controller

import (
	"net/http"

	"sensorhub-server/internal/modules/reading/store"
)

type ReadingController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type readingControllerImpl struct {
	store store.Store
}

func NewReadingController(store store.Store) ReadingController {
	return &readingControllerImpl{store: store}
}

func (c *readingControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /updateData", c.handleUpdateData)
	mux.HandleFunc("GET /getData", c.handleGetData)
	mux.HandleFunc("GET /ws", c.handleLiveFeed)
}
