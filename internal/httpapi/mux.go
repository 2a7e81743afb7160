package httpapi

import (
	"net/http"
)

func NewMux(mqtt ConnChecker) *http.ServeMux {
	mux := http.NewServeMux()
	registerHealthcheck(mux, mqtt)
	return mux
}
