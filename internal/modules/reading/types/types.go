package types

// Reading is the single record of temperature, humidity and timestamp
// tracked by the service. Pointer fields serialize as JSON null until the
// first update assigns them.
type Reading struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
	Timestamp   *string  `json:"timestamp"`
}

// UpdatePayload is an inbound reading from HTTP or MQTT. Both fields are
// optional; absent fields end up stored as null.
type UpdatePayload struct {
	Temperature *float64 `json:"temperature"`
	Humidity    *float64 `json:"humidity"`
}
