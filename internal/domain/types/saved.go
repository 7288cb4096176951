package types

import "time"

// SavedMeasurement is a labelled length kept for reuse. Value is stored in
// canonical reduced form, e.g. `5' 3 1/2"` is kept as `63 1/2"`.
type SavedMeasurement struct {
	ID        MeasurementID `json:"id"`
	Label     string        `json:"label"`
	Value     string        `json:"value"`
	CreatedAt time.Time     `json:"createdAt"`
}

// NewSavedMeasurement is the input for saving a measurement.
type NewSavedMeasurement struct {
	Label string `json:"label"`
	Value string `json:"value"`
}
