package types

import (
	"fmt"
	"strconv"
)

// HistoryID identifies a calculation history entry.
type HistoryID int64

// String returns the decimal form of the identifier.
func (id HistoryID) String() string { return strconv.FormatInt(int64(id), 10) }

// MeasurementID identifies a saved measurement.
type MeasurementID int64

// String returns the decimal form of the identifier.
func (id MeasurementID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseMeasurementID parses a positive decimal identifier, as found in a URL
// path or a command argument.
func ParseMeasurementID(s string) (MeasurementID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid measurement id %q", s)
	}
	return MeasurementID(n), nil
}
