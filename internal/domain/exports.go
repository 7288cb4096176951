package domain

import (
	interfaces "tapecalc/internal/domain/interfaces"
	types "tapecalc/internal/domain/types"
	"tapecalc/internal/imperial"
	"tapecalc/internal/layout"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	HistoryID           = types.HistoryID
	MeasurementID       = types.MeasurementID
	HistoryEntry        = types.HistoryEntry
	NewHistoryEntry     = types.NewHistoryEntry
	SavedMeasurement    = types.SavedMeasurement
	NewSavedMeasurement = types.NewSavedMeasurement
	Calculation         = types.Calculation
	CalculateRequest    = types.CalculateRequest
	LayoutResult        = types.LayoutResult
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	HistoryStore   = interfaces.HistoryStore
	SavedStore     = interfaces.SavedStore
	Store          = interfaces.Store
	HistoryService = interfaces.HistoryService
	SavedService   = interfaces.SavedService
	RemoteClient   = interfaces.RemoteClient
)

// ParseMeasurementID parses a saved measurement identifier.
func ParseMeasurementID(s string) (MeasurementID, error) { return types.ParseMeasurementID(s) }

// NewLayoutResult formats a layout plan for display.
func NewLayoutResult(plan layout.Plan, opts imperial.DisplayOptions) LayoutResult {
	return types.NewLayoutResult(plan, opts)
}
