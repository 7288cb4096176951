package types

import (
	"tapecalc/internal/imperial"
	"tapecalc/internal/layout"
)

// Calculation is the answer to an expression, rendered every way a caller
// might want to show it.
type Calculation struct {
	Expression string               `json:"expression"`
	Result     string               `json:"result"`
	Sixteenths string               `json:"sixteenths"`
	Decimal    string               `json:"decimal"`
	Value      imperial.Measurement `json:"value"`
}

// CalculateRequest asks for an expression to be evaluated. Precision is 8,
// 16 or 32 (default 16). Reduce defaults to true when omitted.
type CalculateRequest struct {
	Expression string `json:"expression"`
	Precision  int    `json:"precision,omitempty"`
	Reduce     *bool  `json:"reduce,omitempty"`
	Feet       bool   `json:"feet,omitempty"`
	Record     bool   `json:"record,omitempty"`
}

// LayoutResult is a layout plan with every mark already formatted.
type LayoutResult struct {
	Mode    string   `json:"mode"`
	Marks   []string `json:"marks"`
	Spacing string   `json:"spacing,omitempty"`
}

// NewLayoutResult formats every mark of plan with opts. An empty plan keeps
// an empty, non-nil mark list and no spacing.
func NewLayoutResult(plan layout.Plan, opts imperial.DisplayOptions) LayoutResult {
	out := LayoutResult{Mode: string(plan.Mode), Marks: make([]string, 0, len(plan.Marks))}
	for _, m := range plan.Marks {
		out.Marks = append(out.Marks, imperial.FormatImperialMeasurement(m, opts))
	}
	if !plan.Empty() {
		out.Spacing = imperial.FormatImperialMeasurement(plan.Spacing, opts)
	}
	return out
}
