// Package calculator is the keypad calculator: typed input, a pending
// operation and a displayed result, driven one key press at a time.
//
// Calculator is a value. Every method returns the next calculator and leaves
// the receiver untouched, so callers keep or discard states freely.
package calculator

import (
	"strings"
	"unicode/utf8"

	"tapecalc/internal/imperial"
)

// State is the calculator's position in the key-press cycle.
type State int

const (
	// Idle: nothing typed since start or Clear.
	Idle State = iota
	// OperandEntered: an operand is being typed.
	OperandEntered
	// OperatorPending: a left operand and an operation are held, waiting for
	// the right operand.
	OperatorPending
	// ResultShown: the display holds a computed value. Typing starts a new
	// operand.
	ResultShown
	// Error: the last computation failed. Typing or Clear recovers.
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case OperandEntered:
		return "operand"
	case OperatorPending:
		return "operator"
	case ResultShown:
		return "result"
	case Error:
		return "error"
	}
	return "unknown"
}

// ErrorDisplay is shown after a failed computation.
const ErrorDisplay = "Error"

// Calculator holds one keypad session.
type Calculator struct {
	state State
	input string

	value   imperial.Measurement // shown when input is empty
	display string

	left imperial.Measurement
	op   imperial.Operation

	precision imperial.Precision
	opts      imperial.DisplayOptions

	last string
	err  error
}

// New returns an idle calculator showing 0".
func New(precision imperial.Precision, opts imperial.DisplayOptions) Calculator {
	c := Calculator{
		precision: precision.OrDefault(),
		opts:      opts,
		value:     imperial.Zero(),
	}
	c.display = c.format(c.value)
	return c
}

// Input appends typed keys to the operand. After a result, an operator or an
// error the keys start a new operand instead.
func (c Calculator) Input(keys string) Calculator {
	if keys == "" {
		return c
	}
	switch c.state {
	case OperatorPending, ResultShown, Error:
		c.input = keys
	default:
		c.input += keys
	}
	if c.state == Error {
		c.err = nil
		c.display = c.format(c.value)
	}
	c.state = OperandEntered
	return c
}

// Backspace removes the last typed character.
func (c Calculator) Backspace() Calculator {
	if c.state != OperandEntered || c.input == "" {
		return c
	}
	_, size := utf8.DecodeLastRuneInString(c.input)
	c.input = c.input[:len(c.input)-size]
	if c.input == "" {
		if c.op != 0 {
			c.state = OperatorPending
		} else {
			c.state = Idle
		}
	}
	return c
}

// Clear resets to 0" and keeps the precision and display options.
func (c Calculator) Clear() Calculator {
	return New(c.precision, c.opts)
}

// SetOperator stores op. With an operation already pending and a right
// operand typed, the pending operation is evaluated first so that chains run
// left to right. Pressing a second operator before typing replaces the first.
// Unparsable input leaves the calculator unchanged.
func (c Calculator) SetOperator(op imperial.Operation) Calculator {
	if op < imperial.Add || op > imperial.Divide {
		return c
	}
	if c.state == OperatorPending {
		c.op = op
		return c
	}

	operand, ok := c.operand()
	if !ok {
		return c
	}

	if c.op != 0 {
		result, err := imperial.PerformOperation(c.left, operand, c.op, c.precision, true)
		if err != nil {
			return c.fail(err)
		}
		c.last = c.expression(c.left, c.op, operand, result)
		operand = result
	}

	c.left = operand
	c.op = op
	c.input = ""
	c.show(operand)
	c.state = OperatorPending
	return c
}

// Equals completes the pending operation. Without one, the typed operand is
// snapped to the current precision. With no right operand typed the shown
// value is used, so 5" + = gives 10".
func (c Calculator) Equals() Calculator {
	if c.op == 0 {
		if c.input == "" {
			return c
		}
		parsed, ok := imperial.ParseInputPrecision(c.input, c.precision)
		if !ok {
			return c
		}
		rounded := parsed.Round(c.precision, true)
		c.last = c.expression(parsed, 0, imperial.Measurement{}, rounded)
		c.input = ""
		c.show(rounded)
		c.state = ResultShown
		return c
	}

	right, ok := c.operand()
	if !ok {
		return c
	}
	result, err := imperial.PerformOperation(c.left, right, c.op, c.precision, true)
	if err != nil {
		return c.fail(err)
	}
	c.last = c.expression(c.left, c.op, right, result)
	c.op = 0
	c.left = imperial.Measurement{}
	c.input = ""
	c.show(result)
	c.state = ResultShown
	return c
}

// SetPrecision changes the graduation used for later results. Unsupported
// precisions are ignored.
func (c Calculator) SetPrecision(p imperial.Precision) Calculator {
	if p.Valid() {
		c.precision = p
	}
	return c
}

// ToggleDisplayFormat switches between reduced and sixteenths and re-renders
// the shown value.
func (c Calculator) ToggleDisplayFormat() Calculator {
	if c.opts.Format == imperial.Reduced {
		c.opts.Format = imperial.Sixteenths
	} else {
		c.opts.Format = imperial.Reduced
	}
	if c.state != Error {
		c.display = c.format(c.value)
	}
	return c
}

// SetFeet turns the feet split of the display on or off.
func (c Calculator) SetFeet(on bool) Calculator {
	c.opts.Feet = on
	if c.state != Error {
		c.display = c.format(c.value)
	}
	return c
}

// Display is what the screen shows: the operand being typed, else the last
// value or Error.
func (c Calculator) Display() string {
	if c.input != "" {
		return c.input
	}
	return c.display
}

// Pending describes the held operation, e.g. `5 1/2" +`, or "" when none.
func (c Calculator) Pending() string {
	if c.op == 0 {
		return ""
	}
	return c.format(c.left) + " " + c.op.Symbol()
}

func (c Calculator) State() State { return c.state }
func (c Calculator) Precision() imperial.Precision { return c.precision }
func (c Calculator) Options() imperial.DisplayOptions { return c.opts }
func (c Calculator) Value() imperial.Measurement { return c.value }
func (c Calculator) Err() error { return c.err }

// LastExpression returns the most recent completed computation, e.g.
// `5 1/2" + 2 1/4" = 7 3/4"`, or "" if there was none.
func (c Calculator) LastExpression() string { return c.last }

// operand is the typed input, or the shown value when nothing is typed.
func (c Calculator) operand() (imperial.Measurement, bool) {
	if strings.TrimSpace(c.input) == "" {
		if c.state == Error {
			return imperial.Measurement{}, false
		}
		return c.value, true
	}
	return imperial.ParseInputPrecision(c.input, c.precision)
}

func (c *Calculator) show(m imperial.Measurement) {
	c.value = m
	c.display = c.format(m)
}

func (c Calculator) fail(err error) Calculator {
	c.state = Error
	c.err = err
	c.input = ""
	c.op = 0
	c.left = imperial.Measurement{}
	c.value = imperial.Zero()
	c.display = ErrorDisplay
	return c
}

func (c Calculator) format(m imperial.Measurement) string {
	return imperial.FormatImperialMeasurement(m, c.opts)
}

func (c Calculator) expression(left imperial.Measurement, op imperial.Operation, right, result imperial.Measurement) string {
	if op == 0 {
		return c.format(left) + " = " + c.format(result)
	}
	return c.format(left) + " " + op.Symbol() + " " + c.format(right) + " = " + c.format(result)
}
