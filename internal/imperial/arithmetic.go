package imperial

import (
	"fmt"
	"strings"
)

// Operation is a binary arithmetic operation on lengths.
type Operation int

const (
	Add Operation = iota + 1
	Subtract
	Multiply
	Divide
)

var operationNames = map[Operation]string{
	Add:      "add",
	Subtract: "subtract",
	Multiply: "multiply",
	Divide:   "divide",
}

var operationSymbols = map[Operation]string{
	Add:      "+",
	Subtract: "-",
	Multiply: "×",
	Divide:   "÷",
}

func (op Operation) String() string {
	if s, ok := operationNames[op]; ok {
		return s
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Symbol returns the calculator key for op.
func (op Operation) Symbol() string { return operationSymbols[op] }

// ParseOperation accepts an operation name or symbol: add, +, subtract, -,
// multiply, *, x, ×, divide, /, ÷.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+", "plus":
		return Add, nil
	case "subtract", "sub", "-", "−", "minus":
		return Subtract, nil
	case "multiply", "mul", "*", "x", "×", "times":
		return Multiply, nil
	case "divide", "div", "/", "÷":
		return Divide, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, s)
}

// PerformOperation applies op to left and right in decimal inches and snaps
// the result back onto the tape at precision.
//
// Dividing by a right operand worth exactly zero returns ErrDivideByZero.
func PerformOperation(left, right Measurement, op Operation, precision Precision, reduce bool) (Measurement, error) {
	l, r := ToDecimalInches(left), ToDecimalInches(right)

	var result float64
	switch op {
	case Add:
		result = l + r
	case Subtract:
		result = l - r
	case Multiply:
		result = l * r
	case Divide:
		if r == 0 {
			return Measurement{}, ErrDivideByZero
		}
		result = l / r
	default:
		return Measurement{}, fmt.Errorf("%w: %d", ErrUnknownOperation, int(op))
	}

	if !InRange(result) {
		return Measurement{}, ErrNotFinite
	}
	return ToImperialMeasurement(result, precision, reduce), nil
}

// Evaluate computes an expression such as 5' 3 1/2" + 2 1/4" x 2 strictly
// left to right, the way a calculator chains operations. Operators must be
// separated from operands by spaces; + * × and ÷ may also be written without
// them. A single operand is just snapped to precision.
func Evaluate(expr string, precision Precision, reduce bool) (Measurement, error) {
	operands, ops, err := tokenize(expr)
	if err != nil {
		return Measurement{}, err
	}

	acc, ok := ParseInputPrecision(operands[0], precision)
	if !ok {
		return Measurement{}, fmt.Errorf("%w: %q", ErrInvalidInput, operands[0])
	}
	if len(ops) == 0 {
		return acc.Round(precision, reduce), nil
	}

	for i, op := range ops {
		right, ok := ParseInputPrecision(operands[i+1], precision)
		if !ok {
			return Measurement{}, fmt.Errorf("%w: %q", ErrInvalidInput, operands[i+1])
		}
		if acc, err = PerformOperation(acc, right, op, precision, reduce); err != nil {
			return Measurement{}, err
		}
	}
	return acc, nil
}

var spacedOperators = strings.NewReplacer("+", " + ", "*", " * ", "×", " × ", "÷", " ÷ ")

// tokenize splits expr into len(ops)+1 operand strings and the operators
// between them. A "-" with no operand before it is a sign.
func tokenize(expr string) ([]string, []Operation, error) {
	fields := strings.Fields(spacedOperators.Replace(Clean(expr)))
	if len(fields) == 0 {
		return nil, nil, fmt.Errorf("%w: empty expression", ErrInvalidInput)
	}

	var (
		operands []string
		ops      []Operation
		current  []string
	)
	for _, f := range fields {
		if op, err := ParseOperation(f); err == nil && isOperatorToken(f) && len(current) > 0 {
			operands = append(operands, strings.Join(current, " "))
			ops = append(ops, op)
			current = current[:0]
			continue
		}
		current = append(current, f)
	}
	if len(current) == 0 {
		return nil, nil, fmt.Errorf("%w: expression ends with an operator", ErrInvalidInput)
	}
	operands = append(operands, strings.Join(current, " "))
	return operands, ops, nil
}

func isOperatorToken(f string) bool {
	switch f {
	case "+", "-", "*", "x", "X", "×", "/", "÷":
		return true
	}
	return false
}
