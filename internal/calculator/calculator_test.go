package calculator_test

import (
	"errors"
	"testing"

	"tapecalc/internal/calculator"
	"tapecalc/internal/imperial"
)

func fresh() calculator.Calculator {
	return calculator.New(imperial.Sixteenth, imperial.DisplayOptions{})
}

func TestNew(t *testing.T) {
	c := fresh()
	if c.State() != calculator.Idle || c.Display() != `0"` {
		t.Fatalf("got %v %q", c.State(), c.Display())
	}
}

func TestInputAndBackspace(t *testing.T) {
	c := fresh().Input("5").Input(" ").Input("1/2").Input(`"`)
	if c.Display() != `5 1/2"` || c.State() != calculator.OperandEntered {
		t.Fatalf("got %q %v", c.Display(), c.State())
	}
	c = c.Backspace().Backspace()
	if c.Display() != `5 1/` {
		t.Fatalf("after backspace: %q", c.Display())
	}
	for i := 0; i < 4; i++ {
		c = c.Backspace()
	}
	if c.State() != calculator.Idle || c.Display() != `0"` {
		t.Fatalf("emptied: %v %q", c.State(), c.Display())
	}
}

func TestValueSemantics(t *testing.T) {
	a := fresh().Input("5")
	b := a.Input("0")
	if a.Display() != "5" || b.Display() != "50" {
		t.Fatalf("a=%q b=%q", a.Display(), b.Display())
	}
}

func TestAddition(t *testing.T) {
	c := fresh().Input(`5 1/2"`).SetOperator(imperial.Add)
	if c.State() != calculator.OperatorPending || c.Pending() != `5 1/2" +` {
		t.Fatalf("pending: %v %q", c.State(), c.Pending())
	}
	c = c.Input(`2 1/4"`).Equals()
	if c.Display() != `7 3/4"` || c.State() != calculator.ResultShown {
		t.Fatalf("got %q %v", c.Display(), c.State())
	}
	if c.LastExpression() != `5 1/2" + 2 1/4" = 7 3/4"` {
		t.Fatalf("last = %q", c.LastExpression())
	}
}

func TestChainingRunsLeftToRight(t *testing.T) {
	c := fresh().
		Input("10").SetOperator(imperial.Subtract).
		Input(`2 1/2"`).SetOperator(imperial.Multiply)
	if c.Display() != `7 1/2"` {
		t.Fatalf("intermediate = %q", c.Display())
	}
	c = c.Input("2").Equals()
	if c.Display() != `15"` {
		t.Fatalf("got %q", c.Display())
	}
}

func TestOperatorReplacesPending(t *testing.T) {
	c := fresh().Input("8").SetOperator(imperial.Add).SetOperator(imperial.Divide).Input("2").Equals()
	if c.Display() != `4"` {
		t.Fatalf("got %q", c.Display())
	}
}

func TestEqualsWithoutOperand(t *testing.T) {
	c := fresh().Input(`5"`).SetOperator(imperial.Add).Equals()
	if c.Display() != `10"` {
		t.Fatalf("got %q", c.Display())
	}
}

func TestEqualsRoundsSingleValue(t *testing.T) {
	c := fresh().Input("5.03").Equals()
	if c.Display() != `5"` {
		t.Fatalf("got %q", c.Display())
	}
	c = fresh().SetPrecision(imperial.ThirtySecond).Input("5.03").Equals()
	if c.Display() != `5 1/32"` {
		t.Fatalf("1/32: got %q", c.Display())
	}
}

func TestResultThenTypingStartsNewOperand(t *testing.T) {
	c := fresh().Input("2").SetOperator(imperial.Add).Input("3").Equals().Input("7")
	if c.Display() != "7" || c.State() != calculator.OperandEntered {
		t.Fatalf("got %q %v", c.Display(), c.State())
	}
}

func TestResultChains(t *testing.T) {
	c := fresh().Input("2").SetOperator(imperial.Add).Input("3").Equals().
		SetOperator(imperial.Multiply).Input("2").Equals()
	if c.Display() != `10"` {
		t.Fatalf("got %q", c.Display())
	}
}

func TestDivideByZero(t *testing.T) {
	c := fresh().Input("5").SetOperator(imperial.Divide).Input("0").Equals()
	if c.State() != calculator.Error || c.Display() != calculator.ErrorDisplay {
		t.Fatalf("got %v %q", c.State(), c.Display())
	}
	if !errors.Is(c.Err(), imperial.ErrDivideByZero) {
		t.Fatalf("err = %v", c.Err())
	}
	// Operators do nothing until a new operand is typed.
	if c.SetOperator(imperial.Add).State() != calculator.Error {
		t.Fatal("operator should not leave the error state")
	}
	c = c.Input("3")
	if c.State() != calculator.OperandEntered || c.Err() != nil {
		t.Fatalf("recover: %v %v", c.State(), c.Err())
	}
	if got := fresh().Input("5").SetOperator(imperial.Divide).Input("0").Clear(); got.State() != calculator.Idle || got.Display() != `0"` {
		t.Fatalf("clear: %v %q", got.State(), got.Display())
	}
}

func TestInvalidInputIgnored(t *testing.T) {
	c := fresh().Input("abc")
	if got := c.SetOperator(imperial.Add); got.State() != calculator.OperandEntered || got.Display() != "abc" {
		t.Fatalf("SetOperator on bad input: %v %q", got.State(), got.Display())
	}
	if got := c.Equals(); got.Display() != "abc" {
		t.Fatalf("Equals on bad input: %q", got.Display())
	}
	if got := fresh().SetOperator(imperial.Operation(42)); got.State() != calculator.Idle {
		t.Fatal("unknown operator accepted")
	}
}

func TestToggleDisplayFormat(t *testing.T) {
	c := fresh().Input(`5 1/2"`).Equals().ToggleDisplayFormat()
	if c.Display() != `5 8/16"` {
		t.Fatalf("sixteenths: %q", c.Display())
	}
	c = c.ToggleDisplayFormat()
	if c.Display() != `5 1/2"` {
		t.Fatalf("reduced: %q", c.Display())
	}
	c = c.Clear()
	if c.Options().Format != imperial.Reduced {
		t.Fatal("clear changed the display format")
	}
	if got := c.SetPrecision(imperial.Eighth).Clear().Precision(); got != imperial.Eighth {
		t.Fatalf("clear changed precision: %v", got)
	}
}

func TestSetFeet(t *testing.T) {
	c := fresh().Input(`63 1/2"`).Equals().SetFeet(true)
	if c.Display() != `5' 3 1/2"` {
		t.Fatalf("got %q", c.Display())
	}
}

func TestSetPrecisionIgnoresInvalid(t *testing.T) {
	if got := fresh().SetPrecision(7).Precision(); got != imperial.Sixteenth {
		t.Fatalf("got %v", got)
	}
}
