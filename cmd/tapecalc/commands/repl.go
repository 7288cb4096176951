package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"tapecalc/internal/calculator"
	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
)

const replHelp = `Type a measurement, then an operator (+ - * /), then another measurement.
  =              finish the calculation
  c, clear       reset to 0"
  <, back        delete the last typed character
  fmt            toggle reduced / sixteenths
  feet [on|off]  split lengths into feet and inches
  p <8|16|32>    change the tape graduation
  q, quit        leave`

func replCmd(st *state) *cobra.Command {
	var record bool
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive keypad calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := &repl{
				st:     st,
				calc:   calculator.New(st.precisionValue(), st.displayOptions()),
				out:    cmd.OutOrStdout(),
				record: record,
			}
			return r.run(cmd, cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVar(&record, "record", true, "add each completed calculation to history")
	return cmd
}

type repl struct {
	st     *state
	calc   calculator.Calculator
	out    io.Writer
	record bool
}

func (r *repl) run(cmd *cobra.Command, in io.Reader) error {
	fmt.Fprintln(r.out, `tapecalc: type "help" for keys`)
	r.show()

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		fields := strings.Fields(line)
		var word string
		if len(fields) > 0 {
			word = strings.ToLower(fields[0])
		}

		switch {
		case line == "":
		case word == "q" || word == "quit" || word == "exit":
			return nil
		case word == "help" || word == "?":
			fmt.Fprintln(r.out, replHelp)
			continue
		case word == "c" || word == "clear":
			r.calc = r.calc.Clear()
		case word == "<" || word == "back":
			r.calc = r.calc.Backspace()
		case word == "=":
			before := r.calc.LastExpression()
			r.calc = r.calc.Equals()
			if err := r.recordIfNew(cmd, before); err != nil {
				fmt.Fprintf(r.out, "history: %v\n", err)
			}
		case word == "fmt":
			r.calc = r.calc.ToggleDisplayFormat()
		case word == "feet":
			on := !r.calc.Options().Feet
			if len(fields) > 1 {
				on = fields[1] == "on"
			}
			r.calc = r.calc.SetFeet(on)
		case (word == "p" || word == "precision") && len(fields) == 2:
			p, err := imperial.ParsePrecision(fields[1])
			if err != nil {
				fmt.Fprintln(r.out, err)
				continue
			}
			r.calc = r.calc.SetPrecision(p)
		case isOperator(line):
			op, _ := imperial.ParseOperation(line)
			r.calc = r.calc.SetOperator(op)
		default:
			r.calc = r.calc.Input(line)
		}
		r.show()
	}
	return sc.Err()
}

func (r *repl) show() {
	switch p := r.calc.Pending(); {
	case p == "":
		fmt.Fprintln(r.out, r.calc.Display())
	case r.calc.State() == calculator.OperatorPending:
		fmt.Fprintln(r.out, p)
	default:
		fmt.Fprintln(r.out, p, r.calc.Display())
	}
}

// recordIfNew adds the calculation that Equals just completed to history.
func (r *repl) recordIfNew(cmd *cobra.Command, before string) error {
	last := r.calc.LastExpression()
	if !r.record || r.calc.Err() != nil || last == "" || last == before {
		return nil
	}
	i := strings.LastIndex(last, " = ")
	if i < 0 {
		return nil
	}
	api, err := r.st.api()
	if err != nil {
		return err
	}
	_, err = api.AddHistory(cmd.Context(), domain.NewHistoryEntry{
		Expression: last[:i],
		Result:     last[i+3:],
	})
	return err
}

func isOperator(s string) bool {
	switch s {
	case "+", "-", "*", "x", "×", "/", "÷":
		return true
	}
	return false
}
