package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tapecalc/internal/domain"
	"tapecalc/internal/imperial"
)

// calc <expr...>: evaluate left to right and record the result.
func calcCmd(st *state) *cobra.Command {
	var decimal, noRecord bool
	cmd := &cobra.Command{
		Use:   "calc <expression...>",
		Short: "Evaluate an expression such as 5' 3 1/2\" + 2 1/4\"",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := st.api()
			if err != nil {
				return err
			}
			calc, err := api.Calculate(cmd.Context(), domain.CalculateRequest{
				Expression: strings.Join(args, " "),
				Precision:  int(st.precisionValue()),
				Feet:       st.cfg.Feet,
				Record:     !noRecord,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, st.pick(calc))
			if decimal {
				fmt.Fprintln(out, calc.Decimal)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&decimal, "decimal", false, "also print the result in decimal inches")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "do not add the calculation to history")
	return cmd
}

// convert <value...>: show one measurement every way it can be displayed.
func convertCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <measurement...>",
		Short: "Show a measurement reduced, in sixteenths, in feet and in decimal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := strings.Join(args, " ")
			m, ok := imperial.ParseInputPrecision(in, st.precisionValue())
			if !ok {
				return fmt.Errorf("%w: %q", imperial.ErrInvalidInput, in)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "reduced:    %s\n", imperial.FormatImperialMeasurement(m, imperial.DisplayOptions{}))
			fmt.Fprintf(out, "sixteenths: %s\n", imperial.FormatImperialMeasurement(m, imperial.DisplayOptions{Format: imperial.Sixteenths}))
			fmt.Fprintf(out, "feet:       %s\n", imperial.FormatImperialMeasurement(m, imperial.DisplayOptions{Feet: true}))
			fmt.Fprintf(out, "decimal:    %s\n", imperial.FormatAsDecimal(m))
			return nil
		},
	}
}

// round <decimal>: snap decimal inches to the nearest tape mark.
func roundCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "round <decimal-inches>",
		Short: "Round decimal inches to the nearest tape mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(args[0]), `"`), 64)
			if err != nil {
				return fmt.Errorf("%w: %q", imperial.ErrInvalidInput, args[0])
			}
			p := st.precisionValue()
			m := imperial.ToImperialMeasurement(x, p, st.displayOptions().Format == imperial.Reduced)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s at %s)\n",
				imperial.FormatImperialMeasurement(m, st.displayOptions()),
				imperial.FormatAsDecimal(m), p)
			return nil
		},
	}
}
