package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"tapecalc/internal/layout"
)

func divideCmd(st *state) *cobra.Command {
	req := layout.Request{Mode: layout.ModeDivide}
	cmd := &cobra.Command{
		Use:   "divide",
		Short: "Split a length into equal parts",
		Example: `  tapecalc divide --total 96 --divisions 4
  tapecalc divide --total "5' 3\"" --offset 4 --divisions 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, st, req)
		},
	}
	cmd.Flags().StringVar(&req.Total, "total", "", "length to divide")
	cmd.Flags().StringVar(&req.Offset, "offset", "", "where the first part starts (default 0)")
	cmd.Flags().StringVar(&req.Divisions, "divisions", "", "number of equal parts")
	_ = cmd.MarkFlagRequired("total")
	_ = cmd.MarkFlagRequired("divisions")
	return cmd
}

func intervalCmd(st *state) *cobra.Command {
	req := layout.Request{Mode: layout.ModeCustom}
	cmd := &cobra.Command{
		Use:     "interval",
		Short:   "Place marks every interval from a start point",
		Example: `  tapecalc interval --every 16 --to 96`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, st, req)
		},
	}
	cmd.Flags().StringVar(&req.Interval, "every", "", "distance between marks")
	cmd.Flags().StringVar(&req.Start, "start", "", "first reference point (default 0)")
	cmd.Flags().StringVar(&req.Total, "to", "", "last allowed mark (default 300\")")
	_ = cmd.MarkFlagRequired("every")
	return cmd
}

func spacingCmd(st *state) *cobra.Command {
	req := layout.Request{Mode: layout.ModeSpacing}
	cmd := &cobra.Command{
		Use:     "spacing",
		Short:   "Space marks evenly between two points, close to a desired gap",
		Example: `  tapecalc spacing --first 1 --last 95 --desired 8`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, st, req)
		},
	}
	cmd.Flags().StringVar(&req.First, "first", "", "first mark")
	cmd.Flags().StringVar(&req.Last, "last", "", "last mark")
	cmd.Flags().StringVar(&req.Desired, "desired", "", "gap to aim for")
	for _, name := range []string{"first", "last", "desired"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func runLayout(cmd *cobra.Command, st *state, req layout.Request) error {
	api, err := st.api()
	if err != nil {
		return err
	}
	res, err := api.Layout(cmd.Context(), req, int(st.precisionValue()))
	if err != nil {
		return err
	}
	if len(res.Marks) == 0 {
		return errNoMarks
	}
	out := cmd.OutOrStdout()
	for i, m := range res.Marks {
		fmt.Fprintf(out, "%3d  %s\n", i+1, m)
	}
	fmt.Fprintf(out, "spacing: %s\n", res.Spacing)
	return nil
}
