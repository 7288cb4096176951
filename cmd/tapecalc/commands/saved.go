package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tapecalc/internal/domain"
)

func savedCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved measurements",
	}
	cmd.AddCommand(savedAddCmd(st), savedListCmd(st), savedRemoveCmd(st))
	return cmd
}

// saved add <label> <value...>
func savedAddCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "add <label> <measurement...>",
		Short: "Save a measurement under a label",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := st.api()
			if err != nil {
				return err
			}
			m, err := api.AddSaved(cmd.Context(), domain.NewSavedMeasurement{
				Label: args[0],
				Value: strings.Join(args[1:], " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %d: %s = %s\n", m.ID, m.Label, m.Value)
			return nil
		},
	}
}

func savedListCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved measurements, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := st.api()
			if err != nil {
				return err
			}
			items, err := api.ListSaved(cmd.Context())
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved measurements")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range items {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", m.ID, m.Label, m.Value)
			}
			return tw.Flush()
		},
	}
}

func savedRemoveCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Remove a saved measurement",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := domain.ParseMeasurementID(args[0])
			if err != nil {
				return err
			}
			api, err := st.api()
			if err != nil {
				return err
			}
			if err := api.DeleteSaved(cmd.Context(), id); err != nil {
				return fmt.Errorf("remove %s: %w", id, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
			return nil
		},
	}
}
