package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns FILE",
	Short: "Show the detected columns and their roles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
			sess, err := ingest(ctx, svc, args[0])
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMN\tROLE\tSUBTYPE")
			for _, m := range sess.Mappings() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.OriginalName, m.MappedTo, m.SubType)
			}
			fmt.Fprintf(w, "\n%d rows\n", len(sess.Rows()))
			return w.Flush()
		})
	},
}
