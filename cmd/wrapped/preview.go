package main

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"
)

var previewFlags workflowFlags

var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Generate the report of the first customer",
	Long: `Generate the report of the first customer in FILE and print it as JSON.

Column roles come from the header names; override them with --map, e.g.
  wrapped preview visits.csv --business-name "Bean There" --map "Full Name=name"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd.Context(), func(ctx context.Context, svc *services) error {
			sess, err := ingest(ctx, svc, args[0])
			if err != nil {
				return err
			}
			if sess, err = configure(svc, sess, &previewFlags); err != nil {
				return err
			}
			if sess, err = preview(ctx, svc, sess); err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sess.Sample())
		})
	},
}

func init() {
	previewFlags.bind(previewCmd)
}
