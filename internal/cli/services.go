package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/studio/internal/catalog"
)

// ServicesCmd returns the service catalog listing command.
func ServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the grounds-maintenance service catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSERVICE\tDESCRIPTION")
			for _, svc := range catalog.Services {
				fmt.Fprintf(w, "%s\t%s\t%s\n", svc.ID, svc.Title, svc.Description)
			}
			return w.Flush()
		},
	}
}
