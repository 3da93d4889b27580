package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/studio/internal/cli"
	"github.com/example/studio/internal/version"
	"github.com/example/studio/internal/wire"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "studio",
		Short:   "The Garden Architect studio console",
		Version: version.String(),
		Long: `studio is the lead-capture console for The Garden Architect.
It records bookings, quotations, and contact inquiries in a local store,
dispatches studio alerts, and exposes an admin console over the same data.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.BookCmd())
	rootCmd.AddCommand(cli.ContactCmd())
	rootCmd.AddCommand(cli.ServicesCmd())
	rootCmd.AddCommand(cli.AdminCmd())

	err := rootCmd.Execute()
	wire.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
