package cli

import (
	"bufio"
	"fmt"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/studio/internal/adapters/httpadmin"
	"github.com/example/studio/internal/logger"
	"github.com/example/studio/internal/wire"
)

// AdminCmd returns the admin console command group.
func AdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Studio admin console",
	}
	cmd.AddCommand(adminStatusCmd())
	cmd.AddCommand(adminLeadsCmd())
	cmd.AddCommand(adminDispatchCmd())
	cmd.AddCommand(adminAuditCmd())
	cmd.AddCommand(adminExportCmd())
	cmd.AddCommand(adminPurgeCmd())
	cmd.AddCommand(adminCheckCmd())
	cmd.AddCommand(adminServeCmd())
	return cmd
}

func adminStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show store statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			stats, err := c.Maintenance.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read store stats: %w", err)
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "Leads:\t%d\n", stats.Leads)
			fmt.Fprintf(w, "Notifications:\t%d\n", stats.Notifications)
			fmt.Fprintf(w, "System logs:\t%d\n", stats.SystemLogs)
			fmt.Fprintf(w, "Store size:\t%d bytes\n", stats.StoreBytes)
			lastBackup := stats.LastBackup
			if lastBackup == "" {
				lastBackup = "never"
			}
			fmt.Fprintf(w, "Last backup:\t%s\n", lastBackup)
			return w.Flush()
		},
	}
}

func adminLeadsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leads",
		Short: "List captured leads, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			leads, err := c.Leads.ListLeads(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list leads: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(leads) == 0 {
				fmt.Fprintln(out, "No leads captured yet.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tNAME\tEMAIL\tSERVICES\tCREATED")
			for _, l := range leads {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					l.ID, l.Type, l.ContactName, l.Email,
					strings.Join(l.Services, ","), l.CreatedAt)
			}
			return w.Flush()
		},
	}
}

func adminDispatchCmd() *cobra.Command {
	showBody := false
	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "List the dispatch audit trail, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			notifs, err := c.Maintenance.ListNotifications(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(notifs) == 0 {
				fmt.Fprintln(out, "No dispatches recorded yet.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tRECIPIENT\tSUBJECT\tSTATUS\tTIMESTAMP")
			for _, n := range notifs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					n.ID, n.Recipient, n.Subject, n.Status, n.Timestamp)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			if showBody {
				for _, n := range notifs {
					fmt.Fprintf(out, "\n--- dispatch #%d ---\n%s\n", n.ID, n.Body)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBody, "body", false, "Print full report bodies")
	return cmd
}

func adminAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "List system log entries, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			entries, err := c.Maintenance.ListSystemLogs(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list system logs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "No system events recorded yet.")
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEVENT\tDETAILS\tTIMESTAMP")
			for _, e := range entries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Event, e.Details, e.Timestamp)
			}
			return w.Flush()
		},
	}
}

func adminExportCmd() *cobra.Command {
	dir := ""
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a dated backup of the studio store",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			target := dir
			if target == "" {
				target, err = os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to resolve working directory: %w", err)
				}
			}
			res, err := c.Maintenance.Export(cmd.Context(), target)
			if err != nil {
				showToast(cmd.OutOrStdout(), "Export failed.", "error")
				return err
			}
			showToast(cmd.OutOrStdout(),
				fmt.Sprintf("Exported %d bytes to %s", res.Bytes, res.Path), "success")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write the backup into (defaults to the current directory)")
	return cmd
}

func adminPurgeCmd() *cobra.Command {
	yes := false
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Erase all persisted studio data",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprintln(out, "This will erase all leads, dispatches, and logs, and flush the persistence mirror.")
				fmt.Fprint(out, "Continue? [y/N]: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() {
					return fmt.Errorf("input closed")
				}
				answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
				if answer != "y" && answer != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			if err := c.Maintenance.Purge(cmd.Context()); err != nil {
				showToast(out, "Purge failed.", "error")
				return err
			}
			showToast(out, "All studio data cleared.", "success")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}

func adminCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run the store integrity check",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			if err := c.Maintenance.IntegrityCheck(cmd.Context()); err != nil {
				return fmt.Errorf("failed to run integrity check: %w", err)
			}
			showToast(cmd.OutOrStdout(), "Database integrity check: 100% Valid.", "success")
			return nil
		},
	}
}

func adminServeCmd() *cobra.Command {
	addr := ""
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the read-only admin API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := wire.Get()
			if err != nil {
				return fmt.Errorf("failed to open the studio store: %w", err)
			}
			listen := addr
			if listen == "" {
				listen = c.Config.AdminAddr
			}
			srv := httpadmin.New(c.Leads, c.Maintenance)
			logger.WithField("addr", listen).Info("admin API listening")
			fmt.Fprintf(cmd.OutOrStdout(), "Admin API listening on http://%s\n", listen)
			return http.ListenAndServe(listen, srv.Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to the configured admin address)")
	return cmd
}
