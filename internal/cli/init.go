package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/studio/internal/config"
)

// InitCmd returns the command that writes a default config file.
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the studio data directory and default config",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.DefaultDataDir()
			if err != nil {
				return err
			}

			path := filepath.Join(dir, "config.json")
			if _, err := os.Stat(path); err == nil {
				showToast(cmd.OutOrStdout(), fmt.Sprintf("Config already exists at %s", path), "warning")
				return nil
			}

			cfg, err := config.Load(dir)
			if err != nil {
				return err
			}
			if err := config.Save(dir, cfg); err != nil {
				return err
			}

			showToast(cmd.OutOrStdout(), fmt.Sprintf("Initialized studio config at %s", path), "success")
			return nil
		},
	}
}
