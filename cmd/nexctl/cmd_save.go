package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/resource"
)

var saveCmd = &cobra.Command{
	Use:   "save [destination]",
	Short: "Save the running configuration",
	Long: `Copy the running configuration to startup-config or to another
destination (e.g. bootflash:backup.cfg). Saving always executes; -x is
implied.

Examples:
  nexctl -d n9k-leaf-01 save
  nexctl -d n9k-leaf-01 save bootflash:backup.cfg`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		path := "startup-config"
		if len(args) > 0 {
			path = args[0]
		}
		if err := resource.SaveConfig(ctx, c, path); err != nil {
			return err
		}
		fmt.Printf("%s saved to %s\n", cli.Green("OK:"), path)
		return nil
	},
}
