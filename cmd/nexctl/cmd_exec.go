package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/resource"
)

var (
	execText   bool
	execConfig bool
)

var execCmd = &cobra.Command{
	Use:   "exec <command> [command...]",
	Short: "Run raw device commands",
	Long: `Run raw show or configuration commands, bypassing resource
reconciliation.

Show commands take one command per invocation and print the device's
structured JSON body, or the plain-text rendering with --text. With
--config, all arguments are sent as one configuration batch; like other
write commands this previews by default and executes with -x.

Examples:
  nexctl -d n9k-leaf-01 exec "show clock"
  nexctl -d n9k-leaf-01 exec --text "show run | inc hostname"
  nexctl -d n9k-leaf-01 exec --config "interface loopback13" "ip address 10.13.0.1/32" -x`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		if execConfig {
			res, err := resource.ExecConfig(ctx, c, args, reconcileOpts())
			if err != nil {
				return err
			}
			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(res)
			}
			fmt.Printf("%s: %s\n", cli.Bold("config batch"), cli.Status(res.Changed, res.WouldChange))
			printCommands(res.Commands)
			if res.WouldChange {
				printDryRunNotice()
			}
			return saveIfRequested(ctx, c, res.Changed)
		}

		if len(args) != 1 {
			return fmt.Errorf("one show command per invocation; use --config for batches")
		}
		res, err := resource.ExecShow(ctx, c, args[0], execText)
		if err != nil {
			return err
		}
		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(res)
		}
		fmt.Println(res.Output)
		return nil
	},
}

func init() {
	execCmd.Flags().BoolVar(&execText, "text", false, "Plain-text show output")
	execCmd.Flags().BoolVar(&execConfig, "config", false, "Send arguments as one configuration batch")
}
