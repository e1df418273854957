package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/resource"
	"github.com/nexctl/nexctl/pkg/util"
)

var (
	vlanName       string
	vlanState      string
	vlanAdminState string
)

var vlanCmd = &cobra.Command{
	Use:   "vlan",
	Short: "Manage VLANs",
	Long: `Manage VLANs.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 vlan list
  nexctl -d n9k-leaf-01 vlan show 100
  nexctl -d n9k-leaf-01 vlan set 100 --name web -x
  nexctl -d n9k-leaf-01 vlan delete 100 -x
  nexctl -d n9k-leaf-01 vlan range 100-110 -x`,
}

var vlanListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured VLAN ids",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		ids, err := resource.ListVLANs(ctx, c)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(ids)
		}
		if len(ids) == 0 {
			fmt.Println("No VLANs configured")
			return nil
		}
		fmt.Println(util.CompactRange(ids))
		return nil
	},
}

var vlanShowCmd = &cobra.Command{
	Use:   "show <vlan-id>",
	Short: "Show one VLAN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.VLAN(), args[0])
	},
}

var vlanSetCmd = &cobra.Command{
	Use:   "set <vlan-id>",
	Short: "Create or update a VLAN",
	Long: `Create or update a VLAN. Only the attributes given as flags are
reconciled; a VLAN that does not exist is created.

Examples:
  nexctl -d n9k-leaf-01 vlan set 100 --name web --state active -x`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{
			"name":        vlanName,
			"vlan_state":  vlanState,
			"admin_state": vlanAdminState,
		}
		return reconcileAndReport(ctx, c, resource.VLAN(), args[0], desired, reconcileOpts())
	},
}

var vlanDeleteCmd = &cobra.Command{
	Use:   "delete <vlan-id>",
	Short: "Remove a VLAN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		opts := reconcileOpts()
		opts.Absent = true
		return reconcileAndReport(ctx, c, resource.VLAN(), args[0], nil, opts)
	},
}

var vlanRangeDelete bool

var vlanRangeCmd = &cobra.Command{
	Use:   "range <range>",
	Short: "Ensure a VLAN range exists (or is removed with --delete)",
	Long: `Ensure every VLAN id in a range expression exists. With --delete,
remove every id in the range instead.

Range expressions accept commas and hyphens: "2-10,20,30-32".

Examples:
  nexctl -d n9k-leaf-01 vlan range 100-110 -x
  nexctl -d n9k-leaf-01 vlan range 100-110 --delete -x`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		opts := reconcileOpts()
		opts.Absent = vlanRangeDelete
		res, err := resource.ReconcileVLANRange(ctx, c, args[0], opts)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(res)
		}
		fmt.Printf("%s: %s\n", cli.Bold("vlan range "+args[0]), cli.Status(res.Changed, res.WouldChange))
		printCommands(res.Commands)
		if res.WouldChange {
			printDryRunNotice()
		}
		return saveIfRequested(ctx, c, res.Changed)
	},
}

func init() {
	vlanSetCmd.Flags().StringVar(&vlanName, "name", "", "VLAN name")
	vlanSetCmd.Flags().StringVar(&vlanState, "state", "", "VLAN state: active or suspend")
	vlanSetCmd.Flags().StringVar(&vlanAdminState, "admin", "", "Admin state: up or down")
	vlanRangeCmd.Flags().BoolVar(&vlanRangeDelete, "delete", false, "Remove the range instead of creating it")

	vlanCmd.AddCommand(vlanListCmd, vlanShowCmd, vlanSetCmd, vlanDeleteCmd, vlanRangeCmd)
}
