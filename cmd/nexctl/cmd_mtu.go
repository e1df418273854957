package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/resource"
)

var mtuCmd = &cobra.Command{
	Use:   "mtu",
	Short: "Manage interface and system jumbo MTU",
	Long: `Manage per-interface MTU and the system jumbo MTU.

MTU values must be even and between 576 and 9216.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 mtu show Ethernet1/1
  nexctl -d n9k-leaf-01 mtu set Ethernet1/1 9216 -x
  nexctl -d n9k-leaf-01 mtu delete Ethernet1/1 -x
  nexctl -d n9k-leaf-01 mtu system 9216 -x`,
}

var mtuShowCmd = &cobra.Command{
	Use:   "show <interface>",
	Short: "Show interface MTU",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.MTU(), args[0])
	},
}

var mtuSetCmd = &cobra.Command{
	Use:   "set <interface> <mtu>",
	Short: "Set interface MTU",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{"mtu": args[1]}
		return reconcileAndReport(ctx, c, resource.MTU(), args[0], desired, reconcileOpts())
	},
}

var mtuDeleteCmd = &cobra.Command{
	Use:   "delete <interface>",
	Short: "Restore interface MTU to default",
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
		return reconcileAndReport(ctx, c, resource.MTU(), args[0], nil, opts)
	},
}

var mtuSystemDelete bool

var mtuSystemCmd = &cobra.Command{
	Use:   "system [mtu]",
	Short: "Set or clear the system jumbo MTU",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		if len(args) == 0 && !mtuSystemDelete {
			return showResource(ctx, resource.SystemJumboMTU(), "")
		}

		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		opts := reconcileOpts()
		if mtuSystemDelete {
			opts.Absent = true
			return reconcileAndReport(ctx, c, resource.SystemJumboMTU(), "", nil, opts)
		}
		desired := map[string]string{"sysmtu": args[0]}
		return reconcileAndReport(ctx, c, resource.SystemJumboMTU(), "", desired, opts)
	},
}

func init() {
	mtuSystemCmd.Flags().BoolVar(&mtuSystemDelete, "delete", false, "Restore the default system jumbo MTU")

	mtuCmd.AddCommand(mtuShowCmd, mtuSetCmd, mtuDeleteCmd, mtuSystemCmd)
}
