package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/resource"
)

var (
	vrfDescription string
	vrfAdminState  string
)

var vrfCmd = &cobra.Command{
	Use:   "vrf",
	Short: "Manage VRFs and VRF membership",
	Long: `Manage VRF contexts and interface VRF membership.

The default and management VRFs cannot be modified.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 vrf show ntc
  nexctl -d n9k-leaf-01 vrf set ntc --description "tenant network" -x
  nexctl -d n9k-leaf-01 vrf delete ntc -x
  nexctl -d n9k-leaf-01 vrf member Ethernet1/1 ntc -x
  nexctl -d n9k-leaf-01 vrf unmember Ethernet1/1 -x`,
}

var vrfShowCmd = &cobra.Command{
	Use:   "show <vrf>",
	Short: "Show one VRF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.VRF(), args[0])
	},
}

var vrfSetCmd = &cobra.Command{
	Use:   "set <vrf>",
	Short: "Create or update a VRF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{
			"description": vrfDescription,
			"admin_state": vrfAdminState,
		}
		return reconcileAndReport(ctx, c, resource.VRF(), args[0], desired, reconcileOpts())
	},
}

var vrfDeleteCmd = &cobra.Command{
	Use:   "delete <vrf>",
	Short: "Remove a VRF",
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
		return reconcileAndReport(ctx, c, resource.VRF(), args[0], nil, opts)
	},
}

var vrfMemberCmd = &cobra.Command{
	Use:   "member <interface> <vrf>",
	Short: "Assign an interface to a VRF",
	Long: `Assign an interface to a VRF.

Moving an interface between VRFs removes its IP configuration on the
device; re-apply addressing afterwards.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{"vrf": args[1]}
		return reconcileAndReport(ctx, c, resource.VRFInterface(), args[0], desired, reconcileOpts())
	},
}

var vrfUnmemberCmd = &cobra.Command{
	Use:   "unmember <interface>",
	Short: "Return an interface to the default VRF",
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
		return reconcileAndReport(ctx, c, resource.VRFInterface(), args[0], nil, opts)
	},
}

func init() {
	vrfSetCmd.Flags().StringVar(&vrfDescription, "description", "", "VRF description")
	vrfSetCmd.Flags().StringVar(&vrfAdminState, "admin", "", "Admin state: up or down")

	vrfCmd.AddCommand(vrfShowCmd, vrfSetCmd, vrfDeleteCmd, vrfMemberCmd, vrfUnmemberCmd)
}
