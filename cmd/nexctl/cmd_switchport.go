package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/resource"
)

var (
	swMode       string
	swAccessVLAN string
	swNativeVLAN string
	swTrunkVLANs string
)

var switchportCmd = &cobra.Command{
	Use:   "switchport",
	Short: "Manage layer 2 switchport settings",
	Long: `Manage layer 2 switchport settings on ethernet and port-channel
interfaces.

Trunk allowed VLANs are additive: VLANs in --trunk-vlans missing from the
interface are added, VLANs already allowed are left alone.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 switchport show Ethernet1/1
  nexctl -d n9k-leaf-01 switchport set Ethernet1/1 --mode access --access-vlan 100 -x
  nexctl -d n9k-leaf-01 switchport set Ethernet1/1 --mode trunk --trunk-vlans 10-20 -x
  nexctl -d n9k-leaf-01 switchport default Ethernet1/1 -x`,
}

var switchportShowCmd = &cobra.Command{
	Use:   "show <interface>",
	Short: "Show switchport settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.Switchport(), args[0])
	},
}

var switchportSetCmd = &cobra.Command{
	Use:   "set <interface>",
	Short: "Update switchport settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{
			"mode":        swMode,
			"access_vlan": swAccessVLAN,
			"native_vlan": swNativeVLAN,
			"trunk_vlans": swTrunkVLANs,
		}
		return reconcileAndReport(ctx, c, resource.Switchport(), args[0], desired, reconcileOpts())
	},
}

var switchportDefaultCmd = &cobra.Command{
	Use:   "default <interface>",
	Short: "Restore switchport defaults",
	Long: `Restore switchport settings to their defaults: access mode,
access and native VLAN 1, all VLANs allowed on trunk. An interface already
at defaults yields no commands.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		opts := reconcileOpts()
		opts.Absent = true
		return reconcileAndReport(ctx, c, resource.Switchport(), args[0], nil, opts)
	},
}

func init() {
	switchportSetCmd.Flags().StringVar(&swMode, "mode", "", "Port mode: access or trunk")
	switchportSetCmd.Flags().StringVar(&swAccessVLAN, "access-vlan", "", "Access VLAN id")
	switchportSetCmd.Flags().StringVar(&swNativeVLAN, "native-vlan", "", "Trunk native VLAN id")
	switchportSetCmd.Flags().StringVar(&swTrunkVLANs, "trunk-vlans", "", "Trunk allowed VLANs (range expression)")

	switchportCmd.AddCommand(switchportShowCmd, switchportSetCmd, switchportDefaultCmd)
}
