package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/resource"
)

var (
	intfAdminState  string
	intfDescription string
	intfMode        string
	intfSpeed       string
	intfDuplex      string
)

var interfaceCmd = &cobra.Command{
	Use:     "interface",
	Aliases: []string{"intf"},
	Short:   "Manage interfaces",
	Long: `Manage physical and logical interfaces.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 interface show Ethernet1/1
  nexctl -d n9k-leaf-01 interface set Ethernet1/1 --admin up --description uplink -x
  nexctl -d n9k-leaf-01 interface set Ethernet1/1 --mode layer2 -x
  nexctl -d n9k-leaf-01 interface default Ethernet1/1 -x`,
}

var interfaceShowCmd = &cobra.Command{
	Use:   "show <interface>",
	Short: "Show one interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.Interface(), args[0])
	},
}

var interfaceSetCmd = &cobra.Command{
	Use:   "set <interface>",
	Short: "Update interface attributes",
	Long: `Update interface attributes. Only the attributes given as flags are
reconciled. Speed and duplex apply to ethernet and management interfaces;
mode (layer2/layer3) applies to ethernet and port-channel interfaces.

Examples:
  nexctl -d n9k-leaf-01 interface set Ethernet1/1 --speed 10000 --duplex full -x`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{
			"admin_state": intfAdminState,
			"description": intfDescription,
			"mode":        intfMode,
			"speed":       intfSpeed,
			"duplex":      intfDuplex,
		}
		return reconcileAndReport(ctx, c, resource.Interface(), args[0], desired, reconcileOpts())
	},
}

var interfaceDefaultCmd = &cobra.Command{
	Use:   "default <interface>",
	Short: "Restore an interface to defaults",
	Long: `Restore an interface to its default configuration. Ethernet
interfaces are defaulted in place; logical interfaces (SVI, loopback,
port-channel) are removed.`,
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
		return reconcileAndReport(ctx, c, resource.Interface(), args[0], nil, opts)
	},
}

func init() {
	interfaceSetCmd.Flags().StringVar(&intfAdminState, "admin", "", "Admin state: up or down")
	interfaceSetCmd.Flags().StringVar(&intfDescription, "description", "", "Interface description")
	interfaceSetCmd.Flags().StringVar(&intfMode, "mode", "", "Port mode: layer2 or layer3")
	interfaceSetCmd.Flags().StringVar(&intfSpeed, "speed", "", "Speed in Mb/s, or auto")
	interfaceSetCmd.Flags().StringVar(&intfDuplex, "duplex", "", "Duplex: full, half, or auto")

	interfaceCmd.AddCommand(interfaceShowCmd, interfaceSetCmd, interfaceDefaultCmd)
}
