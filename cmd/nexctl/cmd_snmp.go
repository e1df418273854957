package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/resource"
)

var snmpCmd = &cobra.Command{
	Use:   "snmp",
	Short: "Manage SNMP configuration",
	Long: `Manage SNMP communities, trap hosts, traps, contact, and location.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 snmp community set public --group network-operator -x
  nexctl -d n9k-leaf-01 snmp host set 10.0.0.9 --version v2c --community public -x
  nexctl -d n9k-leaf-01 snmp traps show
  nexctl -d n9k-leaf-01 snmp traps enable bgp -x
  nexctl -d n9k-leaf-01 snmp contact set "noc@example.net" -x`,
}

// ----------------------------------------------------------------------------
// Communities
// ----------------------------------------------------------------------------

var (
	snmpGroup string
	snmpACL   string
)

var snmpCommunityCmd = &cobra.Command{
	Use:   "community",
	Short: "Manage SNMP communities",
}

var snmpCommunityShowCmd = &cobra.Command{
	Use:   "show <community>",
	Short: "Show one SNMP community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.SNMPCommunity(), args[0])
	},
}

var snmpCommunitySetCmd = &cobra.Command{
	Use:   "set <community>",
	Short: "Create or update an SNMP community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{
			"group": snmpGroup,
			"acl":   snmpACL,
		}
		return reconcileAndReport(ctx, c, resource.SNMPCommunity(), args[0], desired, reconcileOpts())
	},
}

var snmpCommunityDeleteCmd = &cobra.Command{
	Use:   "delete <community>",
	Short: "Remove an SNMP community",
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
		return reconcileAndReport(ctx, c, resource.SNMPCommunity(), args[0], nil, opts)
	},
}

// ----------------------------------------------------------------------------
// Trap hosts
// ----------------------------------------------------------------------------

var (
	snmpHostType      string
	snmpHostVersion   string
	snmpHostV3        string
	snmpHostCommunity string
	snmpHostUDP       string
	snmpHostSrcIntf   string
	snmpHostVRF       string
	snmpHostVRFFilter string
)

var snmpHostCmd = &cobra.Command{
	Use:   "host",
	Short: "Manage SNMP trap and inform hosts",
}

var snmpHostShowCmd = &cobra.Command{
	Use:   "show <host>",
	Short: "Show one SNMP host",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showResource(context.Background(), resource.SNMPHost(), args[0])
	},
}

var snmpHostSetCmd = &cobra.Command{
	Use:   "set <host>",
	Short: "Create or update an SNMP host",
	Long: `Create or update an SNMP trap or inform destination.

The v3 security level requires --version v3; informs are not valid with
SNMPv1.

Examples:
  nexctl -d n9k-leaf-01 snmp host set 10.0.0.9 --type trap --version v2c --community public -x
  nexctl -d n9k-leaf-01 snmp host set 10.0.0.9 --version v3 --v3 auth --community nms -x`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		desired := map[string]string{
			"snmp_type":  snmpHostType,
			"version":    snmpHostVersion,
			"v3":         snmpHostV3,
			"community":  snmpHostCommunity,
			"udp":        snmpHostUDP,
			"src_intf":   snmpHostSrcIntf,
			"vrf":        snmpHostVRF,
			"vrf_filter": snmpHostVRFFilter,
		}
		return reconcileAndReport(ctx, c, resource.SNMPHost(), args[0], desired, reconcileOpts())
	},
}

var snmpHostDeleteCmd = &cobra.Command{
	Use:   "delete <host>",
	Short: "Remove an SNMP host",
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
		return reconcileAndReport(ctx, c, resource.SNMPHost(), args[0], nil, opts)
	},
}

// ----------------------------------------------------------------------------
// Contact and location
// ----------------------------------------------------------------------------

var snmpContactCmd = &cobra.Command{
	Use:   "contact [value]",
	Short: "Show or set the SNMP contact",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return snmpScalarRun(resource.SNMPContact(), "contact", args)
	},
}

var snmpLocationCmd = &cobra.Command{
	Use:   "location [value]",
	Short: "Show or set the SNMP location",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return snmpScalarRun(resource.SNMPLocation(), "location", args)
	},
}

var snmpScalarDelete bool

func snmpScalarRun(spec *reconcile.Spec, field string, args []string) error {
	ctx := context.Background()
	if len(args) == 0 && !snmpScalarDelete {
		return showResource(ctx, spec, "")
	}

	c, cleanup, err := connectDevice()
	if err != nil {
		return err
	}
	defer cleanup()

	opts := reconcileOpts()
	if snmpScalarDelete {
		opts.Absent = true
		return reconcileAndReport(ctx, c, spec, "", nil, opts)
	}
	return reconcileAndReport(ctx, c, spec, "", map[string]string{field: args[0]}, opts)
}

// ----------------------------------------------------------------------------
// Traps
// ----------------------------------------------------------------------------

var snmpTrapsCmd = &cobra.Command{
	Use:   "traps",
	Short: "Manage SNMP trap groups",
}

var snmpTrapsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show per-group trap state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		states, err := resource.ReadSNMPTraps(ctx, c)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(states)
		}

		groups := make([]string, 0, len(states))
		for g := range states {
			groups = append(groups, g)
		}
		sort.Strings(groups)

		t := cli.NewTable("GROUP", "ENABLED", "DISABLED")
		for _, g := range groups {
			s := states[g]
			t.Row(g, fmt.Sprintf("%d", s.Enabled), fmt.Sprintf("%d", s.Disabled))
		}
		t.Flush()
		return nil
	},
}

var snmpTrapsEnableCmd = &cobra.Command{
	Use:   "enable <group>",
	Short: "Enable a trap group (or \"all\")",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return snmpTrapsRun(args[0], true)
	},
}

var snmpTrapsDisableCmd = &cobra.Command{
	Use:   "disable <group>",
	Short: "Disable a trap group (or \"all\")",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return snmpTrapsRun(args[0], false)
	},
}

func snmpTrapsRun(group string, enable bool) error {
	ctx := context.Background()
	c, cleanup, err := connectDevice()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := resource.ReconcileSNMPTraps(ctx, c, group, enable, reconcileOpts())
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(res)
	}
	fmt.Printf("%s: %s\n", cli.Bold("snmp traps "+group), cli.Status(res.Changed, res.WouldChange))
	printCommands(res.Commands)
	if res.WouldChange {
		printDryRunNotice()
	}
	return saveIfRequested(ctx, c, res.Changed)
}

func init() {
	snmpCommunitySetCmd.Flags().StringVar(&snmpGroup, "group", "", "Community group (e.g. network-operator)")
	snmpCommunitySetCmd.Flags().StringVar(&snmpACL, "acl", "", "ACL restricting the community")

	snmpHostSetCmd.Flags().StringVar(&snmpHostType, "type", "", "Notification type: trap or inform")
	snmpHostSetCmd.Flags().StringVar(&snmpHostVersion, "version", "", "SNMP version: v1, v2c, or v3")
	snmpHostSetCmd.Flags().StringVar(&snmpHostV3, "v3", "", "SNMPv3 security level: noauth, auth, or priv")
	snmpHostSetCmd.Flags().StringVar(&snmpHostCommunity, "community", "", "Community or v3 security name")
	snmpHostSetCmd.Flags().StringVar(&snmpHostUDP, "udp", "", "UDP port")
	snmpHostSetCmd.Flags().StringVar(&snmpHostSrcIntf, "source-interface", "", "Source interface for notifications")
	snmpHostSetCmd.Flags().StringVar(&snmpHostVRF, "vrf", "", "VRF to reach the host through")
	snmpHostSetCmd.Flags().StringVar(&snmpHostVRFFilter, "vrf-filter", "", "VRFs to filter notifications from (comma separated)")

	snmpContactCmd.Flags().BoolVar(&snmpScalarDelete, "delete", false, "Remove the value")
	snmpLocationCmd.Flags().BoolVar(&snmpScalarDelete, "delete", false, "Remove the value")

	snmpCommunityCmd.AddCommand(snmpCommunityShowCmd, snmpCommunitySetCmd, snmpCommunityDeleteCmd)
	snmpHostCmd.AddCommand(snmpHostShowCmd, snmpHostSetCmd, snmpHostDeleteCmd)
	snmpTrapsCmd.AddCommand(snmpTrapsShowCmd, snmpTrapsEnableCmd, snmpTrapsDisableCmd)

	snmpCmd.AddCommand(snmpCommunityCmd, snmpHostCmd, snmpContactCmd, snmpLocationCmd, snmpTrapsCmd)
}
