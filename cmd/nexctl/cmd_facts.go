package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/resource"
	"github.com/nexctl/nexctl/pkg/util"
)

var factsCmd = &cobra.Command{
	Use:   "facts",
	Short: "Gather device facts",
	Long: `Gather hostname, platform, OS version, uptime, interface status,
VLANs, and feature state from the device.

Examples:
  nexctl -d n9k-leaf-01 facts
  nexctl -d n9k-leaf-01 facts --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		facts, err := resource.GatherFacts(ctx, c)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(facts)
		}

		fmt.Println(cli.Bold(facts.Hostname))
		fmt.Printf("%s %s\n", cli.DotPad("platform", 16), facts.Platform)
		fmt.Printf("%s %s\n", cli.DotPad("os", 16), facts.OS)
		if facts.Kickstart != "" {
			fmt.Printf("%s %s\n", cli.DotPad("kickstart", 16), facts.Kickstart)
		}
		if facts.Uptime != "" {
			fmt.Printf("%s %s\n", cli.DotPad("uptime", 16), facts.Uptime)
		}
		if len(facts.VLANs) > 0 {
			fmt.Printf("%s %s\n", cli.DotPad("vlans", 16), util.CompactRange(facts.VLANs))
		}

		enabled := make([]string, 0, len(facts.Features))
		for name, state := range facts.Features {
			if state == "enabled" {
				enabled = append(enabled, name)
			}
		}
		if len(enabled) > 0 {
			fmt.Printf("%s %s\n", cli.DotPad("features", 16), strings.Join(enabled, ", "))
		}

		if len(facts.Interfaces) > 0 {
			fmt.Println()
			t := cli.NewTable("INTERFACE", "STATE", "VLAN", "SPEED", "TYPE")
			for _, i := range facts.Interfaces {
				state := i.State
				if state == "connected" {
					state = cli.Green(state)
				}
				t.Row(i.Interface, state, i.VLAN, i.Speed, i.Type)
			}
			t.Flush()
		}
		return nil
	},
}

var neighborProto string

var neighborsCmd = &cobra.Command{
	Use:   "neighbors",
	Short: "Show CDP or LLDP neighbors",
	Long: `Show discovered neighbors.

Examples:
  nexctl -d n9k-leaf-01 neighbors
  nexctl -d n9k-leaf-01 neighbors --protocol lldp`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		neighbors, err := resource.Neighbors(ctx, c, neighborProto)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(neighbors)
		}
		if len(neighbors) == 0 {
			fmt.Println("No neighbors found")
			return nil
		}

		t := cli.NewWrapTable(100, "NEIGHBOR", "LOCAL INTERFACE", "NEIGHBOR INTERFACE")
		for _, n := range neighbors {
			t.Row(n.Neighbor, n.LocalInterface, n.NeighborInterface)
		}
		t.Render(os.Stdout)
		return nil
	},
}

func init() {
	neighborsCmd.Flags().StringVar(&neighborProto, "protocol", "cdp", "Discovery protocol: cdp or lldp")
}
