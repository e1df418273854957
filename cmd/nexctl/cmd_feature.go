package main

import (
	"context"
	"encoding/json"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/resource"
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Manage NX-OS feature enablement",
	Long: `Enable or disable NX-OS features.

Requires -d (device) flag.

Examples:
  nexctl -d n9k-leaf-01 feature list
  nexctl -d n9k-leaf-01 feature enable bgp -x
  nexctl -d n9k-leaf-01 feature disable eigrp -x`,
}

var featureListCmd = &cobra.Command{
	Use:   "list",
	Short: "List features and their state",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		c, cleanup, err := connectDevice()
		if err != nil {
			return err
		}
		defer cleanup()

		features, err := resource.ListFeatures(ctx, c)
		if err != nil {
			return err
		}

		if jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(features)
		}

		names := make([]string, 0, len(features))
		for name := range features {
			names = append(names, name)
		}
		sort.Strings(names)

		t := cli.NewTable("FEATURE", "STATE")
		for _, name := range names {
			state := features[name]
			if state == "enabled" {
				state = cli.Green(state)
			}
			t.Row(name, state)
		}
		t.Flush()
		return nil
	},
}

var featureEnableCmd = &cobra.Command{
	Use:   "enable <feature>",
	Short: "Enable a feature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return featureRun(args[0], "enabled")
	},
}

var featureDisableCmd = &cobra.Command{
	Use:   "disable <feature>",
	Short: "Disable a feature",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return featureRun(args[0], "disabled")
	},
}

func featureRun(name, state string) error {
	ctx := context.Background()
	c, cleanup, err := connectDevice()
	if err != nil {
		return err
	}
	defer cleanup()

	desired := map[string]string{"state": state}
	return reconcileAndReport(ctx, c, resource.Feature(), name, desired, reconcileOpts())
}

func init() {
	featureCmd.AddCommand(featureListCmd, featureEnableCmd, featureDisableCmd)
}
