// Nexctl - Cisco NX-OS Configuration Tool
//
// A CLI tool for declarative configuration of Cisco Nexus switches over
// NX-API with:
//   - Idempotent resource reconciliation (only the delta is sent)
//   - Dry-run by default (preview commands, require -x to execute)
//   - YAML inventory for device credentials
//   - YAML playbooks for multi-device, multi-task runs
//
// Commands are nouns with verb subcommands:
//
//	nexctl -d <device> <resource> <verb> [args] [-x]
//
// Examples:
//
//	nexctl -d n9k-leaf-01 vlan list
//	nexctl -d n9k-leaf-01 vlan set 100 --name web          # preview
//	nexctl -d n9k-leaf-01 vlan set 100 --name web -x       # apply
//	nexctl -d n9k-leaf-01 interface set Ethernet1/1 --admin up -x
//	nexctl -d n9k-leaf-01 facts --json
//	nexctl run site.yml --check
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/util"
	"github.com/nexctl/nexctl/pkg/version"
)

var (
	// Device selection and connection overrides
	deviceName    string // -d, --device
	inventoryPath string
	username      string
	password      string
	transport     string
	port          int
	insecure      bool

	// Mode flags
	executeMode bool
	saveMode    bool
	verbose     bool
	jsonOutput  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cli.Red("Error: ")+err.Error())
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "nexctl",
	Short:             "Cisco NX-OS Configuration Tool",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `Nexctl reconciles Cisco Nexus switch configuration over NX-API.

Write commands preview the CLI commands they would send by default.
Use -x to execute.

  nexctl -d <device> <resource> <verb> [args] [-x]`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if saveMode && !executeMode {
			return fmt.Errorf("--save (-s) requires --execute (-x): use -xs to execute and save")
		}
		if verbose {
			return util.SetLogLevel("debug")
		}
		return util.SetLogLevel("warn")
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&deviceName, "device", "d", "", "Device name from inventory, or a bare hostname")
	pf.StringVar(&inventoryPath, "inventory", "", "Inventory file (default ~/.nexctl/inventory.yml)")
	pf.StringVarP(&username, "username", "u", "", "Device username (overrides inventory)")
	pf.StringVarP(&password, "password", "p", "", "Device password (overrides inventory, prompts if unset)")
	pf.StringVar(&transport, "transport", "", "Transport: http, https, or ssh (overrides inventory)")
	pf.IntVar(&port, "port", 0, "Device port (overrides inventory)")
	pf.BoolVarP(&insecure, "insecure", "k", false, "Skip TLS certificate verification")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	for _, cmd := range []*cobra.Command{
		vlanCmd, interfaceCmd, switchportCmd, mtuCmd, vrfCmd,
		snmpCmd, featureCmd, execCmd,
	} {
		addWriteFlags(cmd)
	}
	for _, cmd := range []*cobra.Command{
		vlanCmd, interfaceCmd, switchportCmd, mtuCmd, vrfCmd,
		snmpCmd, featureCmd, factsCmd, neighborsCmd, runCmd, execCmd,
	} {
		addOutputFlags(cmd)
	}

	rootCmd.AddGroup(
		&cobra.Group{ID: "resource", Title: "Resource Commands:"},
		&cobra.Group{ID: "device", Title: "Device Commands:"},
	)

	for _, cmd := range []*cobra.Command{
		vlanCmd, interfaceCmd, switchportCmd, mtuCmd, vrfCmd,
		snmpCmd, featureCmd,
	} {
		cmd.GroupID = "resource"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{factsCmd, neighborsCmd, execCmd, saveCmd, runCmd} {
		cmd.GroupID = "device"
		rootCmd.AddCommand(cmd)
	}

	rootCmd.AddCommand(versionCmd)
}

// addWriteFlags registers -x/--execute and -s/--save. For noun-group parent
// commands these are PersistentFlags so subcommands inherit them.
func addWriteFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if cmd.HasSubCommands() {
		flags = cmd.PersistentFlags()
	}
	flags.BoolVarP(&executeMode, "execute", "x", false, "Execute changes (default is dry-run)")
	flags.BoolVarP(&saveMode, "save", "s", false, "Save config after changes (requires -x)")
}

// addOutputFlags registers --json. For noun-group parent commands this is a
// PersistentFlag so subcommands inherit it.
func addOutputFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if cmd.HasSubCommands() {
		flags = cmd.PersistentFlags()
	}
	flags.BoolVar(&jsonOutput, "json", false, "JSON output")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nexctl %s\n", version.Info())
	},
}
