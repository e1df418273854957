package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/playbook"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

var runCheck bool

var runCmd = &cobra.Command{
	Use:   "run <playbook.yml>",
	Short: "Run a playbook",
	Long: `Run a YAML playbook against its hosts. Hosts are resolved through
the inventory. Unlike single-resource commands, run executes by default;
use --check to preview.

Examples:
  nexctl run site.yml
  nexctl run site.yml --check`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pb, err := playbook.Load(args[0])
		if err != nil {
			return err
		}

		var cleanups []func()
		defer func() {
			for _, c := range cleanups {
				c()
			}
		}()

		runner := playbook.NewRunner(func(host string) (reconcile.Client, error) {
			dev, err := resolveDevice(host)
			if err != nil {
				return nil, err
			}
			if dev.Transport == "ssh" {
				sc, err := nxapi.DialSSH(dev.ClientConfig())
				if err != nil {
					return nil, err
				}
				cleanups = append(cleanups, func() { sc.Close() })
				return sc, nil
			}
			return nxapi.NewClient(dev.ClientConfig()), nil
		})
		runner.Check = runCheck

		report, err := runner.Run(context.Background(), pb)
		if err != nil {
			return err
		}

		if jsonOutput {
			if err := json.NewEncoder(os.Stdout).Encode(report); err != nil {
				return err
			}
		} else {
			printRunReport(report)
		}

		if report.Failed {
			return fmt.Errorf("playbook %q failed", pb.Name)
		}
		return nil
	},
}

func printRunReport(report *playbook.RunReport) {
	fmt.Println(cli.Bold("PLAY: " + report.Playbook))

	t := cli.NewTable("HOST", "TASK", "STATUS", "COMMANDS")
	for _, r := range report.Results {
		t.Row(r.Host, r.Task, taskStatusLabel(r), strings.Join(r.Commands, "; "))
	}
	t.Flush()

	for _, r := range report.Results {
		if r.Error != "" {
			fmt.Fprintf(os.Stderr, "%s %s/%s: %s\n", cli.Red("failed:"), r.Host, r.Task, r.Error)
		}
	}
}

func taskStatusLabel(r playbook.TaskResult) string {
	switch r.Status {
	case playbook.StatusChanged:
		return cli.Green(string(r.Status))
	case playbook.StatusWouldChange:
		return cli.Yellow(string(r.Status))
	case playbook.StatusFailed:
		return cli.Red(string(r.Status))
	case playbook.StatusSkipped:
		return cli.Dim(string(r.Status))
	default:
		return string(r.Status)
	}
}

func init() {
	runCmd.Flags().BoolVar(&runCheck, "check", false, "Preview changes without applying them")
}
