package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"syscall"

	"golang.org/x/term"

	"github.com/nexctl/nexctl/pkg/cli"
	"github.com/nexctl/nexctl/pkg/inventory"
	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/resource"
	"github.com/nexctl/nexctl/pkg/util"
)

// resolveDevice looks deviceName up in the inventory and applies CLI flag
// overrides. A name missing from the inventory is treated as a bare hostname
// with the inventory defaults applied.
func resolveDevice(name string) (inventory.Device, error) {
	path := inventoryPath
	if path == "" {
		path = inventory.DefaultPath()
	}
	inv, err := inventory.Load(path)
	if err != nil {
		return inventory.Device{}, err
	}

	dev, err := inv.Resolve(name)
	if errors.Is(err, util.ErrNotFound) {
		dev = inv.Defaults
		dev.Host = name
		err = nil
	}
	if err != nil {
		return inventory.Device{}, err
	}

	if username != "" {
		dev.Username = username
	}
	if password != "" {
		dev.Password = password
	}
	if transport != "" {
		dev.Transport = transport
	}
	if port != 0 {
		dev.Port = port
	}
	if insecure {
		dev.Insecure = true
	}

	if dev.Password == "" {
		dev.Password, err = promptPassword(dev.Username, dev.Host)
		if err != nil {
			return inventory.Device{}, err
		}
	}

	return dev, nil
}

func promptPassword(user, host string) (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("no password for %s@%s: set one in the inventory or pass -p", user, host)
	}
	fmt.Fprintf(os.Stderr, "Password for %s@%s: ", user, host)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(raw), nil
}

// connectDevice builds a device client from the -d flag. The returned cleanup
// func is always safe to defer.
func connectDevice() (reconcile.Client, func(), error) {
	if deviceName == "" {
		return nil, nil, fmt.Errorf("device required: use -d <device> flag")
	}

	dev, err := resolveDevice(deviceName)
	if err != nil {
		return nil, nil, err
	}

	if dev.Transport == "ssh" {
		sc, err := nxapi.DialSSH(dev.ClientConfig())
		if err != nil {
			return nil, nil, err
		}
		return sc, func() { sc.Close() }, nil
	}

	return nxapi.NewClient(dev.ClientConfig()), func() {}, nil
}

func reconcileOpts() reconcile.Options {
	return reconcile.Options{DryRun: !executeMode}
}

// reconcileAndReport is the standard flow for resource write commands:
// reconcile, print the result, save the config when -s is set.
func reconcileAndReport(ctx context.Context, c reconcile.Client, spec *reconcile.Spec, identity string, desired map[string]string, opts reconcile.Options) error {
	res, err := reconcile.NewDriver(c).Reconcile(ctx, spec, identity, desired, opts)
	if err != nil {
		return err
	}
	if err := printResult(res); err != nil {
		return err
	}
	return saveIfRequested(ctx, c, res.Changed)
}

func printResult(res *reconcile.Result) error {
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(res)
	}

	label := res.Kind
	if res.Identity != "" {
		label += " " + res.Identity
	}
	fmt.Printf("%s: %s\n", cli.Bold(label), cli.Status(res.Changed, res.WouldChange))

	printCommands(res.Commands)
	if res.WouldChange {
		printDryRunNotice()
	}
	return nil
}

func printCommands(commands []string) {
	for _, cmd := range commands {
		fmt.Printf("  %s\n", cmd)
	}
}

func printDryRunNotice() {
	fmt.Println("\n" + cli.Yellow("DRY-RUN: No changes applied. Use -x to execute."))
}

// printRecord prints resource attributes in sorted key order.
func printRecord(rec reconcile.Record) {
	keys := make([]string, 0, len(rec))
	for k := range rec {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s %s\n", cli.DotPad(k, 24), rec[k])
	}
}

func saveIfRequested(ctx context.Context, c reconcile.Client, changed bool) error {
	if !saveMode || !changed {
		return nil
	}
	if err := resource.SaveConfig(ctx, c, "startup-config"); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Println(cli.Green("Configuration saved."))
	return nil
}

// showResource reads one resource and prints it (or JSON with --json).
func showResource(ctx context.Context, spec *reconcile.Spec, identity string) error {
	c, cleanup, err := connectDevice()
	if err != nil {
		return err
	}
	defer cleanup()

	rec, err := spec.Read(ctx, c, identity)
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(rec)
	}

	label := spec.Kind
	if identity != "" {
		label += " " + identity
	}
	if len(rec) == 0 {
		fmt.Printf("%s: not configured\n", label)
		return nil
	}
	fmt.Println(cli.Bold(label))
	printRecord(rec)
	return nil
}
