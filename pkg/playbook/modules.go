package playbook

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/resource"
	"github.com/nexctl/nexctl/pkg/util"
)

// Outcome is what one module invocation did on one device.
type Outcome struct {
	Commands    []string
	Changed     bool
	WouldChange bool
}

type moduleFunc func(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error)

// modules maps playbook module names to their implementations.
var modules = map[string]moduleFunc{
	"vlan":           runVLAN,
	"interface":      runInterface,
	"switchport":     runSwitchport,
	"mtu":            runMTU,
	"vrf":            runVRF,
	"vrf_interface":  runVRFInterface,
	"snmp_community": runSNMPCommunity,
	"snmp_host":      runSNMPHost,
	"snmp_contact":   runSNMPContact,
	"snmp_location":  runSNMPLocation,
	"snmp_traps":     runSNMPTraps,
	"feature":        runFeature,
	"save_config":    runSaveConfig,
	"command":        runCommand,
}

// decode maps loosely-typed YAML params onto a module argument struct.
// Unknown params are an error so typos surface instead of silently no-oping.
func decode(params map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(params); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}

// runSpec reconciles one spec-driven resource. state=absent (and the
// interface-only state=default) converge toward removal.
func runSpec(ctx context.Context, c reconcile.Client, spec *reconcile.Spec, identity string, desired map[string]string, state string, opts reconcile.Options) (*Outcome, error) {
	if state == "absent" || state == "default" {
		opts.Absent = true
	}
	result, err := reconcile.NewDriver(c).Reconcile(ctx, spec, identity, desired, opts)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Commands:    result.Commands,
		Changed:     result.Changed,
		WouldChange: result.WouldChange,
	}, nil
}

func runVLAN(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		VLANID     string `mapstructure:"vlan_id"`
		VLANRange  string `mapstructure:"vlan_range"`
		Name       string `mapstructure:"name"`
		VLANState  string `mapstructure:"vlan_state"`
		AdminState string `mapstructure:"admin_state"`
		State      string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}

	if args.VLANRange != "" {
		rangeOpts := opts
		rangeOpts.Absent = args.State == "absent"
		result, err := resource.ReconcileVLANRange(ctx, c, args.VLANRange, rangeOpts)
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Commands:    result.Commands,
			Changed:     result.Changed,
			WouldChange: result.WouldChange,
		}, nil
	}

	return runSpec(ctx, c, resource.VLAN(), args.VLANID, map[string]string{
		"name":        args.Name,
		"vlan_state":  args.VLANState,
		"admin_state": args.AdminState,
	}, args.State, opts)
}

func runInterface(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Interface   string `mapstructure:"interface"`
		AdminState  string `mapstructure:"admin_state"`
		Description string `mapstructure:"description"`
		Speed       string `mapstructure:"speed"`
		Duplex      string `mapstructure:"duplex"`
		Mode        string `mapstructure:"mode"`
		State       string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.Interface(), args.Interface, map[string]string{
		"admin_state": args.AdminState,
		"description": args.Description,
		"speed":       args.Speed,
		"duplex":      args.Duplex,
		"mode":        args.Mode,
	}, args.State, opts)
}

func runSwitchport(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Interface  string `mapstructure:"interface"`
		Mode       string `mapstructure:"mode"`
		AccessVLAN string `mapstructure:"access_vlan"`
		NativeVLAN string `mapstructure:"native_vlan"`
		TrunkVLANs string `mapstructure:"trunk_vlans"`
		State      string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.Switchport(), args.Interface, map[string]string{
		"mode":        args.Mode,
		"access_vlan": args.AccessVLAN,
		"native_vlan": args.NativeVLAN,
		"trunk_vlans": args.TrunkVLANs,
	}, args.State, opts)
}

func runMTU(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Interface string `mapstructure:"interface"`
		MTU       string `mapstructure:"mtu"`
		SysMTU    string `mapstructure:"sysmtu"`
		State     string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	if args.SysMTU != "" {
		return runSpec(ctx, c, resource.SystemJumboMTU(), "", map[string]string{
			"sysmtu": args.SysMTU,
		}, args.State, opts)
	}
	return runSpec(ctx, c, resource.MTU(), args.Interface, map[string]string{
		"mtu": args.MTU,
	}, args.State, opts)
}

func runVRF(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		VRF         string `mapstructure:"vrf"`
		Description string `mapstructure:"description"`
		AdminState  string `mapstructure:"admin_state"`
		State       string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.VRF(), args.VRF, map[string]string{
		"description": args.Description,
		"admin_state": args.AdminState,
	}, args.State, opts)
}

func runVRFInterface(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		VRF       string `mapstructure:"vrf"`
		Interface string `mapstructure:"interface"`
		State     string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.VRFInterface(), args.Interface, map[string]string{
		"vrf": args.VRF,
	}, args.State, opts)
}

func runSNMPCommunity(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Community string `mapstructure:"community"`
		Group     string `mapstructure:"group"`
		ACL       string `mapstructure:"acl"`
		State     string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.SNMPCommunity(), args.Community, map[string]string{
		"group": args.Group,
		"acl":   args.ACL,
	}, args.State, opts)
}

func runSNMPHost(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		SNMPHost  string `mapstructure:"snmp_host"`
		SNMPType  string `mapstructure:"snmp_type"`
		Version   string `mapstructure:"version"`
		V3        string `mapstructure:"v3"`
		Community string `mapstructure:"community"`
		UDP       string `mapstructure:"udp"`
		SrcIntf   string `mapstructure:"src_intf"`
		VRF       string `mapstructure:"vrf"`
		VRFFilter string `mapstructure:"vrf_filter"`
		State     string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.SNMPHost(), args.SNMPHost, map[string]string{
		"snmp_type":  args.SNMPType,
		"version":    args.Version,
		"v3":         args.V3,
		"community":  args.Community,
		"udp":        args.UDP,
		"src_intf":   args.SrcIntf,
		"vrf":        args.VRF,
		"vrf_filter": args.VRFFilter,
	}, args.State, opts)
}

func runSNMPContact(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Contact string `mapstructure:"contact"`
		State   string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.SNMPContact(), "", map[string]string{
		"contact": args.Contact,
	}, args.State, opts)
}

func runSNMPLocation(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Location string `mapstructure:"location"`
		State    string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	return runSpec(ctx, c, resource.SNMPLocation(), "", map[string]string{
		"location": args.Location,
	}, args.State, opts)
}

func runSNMPTraps(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Group string `mapstructure:"group"`
		State string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	result, err := resource.ReconcileSNMPTraps(ctx, c, args.Group, args.State != "disabled", opts)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Commands:    result.Commands,
		Changed:     result.Changed,
		WouldChange: result.WouldChange,
	}, nil
}

func runFeature(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Feature string `mapstructure:"feature"`
		State   string `mapstructure:"state"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	state := args.State
	if state == "" {
		state = "enabled"
	}
	return runSpec(ctx, c, resource.Feature(), args.Feature, map[string]string{
		"state": state,
	}, "", opts)
}

// runCommand is the raw passthrough: one show command, or a config batch
// given as a list or a comma-separated string.
func runCommand(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Command     string   `mapstructure:"command"`
		CommandList []string `mapstructure:"command_list"`
		Type        string   `mapstructure:"type"`
		Text        bool     `mapstructure:"text"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}

	switch args.Type {
	case "show":
		result, err := resource.ExecShow(ctx, c, args.Command, args.Text)
		if err != nil {
			return nil, err
		}
		return &Outcome{Commands: result.Commands}, nil
	case "config":
		commands := args.CommandList
		if len(commands) == 0 {
			commands = util.SplitCommaSeparated(args.Command)
		}
		result, err := resource.ExecConfig(ctx, c, commands, opts)
		if err != nil {
			return nil, err
		}
		return &Outcome{
			Commands:    result.Commands,
			Changed:     result.Changed,
			WouldChange: result.WouldChange,
		}, nil
	default:
		return nil, util.NewValidationError(`command type must be "show" or "config"`)
	}
}

func runSaveConfig(ctx context.Context, c reconcile.Client, params map[string]interface{}, opts reconcile.Options) (*Outcome, error) {
	var args struct {
		Path string `mapstructure:"path"`
	}
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	if opts.DryRun {
		return &Outcome{WouldChange: true}, nil
	}
	if err := resource.SaveConfig(ctx, c, args.Path); err != nil {
		return nil, err
	}
	return &Outcome{Changed: true}, nil
}
