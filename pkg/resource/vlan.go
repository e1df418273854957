package resource

import (
	"context"
	"strconv"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// VLAN reconciles a single VLAN: name, operational state (active/suspend) and
// admin state (up/down). The identity is the VLAN id.
func VLAN() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "vlan",
		ShowCommand: func(identity string) string {
			return "show vlan id " + identity
		},
		RowsPath: "TABLE_vlanbriefid.ROW_vlanbriefid",
		Fields: reconcile.FieldMap{
			"vlanshowbr-vlanid-utf": "vlan_id",
			"vlanshowbr-vlanname":   "name",
			"vlanshowbr-vlanstate":  "vlan_state",
			"vlanshowbr-shutstate":  "admin_state",
		},
		Values: reconcile.ValueMap{
			"admin_state": {
				"shutdown":   "down",
				"noshutdown": "up",
			},
		},
		Commands: reconcile.CommandTable{
			Enter: "vlan %s",
			Exit:  true,
			Templates: map[string]string{
				"name":        "name {value}",
				"vlan_state":  "state {value}",
				"admin_state": "{value}",
			},
			Values: reconcile.ValueMap{
				"admin_state": {
					"shutdown":    "down",
					"no shutdown": "up",
				},
			},
			Order: []string{"name", "vlan_state", "admin_state"},
		},
		Validate: validateVLAN,
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			return []string{"no vlan " + identity}
		},
	}
}

func validateVLAN(identity string, desired map[string]string) error {
	v := &util.ValidationBuilder{}

	id, err := strconv.Atoi(identity)
	if err != nil {
		v.AddErrorf("vlan id %q is not a number", identity)
	} else if err := util.ValidateVLANID(id); err != nil {
		v.AddError(err.Error())
	}

	if state := desired["vlan_state"]; state != "" && state != "active" && state != "suspend" {
		v.AddErrorf("vlan_state must be active or suspend, got %q", state)
	}
	if state := desired["admin_state"]; state != "" && state != "up" && state != "down" {
		v.AddErrorf("admin_state must be up or down, got %q", state)
	}
	if name := desired["name"]; len(name) > 32 {
		v.AddErrorf("vlan name %q exceeds 32 characters", name)
	}

	return v.Build()
}

// VLANRangeResult reports a bulk VLAN presence operation.
type VLANRangeResult struct {
	Proposed []int    `json:"proposed"`
	Existing []int    `json:"existing"`
	EndState []int    `json:"end_state"`
	Commands []string `json:"commands"`
	Changed  bool     `json:"changed"`
	// WouldChange is set instead of Changed in dry-run mode.
	WouldChange bool `json:"would_change,omitempty"`
}

// ListVLANs returns the VLAN ids currently configured on the device.
func ListVLANs(ctx context.Context, c reconcile.Client) ([]int, error) {
	body, err := c.Show(ctx, "show vlan")
	if err != nil {
		return nil, err
	}

	var ids []int
	for _, row := range nxapi.Rows(body, "TABLE_vlanbrief.ROW_vlanbrief") {
		id := row.Get("vlanshowbr-vlanid").Int()
		if id == 0 {
			id = row.Get("vlanshowbr-vlanid-utf").Int()
		}
		if id > 0 {
			ids = append(ids, int(id))
		}
	}
	return ids, nil
}

// ReconcileVLANRange converges a whole range of VLAN ids ("2-10,20,55-60")
// toward presence or absence. Present emits "vlan N" for each missing id;
// absent emits "no vlan N" for each id that exists. Attributes are out of
// scope here, a range carries only membership.
func ReconcileVLANRange(ctx context.Context, c reconcile.Client, rangeSpec string, opts reconcile.Options) (*VLANRangeResult, error) {
	proposed, err := util.ExpandVLANRange(rangeSpec)
	if err != nil {
		return nil, err
	}

	existing, err := ListVLANs(ctx, c)
	if err != nil {
		return nil, err
	}

	result := &VLANRangeResult{
		Proposed: proposed,
		Existing: existing,
		EndState: existing,
	}

	have := make(map[int]bool, len(existing))
	for _, id := range existing {
		have[id] = true
	}

	var commands []string
	for _, id := range proposed {
		switch {
		case opts.Absent && have[id]:
			commands = append(commands, "no vlan "+strconv.Itoa(id))
		case !opts.Absent && !have[id]:
			commands = append(commands, "vlan "+strconv.Itoa(id))
		}
	}
	result.Commands = commands

	if len(commands) == 0 {
		return result, nil
	}
	if opts.DryRun {
		result.WouldChange = true
		return result, nil
	}

	if err := c.Config(ctx, commands); err != nil {
		return nil, err
	}
	result.Changed = true

	endState, err := ListVLANs(ctx, c)
	if err != nil {
		return nil, err
	}
	result.EndState = endState

	return result, nil
}
