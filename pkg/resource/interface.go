package resource

import (
	"context"
	"strings"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// Per-type key maps for "show interface". The device reports a different
// attribute set for each interface class; admin state in particular lives
// under three different keys.
var (
	ifaceBaseFields = reconcile.FieldMap{
		"interface":   "interface",
		"admin_state": "admin_state",
		"desc":        "description",
	}
	ifaceSpeedFields = reconcile.FieldMap{
		"eth_duplex": "duplex",
		"eth_speed":  "speed",
	}
	ifaceModeFields = reconcile.FieldMap{
		"eth_mode": "mode",
	}
	ifaceSVIFields = reconcile.FieldMap{
		"svi_admin_state": "admin_state",
		"desc":            "description",
	}
	ifaceLoopbackFields = reconcile.FieldMap{
		"interface": "interface",
		"state":     "admin_state",
		"desc":      "description",
	}
)

// Interface reconciles interface-level settings: description, admin state,
// speed, duplex and layer2/layer3 mode. Which fields apply depends on the
// interface type; validation rejects the rest.
func Interface() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "interface",
		ShowCommand: func(identity string) string {
			return "show interface " + identity
		},
		Commands: reconcile.CommandTable{
			Enter: "interface %s",
			Templates: map[string]string{
				"description": "description {value}",
				"mode":        "{value}",
				"speed":       "speed {value}",
				"duplex":      "duplex {value}",
				"admin_state": "{value}",
			},
			Values: reconcile.ValueMap{
				"admin_state": {
					"no shutdown": "up",
					"shutdown":    "down",
				},
				"mode": {
					"switchport":    "layer2",
					"no switchport": "layer3",
				},
			},
			// Duplex cannot be set without re-stating speed.
			Deps:  []reconcile.FieldDep{{Field: "duplex", Requires: "speed"}},
			Order: []string{"description", "mode", "speed", "duplex", "admin_state"},
		},
		Validate:     validateInterface,
		ReadExisting: readInterface,
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			// Physical ports are reset to factory config; logical
			// interfaces are removed outright.
			if util.GetInterfaceType(identity) == util.InterfaceEthernet {
				return []string{"default interface " + identity}
			}
			return []string{"no interface " + identity}
		},
	}
}

func validateInterface(identity string, desired map[string]string) error {
	v := &util.ValidationBuilder{}

	intfType := util.GetInterfaceType(identity)
	if intfType == util.InterfaceUnknown {
		v.AddErrorf("unknown interface type for %q", identity)
	}

	if state := desired["admin_state"]; state != "" && state != "up" && state != "down" {
		v.AddErrorf("admin_state must be up or down, got %q", state)
	}
	if mode := desired["mode"]; mode != "" {
		if mode != "layer2" && mode != "layer3" {
			v.AddErrorf("mode must be layer2 or layer3, got %q", mode)
		}
		if intfType != util.InterfaceEthernet && intfType != util.InterfacePortChannel {
			v.AddErrorf("mode is not configurable on %s interfaces", intfType)
		}
	}
	for _, field := range []string{"speed", "duplex"} {
		if desired[field] != "" && intfType != util.InterfaceEthernet && intfType != util.InterfaceManagement {
			v.AddErrorf("%s is not configurable on %s interfaces", field, intfType)
		}
	}

	return v.Build()
}

// readInterface reads one interface with the key map for its type and
// normalizes speed and mode into their canonical vocabulary.
func readInterface(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
	body, err := c.Show(ctx, "show interface "+identity)
	if err != nil {
		return nil, err
	}

	rows := nxapi.Rows(body, "TABLE_interface.ROW_interface")
	if len(rows) == 0 {
		return reconcile.Record{}, nil
	}
	row := rows[0]

	var record reconcile.Record
	switch util.GetInterfaceType(identity) {
	case util.InterfaceEthernet, util.InterfacePortChannel:
		record = reconcile.ApplyKeyMap(merged(ifaceBaseFields, ifaceSpeedFields, ifaceModeFields), row)
		record["mode"] = normalizeMode(record["mode"])
	case util.InterfaceSVI:
		record = reconcile.ApplyKeyMap(ifaceSVIFields, row)
	case util.InterfaceLoopback:
		record = reconcile.ApplyKeyMap(ifaceLoopbackFields, row)
	case util.InterfaceManagement:
		record = reconcile.ApplyKeyMap(merged(ifaceBaseFields, ifaceSpeedFields), row)
	default:
		record = reconcile.ApplyKeyMap(ifaceBaseFields, row)
	}

	if speed, ok := record["speed"]; ok {
		record["speed"] = normalizeSpeed(speed)
	}
	return record, nil
}

func merged(maps ...reconcile.FieldMap) reconcile.FieldMap {
	out := make(reconcile.FieldMap)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// normalizeMode folds the device's eth_mode vocabulary into layer2/layer3.
// A port with no eth_mode at all is routed.
func normalizeMode(mode string) string {
	switch mode {
	case "access", "trunk":
		return "layer2"
	case "routed", "layer3", "":
		return "layer3"
	default:
		return mode
	}
}

// normalizeSpeed translates the human form the device reports ("10 Gb/s")
// into the Mb/s keyword the speed command takes.
func normalizeSpeed(speed string) string {
	switch {
	case strings.HasPrefix(speed, "auto"):
		return "auto"
	case strings.HasPrefix(speed, "40"):
		return "40000"
	case strings.HasPrefix(speed, "100 G"):
		return "100000"
	case strings.HasPrefix(speed, "100 M"):
		return "100"
	case strings.HasPrefix(speed, "1000"):
		return "1000"
	case strings.HasPrefix(speed, "10"):
		return "10000"
	case strings.HasPrefix(speed, "1"):
		return "1000"
	default:
		return speed
	}
}
