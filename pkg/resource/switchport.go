package resource

import (
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// Switchport reconciles layer-2 port configuration: access/trunk mode, access
// VLAN, trunk native VLAN and the trunk allowed-VLAN set. Trunk VLANs are set
// semantics over range specs, so command generation is a hook rather than a
// template table.
func Switchport() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "switchport",
		ShowCommand: func(identity string) string {
			return "show interface " + identity + " switchport"
		},
		RowsPath: "TABLE_interface.ROW_interface",
		Fields: reconcile.FieldMap{
			"interface":        "interface",
			"oper_mode":        "mode",
			"switchport":       "switchport",
			"access_vlan":      "access_vlan",
			"access_vlan_name": "access_vlan_name",
			"native_vlan":      "native_vlan",
			"native_vlan_name": "native_vlan_name",
			"trunk_vlans":      "trunk_vlans",
		},
		Commands: reconcile.CommandTable{
			Enter: "interface %s",
		},
		Validate:         validateSwitchport,
		GenerateCommands: switchportCommands,
		AbsentCommands:   switchportDefaults,
	}
}

func validateSwitchport(identity string, desired map[string]string) error {
	v := &util.ValidationBuilder{}

	intfType := util.GetInterfaceType(identity)
	if intfType != util.InterfaceEthernet && intfType != util.InterfacePortChannel {
		v.AddErrorf("switchport applies to ethernet and port-channel interfaces, not %s", intfType)
	}

	mode := desired["mode"]
	if mode != "" && mode != "access" && mode != "trunk" {
		v.AddErrorf("mode must be access or trunk, got %q", mode)
	}
	if desired["access_vlan"] != "" && mode == "trunk" {
		v.AddError("access_vlan does not apply in trunk mode")
	}
	if mode == "access" {
		if desired["native_vlan"] != "" {
			v.AddError("native_vlan does not apply in access mode")
		}
		if desired["trunk_vlans"] != "" {
			v.AddError("trunk_vlans does not apply in access mode")
		}
	}
	if spec := desired["trunk_vlans"]; spec != "" {
		if _, err := util.ExpandVLANRange(spec); err != nil {
			v.AddError(err.Error())
		}
	}

	return v.Build()
}

// switchportCommands renders the layer-2 delta. Mode and the scalar VLANs
// follow the plain compare; trunk_vlans compares as an expanded set and emits
// an incremental "allowed vlan add" so VLANs already allowed stay allowed.
func switchportCommands(delta, proposed, existing reconcile.Record, identity string) []string {
	var body []string

	mode := proposed["mode"]
	if mode != "" && mode != existing["mode"] {
		body = append(body, "switchport mode "+mode)
	}

	if av := proposed["access_vlan"]; av != "" && av != existing["access_vlan"] {
		body = append(body, "switchport access vlan "+av)
	}

	if spec := proposed["trunk_vlans"]; spec != "" {
		if toAdd := trunkVLANsToAdd(spec, existing["trunk_vlans"]); toAdd != "" {
			body = append(body, "switchport trunk allowed vlan add "+toAdd)
		}
	}

	if nv := proposed["native_vlan"]; nv != "" && nv != existing["native_vlan"] {
		body = append(body, "switchport trunk native vlan "+nv)
	}

	if len(body) == 0 {
		return nil
	}
	return append([]string{"interface " + identity}, body...)
}

// trunkVLANsToAdd returns the compact range of proposed trunk VLANs missing
// from the existing allowed set, or "" when the set already covers them.
func trunkVLANsToAdd(proposedSpec, existingSpec string) string {
	proposed, err := util.ExpandVLANRange(proposedSpec)
	if err != nil {
		return ""
	}
	existing, err := util.ExpandRange(existingSpec)
	if err != nil {
		existing = nil
	}

	allowed := make(map[int]bool, len(existing))
	for _, id := range existing {
		allowed[id] = true
	}

	var missing []int
	for _, id := range proposed {
		if !allowed[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return ""
	}
	return util.CompactRange(missing)
}

// switchportDefaults restores the out-of-box layer-2 config: access mode in
// VLAN 1 with every VLAN allowed on trunk.
func switchportDefaults(identity string, existing reconcile.Record) []string {
	if isSwitchportDefault(existing) {
		return nil
	}
	return []string{
		"interface " + identity,
		"switchport mode access",
		"switchport access vlan 1",
		"switchport trunk native vlan 1",
		"switchport trunk allowed vlan all",
	}
}

func isSwitchportDefault(existing reconcile.Record) bool {
	return existing["access_vlan"] == "1" &&
		existing["native_vlan"] == "1" &&
		existing["trunk_vlans"] == "1-4094" &&
		existing["mode"] == "access"
}
