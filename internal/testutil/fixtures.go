package testutil

import "fmt"

// Canned NX-API "body" payloads in the shape the device returns them.

// VLANBody is the body of "show vlan id N" for a single VLAN.
func VLANBody(id int, name, state, shutstate string) string {
	return fmt.Sprintf(`{
		"TABLE_vlanbriefid": {
			"ROW_vlanbriefid": {
				"vlanshowbr-vlanid": %d,
				"vlanshowbr-vlanid-utf": %d,
				"vlanshowbr-vlanname": %q,
				"vlanshowbr-vlanstate": %q,
				"vlanshowbr-shutstate": %q
			}
		}
	}`, id, id, name, state, shutstate)
}

// VLANBriefBody is the body of "show vlan" with one row per VLAN id.
func VLANBriefBody(ids ...int) string {
	rows := ""
	for i, id := range ids {
		if i > 0 {
			rows += ","
		}
		rows += fmt.Sprintf(`{
			"vlanshowbr-vlanid": %d,
			"vlanshowbr-vlanname": "VLAN%04d",
			"vlanshowbr-vlanstate": "active",
			"vlanshowbr-shutstate": "noshutdown"
		}`, id, id)
	}
	return fmt.Sprintf(`{"TABLE_vlanbrief": {"ROW_vlanbrief": [%s]}}`, rows)
}

// EthInterfaceBody is the body of "show interface X" for an ethernet port.
func EthInterfaceBody(name, adminState, desc, speed, duplex, mode string) string {
	return fmt.Sprintf(`{
		"TABLE_interface": {
			"ROW_interface": {
				"interface": %q,
				"state": "up",
				"admin_state": %q,
				"desc": %q,
				"eth_speed": %q,
				"eth_duplex": %q,
				"eth_mode": %q,
				"eth_mtu": "1500"
			}
		}
	}`, name, adminState, desc, speed, duplex, mode)
}

// SVIBody is the body of "show interface VlanN".
func SVIBody(name, sviAdminState, desc string) string {
	return fmt.Sprintf(`{
		"TABLE_interface": {
			"ROW_interface": {
				"interface": %q,
				"svi_admin_state": %q,
				"desc": %q,
				"svi_mtu": "1500"
			}
		}
	}`, name, sviAdminState, desc)
}

// SwitchportBody is the body of "show interface X switchport".
func SwitchportBody(name, operMode, accessVLAN, nativeVLAN, trunkVLANs string) string {
	return fmt.Sprintf(`{
		"TABLE_interface": {
			"ROW_interface": {
				"interface": %q,
				"switchport": "Enabled",
				"oper_mode": %q,
				"access_vlan": %q,
				"access_vlan_name": "default",
				"native_vlan": %q,
				"native_vlan_name": "default",
				"trunk_vlans": %q
			}
		}
	}`, name, operMode, accessVLAN, nativeVLAN, trunkVLANs)
}

// VRFBody is the body of "show vrf X".
func VRFBody(name, state string) string {
	return fmt.Sprintf(`{
		"TABLE_vrf": {
			"ROW_vrf": {
				"vrf_name": %q,
				"vrf_id": 3,
				"vrf_state": %q,
				"vrf_reason": "--"
			}
		}
	}`, name, state)
}

// VRFInterfaceBody is the body of "show vrf all interface X".
func VRFInterfaceBody(intf, vrf string) string {
	return fmt.Sprintf(`{
		"TABLE_if": {
			"ROW_if": {
				"if_name": %q,
				"vrf_name": %q,
				"vrf_id": 3,
				"soo": "--"
			}
		}
	}`, intf, vrf)
}

// SNMPCommunityBody is the body of "show snmp community" with one community.
func SNMPCommunityBody(name, group, acl string) string {
	return fmt.Sprintf(`{
		"TABLE_snmp_community": {
			"ROW_snmp_community": {
				"community_name": %q,
				"grouporaccess": %q,
				"aclfilter": %q
			}
		}
	}`, name, group, acl)
}

// SNMPHostBody is the body of "show snmp host" with one host row. vrfFilter
// is the raw "filter-vrf: a, b" string the device nests under its own table;
// empty means no filter configured.
func SNMPHostBody(host, port, version, level, typ, secname, vrfFilter string) string {
	filter := ""
	if vrfFilter != "" {
		filter = fmt.Sprintf(`,
				"TABLE_vrf_filters": {
					"ROW_vrf_filters": {
						"vrf_filter": %q
					}
				}`, vrfFilter)
	}
	return fmt.Sprintf(`{
		"TABLE_host": {
			"ROW_host": {
				"host": %q,
				"port": %q,
				"version": %q,
				"level": %q,
				"type": %q,
				"secname": %q%s
			}
		}
	}`, host, port, version, level, typ, secname, filter)
}

// SNMPTrapBody is the body of "show snmp trap" with the given trap rows.
// Each row is "class:description:enabled".
func SNMPTrapBody(rows ...[3]string) string {
	out := ""
	for i, r := range rows {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{
			"trap_type": %q,
			"description": %q,
			"isEnabled": %q
		}`, r[0], r[1], r[2])
	}
	return fmt.Sprintf(`{"TABLE_snmp_trap": {"ROW_snmp_trap": [%s]}}`, out)
}

// FeatureText is the output of "show feature" in text mode.
const FeatureText = `Feature Name          Instance  State
--------------------  --------  --------
bgp                   1         disabled
eigrp                 1         disabled
eigrp                 2         disabled
interface-vlan        1         enabled
lacp                  1         enabled
ospf                  1         enabled(not-running)
vpc                   1         disabled
`

// VersionBody is the body of "show version".
const VersionBody = `{
	"header_str": "Cisco Nexus Operating System (NX-OS) Software",
	"bios_ver_str": "07.69",
	"kickstart_ver_str": "9.3(10)",
	"rr_sys_ver": "9.3(10)",
	"chassis_id": "Nexus9000 C9396PX Chassis",
	"cpu_name": "Intel(R) Core(TM) i3 CPU",
	"memory": 16401088,
	"mem_type": "kB",
	"proc_board_id": "SAL18391DFG",
	"host_name": "n9k-leaf-01",
	"kern_uptm_days": 12,
	"kern_uptm_hrs": 4,
	"kern_uptm_mins": 36,
	"kern_uptm_secs": 55
}`

// InterfaceStatusBody is the body of "show interface status".
const InterfaceStatusBody = `{
	"TABLE_interface": {
		"ROW_interface": [
			{"interface": "mgmt0", "state": "connected", "vlan": "routed", "speed": "1000", "type": "--"},
			{"interface": "Ethernet1/1", "state": "connected", "vlan": "1", "speed": "10G", "type": "10g"},
			{"interface": "Ethernet1/2", "state": "disabled", "vlan": "1", "speed": "auto", "type": "10g"}
		]
	}
}`

// CDPNeighborsBody is the body of "show cdp neighbors".
const CDPNeighborsBody = `{
	"neigh_count": 2,
	"TABLE_cdp_neighbor_brief_info": {
		"ROW_cdp_neighbor_brief_info": [
			{"ifindex": 83886080, "device_id": "n9k-spine-01(FOX1234ABCD)", "intf_id": "mgmt0", "ttl": 148, "capability": ["router", "switch"], "platform_id": "N9K-C9336PQ", "port_id": "mgmt0"},
			{"ifindex": 436207616, "device_id": "n9k-spine-01(FOX1234ABCD)", "intf_id": "Ethernet1/1", "ttl": 148, "capability": ["router", "switch"], "platform_id": "N9K-C9336PQ", "port_id": "Ethernet1/49"}
		]
	}
}`

// LLDPNeighborsBody is the body of "show lldp neighbors".
const LLDPNeighborsBody = `{
	"neigh_hdr": "Capability codes",
	"TABLE_nbor": {
		"ROW_nbor": [
			{"chassis_id": "n9k-spine-01", "l_port_id": "Eth1/1", "hold_time": 120, "capability": "BR", "port_id": "Eth1/49"}
		]
	}
}`
