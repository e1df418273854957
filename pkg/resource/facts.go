package resource

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
)

// Facts is a read-only snapshot of device identity and inventory.
type Facts struct {
	Hostname   string            `json:"hostname"`
	Platform   string            `json:"platform"`
	OS         string            `json:"os"`
	Kickstart  string            `json:"kickstart,omitempty"`
	Uptime     string            `json:"uptime,omitempty"`
	Interfaces []InterfaceStatus `json:"interfaces"`
	VLANs      []int             `json:"vlan_list"`
	Features   map[string]string `json:"features,omitempty"`
}

// InterfaceStatus is one row of "show interface status".
type InterfaceStatus struct {
	Interface string `json:"interface"`
	State     string `json:"state"`
	VLAN      string `json:"vlan,omitempty"`
	Speed     string `json:"speed,omitempty"`
	Type      string `json:"type,omitempty"`
}

// Neighbor is one discovered CDP or LLDP neighbor.
type Neighbor struct {
	Neighbor          string `json:"neighbor"`
	LocalInterface    string `json:"local_interface"`
	NeighborInterface string `json:"neighbor_interface"`
}

// GatherFacts collects version, interface and VLAN facts from the device.
func GatherFacts(ctx context.Context, c reconcile.Client) (*Facts, error) {
	facts := &Facts{}

	version, err := c.Show(ctx, "show version")
	if err != nil {
		return nil, err
	}
	facts.Hostname = version.Get("host_name").String()
	facts.Platform = version.Get("chassis_id").String()
	facts.OS = version.Get("rr_sys_ver").String()
	facts.Kickstart = version.Get("kickstart_ver_str").String()
	facts.Uptime = formatUptime(version)

	status, err := c.Show(ctx, "show interface status")
	if err != nil {
		return nil, err
	}
	for _, row := range nxapi.Rows(status, "TABLE_interface.ROW_interface") {
		facts.Interfaces = append(facts.Interfaces, InterfaceStatus{
			Interface: row.Get("interface").String(),
			State:     row.Get("state").String(),
			VLAN:      row.Get("vlan").String(),
			Speed:     row.Get("speed").String(),
			Type:      row.Get("type").String(),
		})
	}

	vlans, err := ListVLANs(ctx, c)
	if err != nil {
		return nil, err
	}
	facts.VLANs = vlans

	features, err := ListFeatures(ctx, c)
	if err != nil {
		return nil, err
	}
	facts.Features = features

	return facts, nil
}

func formatUptime(version gjson.Result) string {
	days := version.Get("kern_uptm_days").Int()
	hours := version.Get("kern_uptm_hrs").Int()
	mins := version.Get("kern_uptm_mins").Int()
	if days == 0 && hours == 0 && mins == 0 {
		return ""
	}
	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}

// Neighbors reads the CDP or LLDP neighbor table. The proto argument selects
// which; anything but "lldp" means CDP.
func Neighbors(ctx context.Context, c reconcile.Client, proto string) ([]Neighbor, error) {
	command := "show cdp neighbors"
	rowsPath := "TABLE_cdp_neighbor_brief_info.ROW_cdp_neighbor_brief_info"
	fields := [3]string{"device_id", "intf_id", "port_id"}
	if proto == "lldp" {
		command = "show lldp neighbors"
		rowsPath = "TABLE_nbor.ROW_nbor"
		fields = [3]string{"chassis_id", "l_port_id", "port_id"}
	}

	body, err := c.Show(ctx, command)
	if err != nil {
		return nil, err
	}

	var neighbors []Neighbor
	for _, row := range nxapi.Rows(body, rowsPath) {
		neighbors = append(neighbors, Neighbor{
			Neighbor:          row.Get(fields[0]).String(),
			LocalInterface:    row.Get(fields[1]).String(),
			NeighborInterface: row.Get(fields[2]).String(),
		})
	}
	return neighbors, nil
}
