package resource

import (
	"context"
	"reflect"
	"testing"

	"github.com/nexctl/nexctl/internal/testutil"
)

func TestGatherFacts(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show version", testutil.VersionBody)
	c.StubShow("show interface status", testutil.InterfaceStatusBody)
	c.StubShow("show vlan", testutil.VLANBriefBody(1, 10))
	c.StubShowText("show feature", testutil.FeatureText)

	facts, err := GatherFacts(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if facts.Hostname != "n9k-leaf-01" {
		t.Errorf("hostname = %q, want n9k-leaf-01", facts.Hostname)
	}
	if facts.Platform != "Nexus9000 C9396PX Chassis" {
		t.Errorf("platform = %q", facts.Platform)
	}
	if facts.OS != "9.3(10)" {
		t.Errorf("os = %q, want 9.3(10)", facts.OS)
	}
	if facts.Uptime != "12d 4h 36m" {
		t.Errorf("uptime = %q, want 12d 4h 36m", facts.Uptime)
	}
	if len(facts.Interfaces) != 3 {
		t.Fatalf("got %d interfaces, want 3", len(facts.Interfaces))
	}
	if facts.Interfaces[1].Interface != "Ethernet1/1" || facts.Interfaces[1].State != "connected" {
		t.Errorf("interface[1] = %+v", facts.Interfaces[1])
	}
	if want := []int{1, 10}; !reflect.DeepEqual(facts.VLANs, want) {
		t.Errorf("vlans = %v, want %v", facts.VLANs, want)
	}
	if facts.Features["lacp"] != "enabled" {
		t.Errorf("features[lacp] = %q, want enabled", facts.Features["lacp"])
	}
}

func TestNeighborsCDP(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show cdp neighbors", testutil.CDPNeighborsBody)

	got, err := Neighbors(context.Background(), c, "cdp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Neighbor{
		{
			Neighbor:          "n9k-spine-01(FOX1234ABCD)",
			LocalInterface:    "mgmt0",
			NeighborInterface: "mgmt0",
		},
		{
			Neighbor:          "n9k-spine-01(FOX1234ABCD)",
			LocalInterface:    "Ethernet1/1",
			NeighborInterface: "Ethernet1/49",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNeighborsLLDP(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show lldp neighbors", testutil.LLDPNeighborsBody)

	got, err := Neighbors(context.Background(), c, "lldp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Neighbor{
		{
			Neighbor:          "n9k-spine-01",
			LocalInterface:    "Eth1/1",
			NeighborInterface: "Eth1/49",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNeighborsEmpty(t *testing.T) {
	c := testutil.NewFakeClient()
	c.StubShow("show cdp neighbors", "")

	got, err := Neighbors(context.Background(), c, "cdp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
