package util

import (
	"reflect"
	"testing"
)

func TestGetInterfaceType(t *testing.T) {
	tests := []struct {
		name string
		want InterfaceType
	}{
		{"Ethernet1/1", InterfaceEthernet},
		{"eth1/1", InterfaceEthernet},
		{"Vlan20", InterfaceSVI},
		{"vlan20", InterfaceSVI},
		{"loopback10", InterfaceLoopback},
		{"lo10", InterfaceLoopback},
		{"mgmt0", InterfaceManagement},
		{"port-channel20", InterfacePortChannel},
		{"po20", InterfacePortChannel},
		{"tunnel5", InterfaceUnknown},
	}

	for _, tt := range tests {
		if got := GetInterfaceType(tt.name); got != tt.want {
			t.Errorf("GetInterfaceType(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNormalizeInterfaceName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"eth1/1", "Ethernet1/1"},
		{"Ethernet1/1", "Ethernet1/1"},
		{"vlan20", "Vlan20"},
		{"po100", "port-channel100"},
		{"portchannel100", "port-channel100"},
		{"lo2", "loopback2"},
		{"mgmt0", "mgmt0"},
		{"tunnel5", "tunnel5"}, // unknown prefix passes through
	}

	for _, tt := range tests {
		if got := NormalizeInterfaceName(tt.in); got != tt.want {
			t.Errorf("NormalizeInterfaceName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitCommaSeparated(t *testing.T) {
	got := SplitCommaSeparated(" a, b ,, c ")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitCommaSeparated = %v, want %v", got, want)
	}
	if SplitCommaSeparated("") != nil {
		t.Error("empty input should return nil")
	}
}

func TestIsDigits(t *testing.T) {
	if !IsDigits("123") {
		t.Error("123 is digits")
	}
	if IsDigits("") || IsDigits("12a") {
		t.Error("empty and mixed strings are not digits")
	}
}
