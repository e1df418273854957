package util

import "strings"

// SplitCommaSeparated splits a comma-separated string and trims whitespace from each element.
// Empty input returns nil.
func SplitCommaSeparated(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// InterfaceType classifies an NX-OS interface by name prefix.
type InterfaceType string

const (
	InterfaceEthernet    InterfaceType = "ethernet"
	InterfaceSVI         InterfaceType = "svi"
	InterfaceLoopback    InterfaceType = "loopback"
	InterfaceManagement  InterfaceType = "management"
	InterfacePortChannel InterfaceType = "portchannel"
	InterfaceUnknown     InterfaceType = "unknown"
)

// GetInterfaceType returns the interface type for a full or abbreviated
// interface name (e.g. "Ethernet1/1", "eth1/1", "Vlan20", "po10").
func GetInterfaceType(name string) InterfaceType {
	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "et"):
		return InterfaceEthernet
	case strings.HasPrefix(lower, "vl"):
		return InterfaceSVI
	case strings.HasPrefix(lower, "lo"):
		return InterfaceLoopback
	case strings.HasPrefix(lower, "m"):
		return InterfaceManagement
	case strings.HasPrefix(lower, "po"):
		return InterfacePortChannel
	default:
		return InterfaceUnknown
	}
}

// canonical long-form prefixes per interface type
var interfacePrefixes = map[InterfaceType]string{
	InterfaceEthernet:    "Ethernet",
	InterfaceSVI:         "Vlan",
	InterfaceLoopback:    "loopback",
	InterfaceManagement:  "mgmt",
	InterfacePortChannel: "port-channel",
}

// NormalizeInterfaceName expands an abbreviated interface name to the full
// form the device reports ("eth1/1" -> "Ethernet1/1", "po10" -> "port-channel10").
// Unknown prefixes are returned unchanged.
func NormalizeInterfaceName(name string) string {
	ifType := GetInterfaceType(name)
	prefix, ok := interfacePrefixes[ifType]
	if !ok {
		return name
	}

	// Number part starts at the first digit
	numStart := -1
	for i, c := range name {
		if c >= '0' && c <= '9' {
			numStart = i
			break
		}
	}
	if numStart < 0 {
		return name
	}

	return prefix + name[numStart:]
}

// IsDigits returns true if s is a non-empty string of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
