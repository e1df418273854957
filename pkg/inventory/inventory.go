// Package inventory loads the YAML device inventory used to resolve device
// names into connection settings.
package inventory

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/util"
)

// Device is one inventory entry.
type Device struct {
	// Host is the address to connect to; defaults to the entry name.
	Host     string `yaml:"host,omitempty"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	// Transport selects http, https or ssh. Defaults to http.
	Transport string `yaml:"transport,omitempty"`
	Port      int    `yaml:"port,omitempty"`
	// Timeout is the per-request timeout in seconds.
	Timeout int `yaml:"timeout,omitempty"`
	// Insecure skips TLS certificate verification for https.
	Insecure bool `yaml:"insecure,omitempty"`
}

// Inventory maps device names to their connection settings. Defaults apply
// to every device that leaves the field unset.
type Inventory struct {
	Defaults Device            `yaml:"defaults"`
	Devices  map[string]Device `yaml:"devices"`
}

// DefaultPath returns the inventory location used when --inventory is not
// given.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "inventory.yml"
	}
	return filepath.Join(home, ".nexctl", "inventory.yml")
}

// Load reads an inventory file. A missing file yields an empty inventory,
// not an error, so a bare --host invocation works without one.
func Load(path string) (*Inventory, error) {
	inv := &Inventory{Devices: map[string]Device{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return inv, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, inv); err != nil {
		return nil, fmt.Errorf("parsing inventory %s: %w", path, err)
	}
	if inv.Devices == nil {
		inv.Devices = map[string]Device{}
	}
	return inv, nil
}

// Names returns the device names in the inventory.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.Devices))
	for name := range inv.Devices {
		names = append(names, name)
	}
	return names
}

// Resolve looks up a device and merges it over the inventory defaults.
func (inv *Inventory) Resolve(name string) (Device, error) {
	entry, ok := inv.Devices[name]
	if !ok {
		return Device{}, fmt.Errorf("device %q: %w", name, util.ErrNotFound)
	}

	merged := inv.Defaults
	if entry.Host != "" {
		merged.Host = entry.Host
	}
	if entry.Username != "" {
		merged.Username = entry.Username
	}
	if entry.Password != "" {
		merged.Password = entry.Password
	}
	if entry.Transport != "" {
		merged.Transport = entry.Transport
	}
	if entry.Port != 0 {
		merged.Port = entry.Port
	}
	if entry.Timeout != 0 {
		merged.Timeout = entry.Timeout
	}
	if entry.Insecure {
		merged.Insecure = true
	}
	if merged.Host == "" {
		merged.Host = name
	}
	if merged.Transport == "" {
		merged.Transport = "http"
	}
	return merged, nil
}

// ClientConfig converts a resolved device into an nxapi client config.
func (d Device) ClientConfig() nxapi.Config {
	scheme := d.Transport
	if scheme == "ssh" {
		scheme = ""
	}
	return nxapi.Config{
		Host:     d.Host,
		Username: d.Username,
		Password: d.Password,
		Scheme:   scheme,
		Port:     d.Port,
		Timeout:  time.Duration(d.Timeout) * time.Second,
		Insecure: d.Insecure,
	}
}
