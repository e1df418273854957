// Package playbook runs YAML-defined task lists against inventory devices.
// A playbook names its target hosts and an ordered list of tasks; each task
// invokes one resource module with loosely-typed params that are decoded into
// the module's argument struct.
package playbook

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexctl/nexctl/pkg/util"
)

// Task is one step of a playbook.
type Task struct {
	Name   string                 `yaml:"name"`
	Module string                 `yaml:"module"`
	Params map[string]interface{} `yaml:"params"`
}

// Playbook is an ordered task list applied to a set of hosts.
type Playbook struct {
	Name  string   `yaml:"name"`
	Hosts []string `yaml:"hosts"`
	Tasks []Task   `yaml:"tasks"`
}

// Load reads and validates a playbook file.
func Load(path string) (*Playbook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	pb := &Playbook{}
	if err := yaml.Unmarshal(data, pb); err != nil {
		return nil, fmt.Errorf("parsing playbook %s: %w", path, err)
	}
	if err := pb.validate(); err != nil {
		return nil, err
	}
	return pb, nil
}

func (pb *Playbook) validate() error {
	v := &util.ValidationBuilder{}
	v.Add(len(pb.Hosts) > 0, "playbook has no hosts")
	v.Add(len(pb.Tasks) > 0, "playbook has no tasks")
	for i, task := range pb.Tasks {
		if task.Module == "" {
			v.AddErrorf("task %d (%s) has no module", i+1, task.Name)
			continue
		}
		if _, ok := modules[task.Module]; !ok {
			v.AddErrorf("task %d (%s): unknown module %q", i+1, task.Name, task.Module)
		}
	}
	return v.Build()
}
