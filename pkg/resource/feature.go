package resource

import (
	"context"
	"strings"

	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// Feature reconciles one NX-OS feature toggle. "show feature" only has a
// usable shape in text mode, so the read parses the table by hand. A feature
// with several instances counts as enabled when any instance is.
func Feature() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "feature",
		Validate: func(identity string, desired map[string]string) error {
			v := &util.ValidationBuilder{}
			v.Add(identity != "", "feature name is required")
			if state := desired["state"]; state != "" && state != "enabled" && state != "disabled" {
				v.AddErrorf("state must be enabled or disabled, got %q", state)
			}
			return v.Build()
		},
		ReadExisting: readFeature,
		GenerateCommands: func(delta, proposed, existing reconcile.Record, identity string) []string {
			state, ok := delta["state"]
			if !ok {
				return nil
			}
			if state == "enabled" {
				return []string{"feature " + identity}
			}
			return []string{"no feature " + identity}
		},
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			if existing["state"] != "enabled" {
				return nil
			}
			return []string{"no feature " + identity}
		},
	}
}

func readFeature(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
	features, err := ListFeatures(ctx, c)
	if err != nil {
		return nil, err
	}
	state, ok := features[identity]
	if !ok {
		return reconcile.Record{}, nil
	}
	return reconcile.Record{"state": state}, nil
}

// ListFeatures parses "show feature" into feature name -> enabled/disabled.
// Qualified states like "enabled(not-running)" collapse to enabled.
func ListFeatures(ctx context.Context, c reconcile.Client) (map[string]string, error) {
	out, err := c.ShowText(ctx, "show feature")
	if err != nil {
		return nil, err
	}

	features := make(map[string]string)
	lines := strings.Split(out, "\n")
	if len(lines) <= 2 {
		return features, nil
	}
	// First two lines are the header and its underline.
	for _, line := range lines[2:] {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 3 {
			continue
		}
		name, state := fields[0], fields[2]
		if strings.Contains(state, "enabled") {
			state = "enabled"
		}
		if existing, ok := features[name]; ok && existing == "enabled" {
			continue
		}
		features[name] = state
	}
	return features, nil
}
