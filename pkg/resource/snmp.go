package resource

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/nexctl/nexctl/pkg/nxapi"
	"github.com/nexctl/nexctl/pkg/reconcile"
	"github.com/nexctl/nexctl/pkg/util"
)

// SNMPCommunity reconciles one SNMP community string: its group and optional
// ACL filter. "show snmp community" lists every community, so the read
// filters to the identity.
func SNMPCommunity() *reconcile.Spec {
	return &reconcile.Spec{
		Kind: "snmp_community",
		Validate: func(identity string, desired map[string]string) error {
			v := &util.ValidationBuilder{}
			v.Add(identity != "", "community string is required")
			return v.Build()
		},
		ReadExisting: readSNMPCommunity,
		GenerateCommands: func(delta, proposed, existing reconcile.Record, identity string) []string {
			var commands []string
			if group, ok := delta["group"]; ok {
				commands = append(commands, fmt.Sprintf("snmp-server community %s group %s", identity, group))
			}
			if acl, ok := delta["acl"]; ok {
				commands = append(commands, fmt.Sprintf("snmp-server community %s use-acl %s", identity, acl))
			}
			return commands
		},
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			return []string{"no snmp-server community " + identity}
		},
	}
}

func readSNMPCommunity(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
	body, err := c.Show(ctx, "show snmp community")
	if err != nil {
		return nil, err
	}

	fields := reconcile.FieldMap{
		"grouporaccess": "group",
		"aclfilter":     "acl",
	}
	for _, row := range nxapi.Rows(body, "TABLE_snmp_community.ROW_snmp_community") {
		if row.Get("community_name").String() != identity {
			continue
		}
		return reconcile.ApplyKeyMap(fields, row), nil
	}
	return reconcile.Record{}, nil
}

// SNMPHost reconciles one SNMP notification receiver: traps or informs,
// protocol version, v3 security level, community, UDP port, source interface
// and VRF settings. The host command's positional syntax makes both the read
// and the generation hooks.
func SNMPHost() *reconcile.Spec {
	return &reconcile.Spec{
		Kind:             "snmp_host",
		Validate:         validateSNMPHost,
		ReadExisting:     readSNMPHost,
		GenerateCommands: snmpHostCommands,
		AbsentCommands:   snmpHostRemoval,
	}
}

func validateSNMPHost(identity string, desired map[string]string) error {
	v := &util.ValidationBuilder{}
	v.Add(identity != "", "snmp host address is required")

	if typ := desired["snmp_type"]; typ != "" && typ != "trap" && typ != "inform" {
		v.AddErrorf("snmp_type must be trap or inform, got %q", typ)
	}
	version := desired["version"]
	if version != "" && version != "v1" && version != "v2c" && version != "v3" {
		v.AddErrorf("version must be v1, v2c or v3, got %q", version)
	}
	if level := desired["v3"]; level != "" {
		if version != "v3" {
			v.AddError("v3 security level requires version v3")
		}
		if level != "noauth" && level != "auth" && level != "priv" {
			v.AddErrorf("v3 must be noauth, auth or priv, got %q", level)
		}
	}
	if desired["snmp_type"] == "inform" && version == "v1" {
		v.AddError("informs are not supported with version v1")
	}

	return v.Build()
}

func readSNMPHost(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
	body, err := c.Show(ctx, "show snmp host")
	if err != nil {
		return nil, err
	}

	fields := reconcile.FieldMap{
		"port":    "udp",
		"version": "version",
		"level":   "v3",
		"type":    "snmp_type",
		"secname": "community",
	}
	for _, row := range nxapi.Rows(body, "TABLE_host.ROW_host") {
		if row.Get("host").String() != identity {
			continue
		}
		record := reconcile.ApplyKeyMap(fields, row)

		// Source interface and VRF values come back "key:value".
		if src := row.Get("src_intf").String(); src != "" {
			record["src_intf"] = afterColon(src)
		}
		if vrf := row.Get("vrf").String(); vrf != "" {
			record["vrf"] = afterColon(vrf)
		}
		if filt := row.Get("TABLE_vrf_filters.ROW_vrf_filters.vrf_filter").String(); filt != "" {
			record["vrf_filter"] = normalizeVRFFilter(filt)
		}
		return record, nil
	}
	return reconcile.Record{}, nil
}

func afterColon(s string) string {
	if i := strings.Index(s, ":"); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return strings.TrimSpace(s)
}

func normalizeVRFFilter(filter string) string {
	parts := util.SplitCommaSeparated(afterColon(filter))
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

// snmpHostCommands builds the positional host command when the notification
// parameters change, plus one command per changed modifier. The positional
// form must restate type, version, level and community together, pulling
// unchanged values from existing state.
func snmpHostCommands(delta, proposed, existing reconcile.Record, identity string) []string {
	var commands []string

	if fieldChanged(delta, "snmp_type", "version", "v3", "community") {
		builder := []string{"snmp-server host " + identity}
		if typ := pick(delta, existing, "snmp_type"); typ != "" {
			builder = append(builder, typ)
		}
		if version := pick(delta, existing, "version"); version != "" {
			builder = append(builder, "version "+strings.TrimPrefix(version, "v"))
		}
		if level := pick(delta, existing, "v3"); level != "" {
			builder = append(builder, level)
		}
		if community := pick(delta, existing, "community"); community != "" {
			builder = append(builder, community)
		}
		commands = append(commands, strings.Join(builder, " "))
	}

	modifiers := []struct{ field, template string }{
		{"vrf_filter", "snmp-server host %s filter-vrf %s"},
		{"vrf", "snmp-server host %s use-vrf %s"},
		{"udp", "snmp-server host %s udp-port %s"},
		{"src_intf", "snmp-server host %s source-interface %s"},
	}
	for _, m := range modifiers {
		if value, ok := delta[m.field]; ok {
			commands = append(commands, fmt.Sprintf(m.template, identity, value))
		}
	}

	return commands
}

// snmpHostRemoval restates the configured receiver in "no" form; the device
// refuses a bare "no snmp-server host".
func snmpHostRemoval(identity string, existing reconcile.Record) []string {
	typ := existing["snmp_type"]
	version := strings.TrimPrefix(existing["version"], "v")
	community := existing["community"]

	parts := []string{"no snmp-server host " + identity}
	if typ != "" {
		parts = append(parts, typ)
	}
	parts = append(parts, "version "+version)
	if existing["version"] == "v3" {
		parts = append(parts, existing["v3"])
	}
	if community != "" {
		parts = append(parts, community)
	}
	return []string{strings.Join(parts, " ")}
}

func fieldChanged(delta reconcile.Record, fields ...string) bool {
	for _, f := range fields {
		if _, ok := delta[f]; ok {
			return true
		}
	}
	return false
}

func pick(delta, existing reconcile.Record, field string) string {
	if v, ok := delta[field]; ok {
		return v
	}
	return existing[field]
}

var (
	snmpContactRE  = regexp.MustCompile(`snmp-server\s+contact\s+(.+)`)
	snmpLocationRE = regexp.MustCompile(`snmp-server\s+location\s+(.+)`)
)

// SNMPContact reconciles the single snmp-server contact string. The value
// only appears in the running config, so the read is a text parse.
func SNMPContact() *reconcile.Spec {
	return snmpScalar("snmp_contact", "contact", snmpContactRE)
}

// SNMPLocation reconciles the snmp-server location string.
func SNMPLocation() *reconcile.Spec {
	return snmpScalar("snmp_location", "location", snmpLocationRE)
}

func snmpScalar(kind, field string, re *regexp.Regexp) *reconcile.Spec {
	return &reconcile.Spec{
		Kind: kind,
		Commands: reconcile.CommandTable{
			Templates: map[string]string{
				field: "snmp-server " + field + " {value}",
			},
		},
		ReadExisting: func(ctx context.Context, c reconcile.Client, identity string) (reconcile.Record, error) {
			out, err := c.ShowText(ctx, "show run snmp")
			if err != nil {
				return nil, err
			}
			if m := re.FindStringSubmatch(out); m != nil {
				return reconcile.Record{field: strings.TrimSpace(m[1])}, nil
			}
			return reconcile.Record{}, nil
		},
		AbsentCommands: func(identity string, existing reconcile.Record) []string {
			return []string{"no snmp-server " + field}
		},
	}
}

// snmpTrapGroups is the set of trap groups NX-OS exposes.
var snmpTrapGroups = []string{
	"aaa", "bridge", "callhome", "cfs", "config", "entity",
	"feature-control", "hsrp", "license", "link", "lldp", "ospf", "pim",
	"rf", "rmon", "snmp", "storm-control", "stpx", "sysmgr", "system",
	"upgrade", "vtp",
}

// TrapState is the enable state of the traps in one group.
type TrapState struct {
	Group string `json:"group"`
	// Enabled and Disabled count the individual traps in the group.
	Enabled  int `json:"enabled"`
	Disabled int `json:"disabled"`
}

// ReadSNMPTraps returns the per-group trap enable state, keyed by group.
func ReadSNMPTraps(ctx context.Context, c reconcile.Client) (map[string]*TrapState, error) {
	body, err := c.Show(ctx, "show snmp trap")
	if err != nil {
		return nil, err
	}

	states := make(map[string]*TrapState, len(snmpTrapGroups))
	for _, group := range snmpTrapGroups {
		states[group] = &TrapState{Group: group}
	}

	for _, row := range nxapi.Rows(body, "TABLE_snmp_trap.ROW_snmp_trap") {
		group := row.Get("trap_type").String()
		state, ok := states[group]
		if !ok {
			continue
		}
		if strings.EqualFold(row.Get("isEnabled").String(), "yes") {
			state.Enabled++
		} else {
			state.Disabled++
		}
	}
	return states, nil
}

// SNMPTrapsResult reports a trap group reconciliation.
type SNMPTrapsResult struct {
	Group       string   `json:"group"`
	Commands    []string `json:"commands"`
	Changed     bool     `json:"changed"`
	WouldChange bool     `json:"would_change,omitempty"`
}

// ReconcileSNMPTraps enables or disables a trap group, or every group when
// the group is "all". A group already in the requested state yields no
// commands.
func ReconcileSNMPTraps(ctx context.Context, c reconcile.Client, group string, enable bool, opts reconcile.Options) (*SNMPTrapsResult, error) {
	if group != "all" && !knownTrapGroup(group) {
		return nil, util.NewValidationError(fmt.Sprintf("unknown trap group %q", group))
	}

	states, err := ReadSNMPTraps(ctx, c)
	if err != nil {
		return nil, err
	}

	var groups []string
	if group == "all" {
		groups = snmpTrapGroups
	} else {
		groups = []string{group}
	}

	var commands []string
	for _, g := range groups {
		state := states[g]
		switch {
		case enable && state.Disabled > 0:
			commands = append(commands, "snmp-server enable traps "+g)
		case !enable && state.Enabled > 0:
			commands = append(commands, "no snmp-server enable traps "+g)
		}
	}

	result := &SNMPTrapsResult{Group: group, Commands: commands}
	if len(commands) == 0 {
		return result, nil
	}
	if opts.DryRun {
		result.WouldChange = true
		return result, nil
	}
	if err := c.Config(ctx, commands); err != nil {
		return nil, err
	}
	result.Changed = true
	return result, nil
}

func knownTrapGroup(group string) bool {
	for _, g := range snmpTrapGroups {
		if g == group {
			return true
		}
	}
	return false
}
