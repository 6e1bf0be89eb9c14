package rules

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"gol-editor/pkg/core"
)

// Preset family names.
const (
	FamilyBS  = "B/S"
	FamilyLtL = "LtL"
)

var bsPresets = map[string]string{
	"Life":        "B3/S23",
	"3/4 Life":    "B34/S34",
	"Replicator":  "B1357/S1357",
	"Day & Night": "B3678/S34678",
	"Diamoeba":    "B35678/S5678",
	"Morley":      "B368/S245",
	"2x2":         "B36/S125",
	"HighLife":    "B36/S23",
	"Coagulation": "B378/S235678",
	"Mazectric":   "B3/S1234",
	"Maze":        "B3/S12345",
	"CoralLife":   "B3/S45678",
	"Bacteria":    "B34/S456",
	"Insects":     "B3567/S15678",
	"Holstein":    "B35678/S4678",
	"H-Trees":     "B1/S012345678",
	"Anti-Life":   "B0123478/S01234678",
}

var ltlPresets = map[string]string{
	"Bugs":          "R5,C0,M1,S34..58,B34..45,NM",
	"BugsMovie":     "R10,C0,M1,S123..212,B123..170,NM",
	"smallBugs":     "R3,C0,M1,S14..23,B14..18,NM",
	"Globe":         "R8,C0,M0,S163..223,B74..252,NM",
	"Majority":      "R4,C0,M1,S41..81,B41..81,NM",
	"Waffle":        "R7,C0,M1,S100..200,B75..170,NM",
	"Pellets":       "R4,C0,M1,S29..55,B36..62,NM",
	"LtLDiamonds":   "R3,C0,M1,S5..46,B23..36,NM",
	"Webs":          "R5,C0,M1,S38..113,B61..64,NM",
	"Chambers":      "R9,C0,M0,S43..225,B163..250,NM",
	"screamingBear": "R8,C0,M1,S141..184,B15..176,NM",
}

var families = map[string]map[string]string{
	FamilyBS:  bsPresets,
	FamilyLtL: ltlPresets,
}

// Families lists the preset family names.
func Families() []string {
	return slices.Sorted(maps.Keys(families))
}

// Presets returns a copy of the name -> rulestring table for family.
func Presets(family string) (map[string]string, bool) {
	table, ok := families[family]
	if !ok {
		return nil, false
	}
	return maps.Clone(table), true
}

// Names lists the preset names of family in sorted order.
func Names(family string) []string {
	return slices.Sorted(maps.Keys(families[family]))
}

// Preset returns the rulestring stored under name in family.
func Preset(family, name string) (string, bool) {
	s, ok := families[family][name]
	return s, ok
}

// Lookup parses the preset called name, searching every family.
func Lookup(name string) (*RuleSet, error) {
	for _, family := range Families() {
		if s, ok := families[family][name]; ok {
			return Parse(s)
		}
	}
	return nil, fmt.Errorf("rules: unknown preset %q", name)
}

// Rulestring keywords understood by Resolve.
const (
	KeywordRandom  = "random"
	KeywordDefault = "default"
)

// FamilyOf names the notation family r is written in.
func FamilyOf(r *RuleSet) string {
	if r.IsLtL() {
		return FamilyLtL
	}
	return FamilyBS
}

// DefaultFor returns the starting rule of family: B3/S23 for B/S and the Bugs
// preset for LtL.
func DefaultFor(family string) (*RuleSet, error) {
	switch family {
	case FamilyBS:
		return Default(), nil
	case FamilyLtL:
		return Parse(ltlPresets["Bugs"])
	default:
		return nil, fmt.Errorf("rules: unknown family %q", family)
	}
}

// Resolve reads s the way the rule input does. "random" draws a rulestring of
// family from rng and "default" returns DefaultFor(family). Anything else is
// parsed, falling back to a preset name; the Parse error is returned when
// neither matches.
func Resolve(family, s string, rng *core.RNG) (*RuleSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case KeywordRandom:
		rs, err := RandomRulestring(family, rng)
		if err != nil {
			return nil, err
		}
		return Parse(rs)
	case KeywordDefault:
		return DefaultFor(family)
	}
	r, err := Parse(s)
	if err == nil {
		return r, nil
	}
	if preset, lookupErr := Lookup(s); lookupErr == nil {
		return preset, nil
	}
	return nil, err
}
