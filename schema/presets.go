package schema

import (
	"sort"
	"strings"
)

// Preset is a named selection of denormalized rows. Each field is an
// independent criterion; an empty field leaves that criterion inactive.
// SpellCategories holds symbolic names resolved through SpellCategoryIDs.
type Preset struct {
	Name            string
	Classes         []int64
	Subclasses      []int64
	SpellCategories []string
}

// SpellCategoryIDs is the fixed symbolic-name -> SpellCategory.ID lookup
// used by category criteria. The IDs are stable upstream.
var SpellCategoryIDs = map[string]int64{
	"Food":  11,
	"Drink": 59,
}

var presets = map[string]Preset{
	"potion": {Name: "potion", Classes: []int64{int64(ClassConsumable)}, Subclasses: []int64{SubclassPotion}},
	"elixir": {Name: "elixir", Classes: []int64{int64(ClassConsumable)}, Subclasses: []int64{SubclassElixir}},
	"flask":  {Name: "flask", Classes: []int64{int64(ClassConsumable)}, Subclasses: []int64{SubclassFlask}},

	// Semantic presets keyed off the spell category of the item's effect.
	"food":  {Name: "food", SpellCategories: []string{"Food"}},
	"drink": {Name: "drink", SpellCategories: []string{"Drink"}},

	"consumable": {Name: "consumable", Classes: []int64{int64(ClassConsumable)}},
	"weapon":     {Name: "weapon", Classes: []int64{int64(ClassWeapon)}},
	"armor":      {Name: "armor", Classes: []int64{int64(ClassArmor)}},
	"gem":        {Name: "gem", Classes: []int64{int64(ClassGem)}},
	"reagent":    {Name: "reagent", Classes: []int64{int64(ClassReagent)}},
	"glyph":      {Name: "glyph", Classes: []int64{int64(ClassGlyph)}},

	"cloth":   {Name: "cloth", Classes: []int64{int64(ClassArmor)}, Subclasses: []int64{SubclassCloth}},
	"leather": {Name: "leather", Classes: []int64{int64(ClassArmor)}, Subclasses: []int64{SubclassLeather}},
	"mail":    {Name: "mail", Classes: []int64{int64(ClassArmor)}, Subclasses: []int64{SubclassMail}},
	"plate":   {Name: "plate", Classes: []int64{int64(ClassArmor)}, Subclasses: []int64{SubclassPlate}},
	"shield":  {Name: "shield", Classes: []int64{int64(ClassArmor)}, Subclasses: []int64{SubclassShield}},
}

// DefaultPresets is the selection used when the caller names no categories.
var DefaultPresets = []string{"food", "drink", "potion"}

// NormalizePreset lowercases a caller-supplied category name and strips a
// plural "s" when only the singular form is registered, so "Potions" and
// "weapon" both resolve.
func NormalizePreset(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if _, ok := presets[n]; ok {
		return n
	}
	if trimmed, found := strings.CutSuffix(n, "s"); found {
		if _, ok := presets[trimmed]; ok {
			return trimmed
		}
	}
	return n
}

// ResolvePreset looks up a normalized category name. ok is false for names
// with no registered preset.
func ResolvePreset(name string) (Preset, bool) {
	p, ok := presets[NormalizePreset(name)]
	return p, ok
}

// PresetNames lists every registered preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
