package schema

import "fmt"

// ItemClass is the top-level item classification code carried by Item.ClassID.
type ItemClass int64

const (
	ClassConsumable        ItemClass = 0
	ClassContainer         ItemClass = 1
	ClassWeapon            ItemClass = 2
	ClassGem               ItemClass = 3
	ClassArmor             ItemClass = 4
	ClassReagent           ItemClass = 5
	ClassProjectile        ItemClass = 6
	ClassTradeskill        ItemClass = 7
	ClassItemEnhancement   ItemClass = 8
	ClassRecipe            ItemClass = 9
	ClassMoneyObsolete     ItemClass = 10
	ClassQuiver            ItemClass = 11
	ClassQuest             ItemClass = 12
	ClassKey               ItemClass = 13
	ClassPermanentObsolete ItemClass = 14
	ClassMiscellaneous     ItemClass = 15
	ClassGlyph             ItemClass = 16
	ClassBattlePets        ItemClass = 17
	ClassWoWToken          ItemClass = 18
	ClassProfession        ItemClass = 19
	ClassHousing           ItemClass = 20
)

var classNames = map[ItemClass]string{
	ClassConsumable:        "CONSUMABLE",
	ClassContainer:         "CONTAINER",
	ClassWeapon:            "WEAPON",
	ClassGem:               "GEM",
	ClassArmor:             "ARMOR",
	ClassReagent:           "REAGENT",
	ClassProjectile:        "PROJECTILE",
	ClassTradeskill:        "TRADESKILL",
	ClassItemEnhancement:   "ITEM_ENHANCEMENT",
	ClassRecipe:            "RECIPE",
	ClassMoneyObsolete:     "MONEY_OBSOLETE",
	ClassQuiver:            "QUIVER",
	ClassQuest:             "QUEST",
	ClassKey:               "KEY",
	ClassPermanentObsolete: "PERMANENT_OBSOLETE",
	ClassMiscellaneous:     "MISCELLANEOUS",
	ClassGlyph:             "GLYPH",
	ClassBattlePets:        "BATTLE_PETS",
	ClassWoWToken:          "WOW_TOKEN",
	ClassProfession:        "PROFESSION",
	ClassHousing:           "HOUSING",
}

func (c ItemClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", int64(c))
}

// Consumable subclass codes (Item.SubclassID under ClassConsumable).
// Subclass codes are context-dependent on the class.
const (
	SubclassPotion      int64 = 1
	SubclassElixir      int64 = 2
	SubclassFlask       int64 = 3
	SubclassFoodDrink   int64 = 5
	SubclassBandage     int64 = 7
	SubclassVantusRunes int64 = 9
)

// Armor subclass codes (under ClassArmor).
const (
	SubclassCloth   int64 = 1
	SubclassLeather int64 = 2
	SubclassMail    int64 = 3
	SubclassPlate   int64 = 4
	SubclassShield  int64 = 6
)

// ItemQuality is the rarity code carried by ItemSparse.OverallQualityID.
type ItemQuality int64

var qualityNames = map[ItemQuality]string{
	0: "POOR",
	1: "COMMON",
	2: "UNCOMMON",
	3: "RARE",
	4: "EPIC",
	5: "LEGENDARY",
	6: "ARTIFACT",
	7: "HEIRLOOM",
}

func (q ItemQuality) String() string {
	if name, ok := qualityNames[q]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", int64(q))
}

var expansionNames = map[int64]string{
	-3: "UNKNOWN_ID",
	0:  "CLASSIC",
	1:  "THE_BURNING_CRUSADE",
	2:  "WRATH_OF_THE_LICH_KING",
	3:  "CATACLYSM",
	4:  "MISTS_OF_PANDARIA",
	5:  "WARLORDS_OF_DRAENOR",
	6:  "LEGION",
	7:  "BATTLE_FOR_AZEROTH",
	8:  "SHADOWLANDS",
	9:  "DRAGONFLIGHT",
	10: "THE_WAR_WITHIN",
	11: "MIDNIGHT",
}

// ExpansionName resolves an ExpansionID to its symbolic name. IDs outside
// the known range render as UNKNOWN_<id> rather than failing, since new
// expansions appear upstream before they appear here.
func ExpansionName(id int64) string {
	if name, ok := expansionNames[id]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_%d", id)
}
