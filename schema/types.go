package schema

// Names of the upstream DB2 tables consumed by the pipeline.
const (
	TableItem            = "Item"
	TableItemSparse      = "ItemSparse"
	TableItemXItemEffect = "ItemXItemEffect"
	TableItemEffect      = "ItemEffect"
	TableSpellCategory   = "SpellCategory"
)

// Kind is the decoded type of a column value.
type Kind int

const (
	KindInt Kind = iota
	KindString
)

// Column maps an upstream CSV header to the name and type it carries
// through the pipeline. Source and Name differ only where the upstream
// header is localized (e.g. Display_lang).
type Column struct {
	Source string
	Name   string
	Kind   Kind
}

// Table is a fixed table schema, known ahead of any load. Key names the
// unique integer row key; link tables additionally carry foreign keys as
// ordinary int columns.
type Table struct {
	Name    string
	Key     string
	Columns []Column
}

// ColumnNames returns the pipeline-facing column names in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

var tables = map[string]Table{
	TableItem: {
		Name: TableItem,
		Key:  "ID",
		Columns: []Column{
			{Source: "ID", Name: "ID", Kind: KindInt},
			{Source: "ClassID", Name: "ClassID", Kind: KindInt},
			{Source: "SubclassID", Name: "SubclassID", Kind: KindInt},
		},
	},
	TableItemSparse: {
		Name: TableItemSparse,
		Key:  "ID",
		Columns: []Column{
			{Source: "ID", Name: "ID", Kind: KindInt},
			{Source: "Display_lang", Name: "Name", Kind: KindString},
			{Source: "Description_lang", Name: "Description", Kind: KindString},
			{Source: "OverallQualityID", Name: "OverallQualityID", Kind: KindInt},
			{Source: "ItemLevel", Name: "ItemLevel", Kind: KindInt},
			{Source: "RequiredLevel", Name: "RequiredLevel", Kind: KindInt},
			{Source: "Stackable", Name: "Stackable", Kind: KindInt},
			{Source: "SellPrice", Name: "SellPrice", Kind: KindInt},
			{Source: "ExpansionID", Name: "ExpansionID", Kind: KindInt},
		},
	},
	TableItemXItemEffect: {
		Name: TableItemXItemEffect,
		Key:  "ID",
		Columns: []Column{
			{Source: "ID", Name: "ID", Kind: KindInt},
			{Source: "ItemID", Name: "ItemID", Kind: KindInt},
			{Source: "ItemEffectID", Name: "ItemEffectID", Kind: KindInt},
		},
	},
	TableItemEffect: {
		Name: TableItemEffect,
		Key:  "ID",
		Columns: []Column{
			{Source: "ID", Name: "ID", Kind: KindInt},
			{Source: "TriggerType", Name: "TriggerType", Kind: KindInt},
			{Source: "SpellID", Name: "SpellID", Kind: KindInt},
			{Source: "SpellCategoryID", Name: "SpellCategoryID", Kind: KindInt},
		},
	},
	TableSpellCategory: {
		Name: TableSpellCategory,
		Key:  "ID",
		Columns: []Column{
			{Source: "ID", Name: "ID", Kind: KindInt},
			{Source: "Name_lang", Name: "SpellCategoryName", Kind: KindString},
		},
	},
}

// Lookup returns the declared schema for a table name.
func Lookup(name string) (Table, bool) {
	t, ok := tables[name]
	return t, ok
}

// RequiredTables lists every table a pipeline run loads, in a fixed order.
func RequiredTables() []string {
	return []string{
		TableItem,
		TableItemSparse,
		TableItemXItemEffect,
		TableItemEffect,
		TableSpellCategory,
	}
}
