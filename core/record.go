package core

import (
	"strconv"
	"strings"

	"wagoextract/schema"
)

// Record is the immutable, serializable projection of one composite row.
// Parquet tags drive the parquet export schema.
type Record struct {
	ID            int64  `parquet:"id"`
	Name          string `parquet:"name"`
	Class         string `parquet:"class"`
	SubclassID    int64  `parquet:"subclass_id"`
	Quality       string `parquet:"quality"`
	ItemLevel     int64  `parquet:"item_level"`
	ReqLevel      int64  `parquet:"req_level"`
	ExpansionID   int64  `parquet:"expansion_id"`
	Expansion     string `parquet:"expansion"`
	SpellCategory string `parquet:"spell_category"`
	Description   string `parquet:"description"`
}

// Header is the output column order, declared once per run and shared by
// every serialized row.
func Header() []string {
	return []string{
		"ID", "Name", "Class", "SubclassID", "Quality",
		"ItemLevel", "ReqLevel", "Expansion", "SpellCategory", "Description",
	}
}

// Fields renders the record's values in Header order.
func (r Record) Fields() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		r.Class,
		strconv.FormatInt(r.SubclassID, 10),
		r.Quality,
		strconv.FormatInt(r.ItemLevel, 10),
		strconv.FormatInt(r.ReqLevel, 10),
		r.Expansion,
		r.SpellCategory,
		r.Description,
	}
}

// BuildRecord projects a composite row into its output record. Numeric
// codes resolve to their symbolic names here, so serializers deal only in
// final values.
func BuildRecord(row CompositeRow) Record {
	id, _ := row.Int("ID")
	classID, _ := row.Int("ClassID")
	subclassID, _ := row.Int("SubclassID")
	qualityID, _ := row.Int("OverallQualityID")
	itemLevel, _ := row.Int("ItemLevel")
	reqLevel, _ := row.Int("RequiredLevel")
	expansionID, _ := row.Int("ExpansionID")

	category := ""
	if row.Matched(schema.TableSpellCategory) {
		category = cleanText(row.Text("SpellCategoryName"))
	}

	return Record{
		ID:            id,
		Name:          cleanText(row.Text("Name")),
		Class:         schema.ItemClass(classID).String(),
		SubclassID:    subclassID,
		Quality:       schema.ItemQuality(qualityID).String(),
		ItemLevel:     itemLevel,
		ReqLevel:      reqLevel,
		ExpansionID:   expansionID,
		Expansion:     schema.ExpansionName(expansionID),
		SpellCategory: category,
		Description:   cleanText(row.Text("Description")),
	}
}

// cleanText normalizes localized upstream text: carriage returns dropped,
// newlines flattened to spaces, double quotes removed, surrounding
// whitespace trimmed.
func cleanText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, `"`, "")
	return strings.TrimSpace(s)
}
