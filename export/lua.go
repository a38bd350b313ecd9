package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"wagoextract/core"
	"wagoextract/schema"
)

// WriteLua renders the categories as a Lua module: one global namespace
// table, one <NS>.<CATEGORY> table per category, records grouped by
// expansion and keyed by explicit item ID (never positionally, so addon
// code can index items directly). Both grouping levels are emitted in
// ascending numeric order.
func WriteLua(w io.Writer, namespace string, categories core.Result) error {
	if _, err := fmt.Fprintf(w, "%s = %s or {}\n", namespace, namespace); err != nil {
		return err
	}

	for _, name := range sortedCategoryNames(categories) {
		if _, err := fmt.Fprintf(w, "%s.%s = {\n", namespace, strings.ToUpper(name)); err != nil {
			return err
		}

		byExpansion := map[int64][]core.Record{}
		for _, rec := range categories[name] {
			byExpansion[rec.ExpansionID] = append(byExpansion[rec.ExpansionID], rec)
		}
		expansions := make([]int64, 0, len(byExpansion))
		for id := range byExpansion {
			expansions = append(expansions, id)
		}
		sort.Slice(expansions, func(i, j int) bool { return expansions[i] < expansions[j] })

		for _, expID := range expansions {
			if _, err := fmt.Fprintf(w, "   [%d] = { -- %s\n", expID, schema.ExpansionName(expID)); err != nil {
				return err
			}
			for _, rec := range sortedByID(byExpansion[expID]) {
				if _, err := fmt.Fprintf(w, "     [%d] = \"%s\",\n", rec.ID, escapeLua(rec.Name)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, "   },"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "}"); err != nil {
			return err
		}
	}
	return nil
}

func sortedCategoryNames(categories core.Result) []string {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var luaEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
)

// escapeLua makes a string safe inside a double-quoted Lua literal.
func escapeLua(s string) string {
	return luaEscaper.Replace(s)
}
