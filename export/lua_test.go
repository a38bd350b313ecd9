package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wagoextract/core"
)

func TestWriteLuaLayout(t *testing.T) {
	result := core.Result{
		"potion": {
			{ID: 2000, Name: "New Potion", ExpansionID: 9},
			{ID: 118, Name: "Minor Healing Potion", ExpansionID: 0},
			{ID: 117, Name: "Lesser Healing Potion", ExpansionID: 0},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLua(&buf, "MyAddon", result))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, "MyAddon = MyAddon or {}\n"))
	require.Contains(t, out, "MyAddon.POTION = {")
	require.Contains(t, out, "[0] = { -- CLASSIC")
	require.Contains(t, out, "[9] = { -- DRAGONFLIGHT")
	require.Contains(t, out, `[117] = "Lesser Healing Potion",`)

	// Expansion groups ascend, and items ascend by ID inside a group.
	require.Less(t, strings.Index(out, "[0] = {"), strings.Index(out, "[9] = {"))
	require.Less(t, strings.Index(out, "[117]"), strings.Index(out, "[118]"))
}

func TestWriteLuaEscaping(t *testing.T) {
	result := core.Result{
		"weapon": {{ID: 1, Name: `Slicer "Deluxe" \ Co.`, ExpansionID: 0}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLua(&buf, "NS", result))
	require.Contains(t, buf.String(), `[1] = "Slicer \"Deluxe\" \\ Co.",`)
}

func TestWriteLuaMultipleCategoriesSorted(t *testing.T) {
	result := core.Result{
		"weapon": {{ID: 1, Name: "Sword", ExpansionID: 0}},
		"armor":  {{ID: 2, Name: "Helm", ExpansionID: 0}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLua(&buf, "NS", result))
	out := buf.String()
	require.Less(t, strings.Index(out, "NS.ARMOR"), strings.Index(out, "NS.WEAPON"))
}
