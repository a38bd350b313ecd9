package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"wagoextract/core"
)

func TestWriteSplitPartitions(t *testing.T) {
	dir := t.TempDir()
	result := core.Result{
		"weapon": {{ID: 1, Name: "Sword", Class: "WEAPON", ExpansionID: 0}},
		"armor":  {{ID: 2, Name: "Helm", Class: "ARMOR", ExpansionID: 0}},
	}

	artifacts, err := Write(result, Options{
		Dir:       dir,
		Namespace: "NS",
		Lua:       true,
		SplitLua:  true,
	})
	require.NoError(t, err)
	require.Len(t, artifacts, 4) // two CSVs, two Lua partitions

	// Each partition stream contains exactly its own rows.
	weaponLua, err := os.ReadFile(filepath.Join(dir, "weapon.lua"))
	require.NoError(t, err)
	require.Contains(t, string(weaponLua), "Sword")
	require.NotContains(t, string(weaponLua), "Helm")

	armorLua, err := os.ReadFile(filepath.Join(dir, "armor.lua"))
	require.NoError(t, err)
	require.Contains(t, string(armorLua), "Helm")
	require.NotContains(t, string(armorLua), "Sword")

	weaponCSV, err := os.ReadFile(filepath.Join(dir, "weapon.csv"))
	require.NoError(t, err)
	require.Contains(t, string(weaponCSV), "Sword")
	require.NotContains(t, string(weaponCSV), "Helm")
}

func TestWriteMergedLua(t *testing.T) {
	dir := t.TempDir()
	result := core.Result{
		"weapon": {{ID: 1, Name: "Sword", ExpansionID: 0}},
		"armor":  {{ID: 2, Name: "Helm", ExpansionID: 0}},
	}

	artifacts, err := Write(result, Options{Dir: dir, Namespace: "NS", Lua: true})
	require.NoError(t, err)

	merged, err := os.ReadFile(filepath.Join(dir, "data.lua"))
	require.NoError(t, err)
	require.Contains(t, string(merged), "NS.WEAPON")
	require.Contains(t, string(merged), "NS.ARMOR")

	var kinds []string
	for _, a := range artifacts {
		kinds = append(kinds, a.Kind+":"+a.Name)
	}
	require.Contains(t, strings.Join(kinds, " "), "Lua Module:data.lua")
}

func TestWriteSkipsEmptyCategories(t *testing.T) {
	dir := t.TempDir()
	result := core.Result{
		"weapon": {{ID: 1, Name: "Sword", ExpansionID: 0}},
		"glyph":  nil,
	}

	artifacts, err := Write(result, Options{Dir: dir})
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	_, err = os.Stat(filepath.Join(dir, "glyph.csv"))
	require.True(t, os.IsNotExist(err))
}
