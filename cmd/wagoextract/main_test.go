package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectedCategoriesNormalization(t *testing.T) {
	opts := &options{categories: []string{"Weapons", "potions", "PLATE"}}
	require.Equal(t, []string{"weapon", "potion", "plate"}, selectedCategories(opts))
}

func TestSelectedCategoriesShortcutFlags(t *testing.T) {
	opts := &options{food: true, drinks: true}
	require.Equal(t, []string{"food", "drink"}, selectedCategories(opts))
}

func TestSelectedCategoriesDeduplicates(t *testing.T) {
	opts := &options{categories: []string{"food", "foods"}, food: true}
	require.Equal(t, []string{"food"}, selectedCategories(opts))
}

func TestSelectedCategoriesDefault(t *testing.T) {
	require.Equal(t, []string{"food", "drink", "potion"}, selectedCategories(&options{}))
}

func TestFlagsRegistered(t *testing.T) {
	cmd := newRootCommand()
	for _, name := range []string{
		"output-dir", "raw-dir", "categories", "lua", "namespace",
		"split-lua", "parquet", "food", "drinks", "potions", "list",
	} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
