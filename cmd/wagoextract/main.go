// Command wagoextract downloads the wago.tools item tables, denormalizes
// them, and writes filtered category datasets as CSV, Lua, or parquet.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"wagoextract/core"
	"wagoextract/export"
	"wagoextract/loader"
	"wagoextract/schema"
)

type options struct {
	outputDir  string
	rawDir     string
	namespace  string
	categories []string
	lua        bool
	splitLua   bool
	parquet    bool
	food       bool
	drinks     bool
	potions    bool
	list       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error: %v", err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "wagoextract",
		Short:         "Extract and denormalize wago.tools item data",
		Long:          "wagoextract downloads the Item, ItemSparse, ItemXItemEffect, ItemEffect and SpellCategory tables, joins them into one flat dataset, and writes the requested category selections.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				printCategories(cmd)
				return nil
			}
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.outputDir, "output-dir", "o", "data/processed", "target directory for processed artifacts")
	flags.StringVarP(&opts.rawDir, "raw-dir", "r", "data/raw", "local cache directory for upstream datasets")
	flags.StringSliceVarP(&opts.categories, "categories", "c", nil, "category presets to extract (e.g. potions, weapon, plate)")
	flags.BoolVarP(&opts.lua, "lua", "l", false, "enable Lua module generation")
	flags.StringVarP(&opts.namespace, "namespace", "n", "MyAddon", "global table identifier used in Lua output")
	flags.BoolVar(&opts.splitLua, "split-lua", false, "save each category to a separate .lua file instead of merging")
	flags.BoolVar(&opts.parquet, "parquet", false, "enable parquet generation, one file per category")
	flags.BoolVar(&opts.food, "food", false, "shortcut for --categories food")
	flags.BoolVar(&opts.drinks, "drinks", false, "shortcut for --categories drinks")
	flags.BoolVar(&opts.potions, "potions", false, "shortcut for --categories potions")
	flags.BoolVar(&opts.list, "list", false, "list all available category presets, then exit")

	return cmd
}

// selectedCategories merges the -c list with the shortcut flags, normalized
// and deduplicated; with no selection at all the standard consumable
// presets apply.
func selectedCategories(opts *options) []string {
	seen := map[string]bool{}
	var selected []string
	add := func(name string) {
		n := schema.NormalizePreset(name)
		if !seen[n] {
			seen[n] = true
			selected = append(selected, n)
		}
	}

	for _, name := range opts.categories {
		add(name)
	}
	if opts.food {
		add("food")
	}
	if opts.drinks {
		add("drinks")
	}
	if opts.potions {
		add("potions")
	}

	if len(selected) == 0 {
		return schema.DefaultPresets
	}
	return selected
}

func run(cmd *cobra.Command, opts *options) error {
	start := time.Now()
	categories := selectedCategories(opts)

	pipeline := core.NewPipeline(loader.New(loader.NewClient(""), opts.rawDir))
	result, err := pipeline.Run(cmd.Context(), categories)
	if err != nil {
		return err
	}

	artifacts, err := export.Write(result, export.Options{
		Dir:       opts.outputDir,
		Namespace: opts.namespace,
		Lua:       opts.lua,
		SplitLua:  opts.splitLua,
		Parquet:   opts.parquet,
	})
	if err != nil {
		return err
	}

	printSummary(cmd, artifacts, time.Since(start))
	return nil
}

func printSummary(cmd *cobra.Command, artifacts []export.Artifact, elapsed time.Duration) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"File Type", "Filename", "Items"})
	for _, a := range artifacts {
		table.Append([]string{a.Kind, a.Name, strconv.Itoa(a.Items)})
	}
	table.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "%s %.2fs\n", color.GreenString("Done!"), elapsed.Seconds())
}

func printCategories(cmd *cobra.Command) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Identifier", "Classes", "Subclasses", "Spell Categories"})
	for _, name := range schema.PresetNames() {
		preset, _ := schema.ResolvePreset(name)
		table.Append([]string{
			name,
			joinInts(preset.Classes),
			joinInts(preset.Subclasses),
			dashEmpty(strings.Join(preset.SpellCategories, ",")),
		})
	}
	table.Render()
	fmt.Fprintln(cmd.OutOrStdout(), "Use these with -c/--categories. Semantic presets match on the item effect's spell category.")
}

func joinInts(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return dashEmpty(strings.Join(parts, ","))
}

func dashEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
