package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/fontview/catalog"
	"github.com/lixenwraith/fontview/config"
)

// runList prints the catalog the previewer would page through, optionally ranked by a fuzzy name query
// Table and ordering come from config; -table overrides the configured table
func runList(cfgPath string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", cfgPath, "Config file")
	match := fs.String("match", "", "Rank fonts by closeness to this name")
	table := fs.String("table", "", "Font table: full or classic (default from config)")
	limit := fs.Int("limit", 0, "Maximum rows with -match (0 = all)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "list: %v\n", err)
		return 1
	}
	if *table != "" {
		cfg.Catalog.Table = *table
	}

	entries, order, err := cfg.CatalogEntries()
	if err != nil {
		fmt.Fprintf(stderr, "list: %v\n", err)
		return 1
	}
	cat, err := catalog.New(entries, order)
	if err != nil {
		fmt.Fprintf(stderr, "list: %v\n", err)
		return 1
	}

	var rows []catalog.Match
	if *match != "" {
		rows = cat.Rank(*match, *limit)
	} else {
		rows = make([]catalog.Match, cat.Size())
		for i := range rows {
			rows[i] = catalog.Match{Index: i, Descriptor: cat.At(i)}
		}
	}

	io.WriteString(stdout, renderList(lipgloss.NewRenderer(stdout), cat, rows))
	return 0
}

func renderList(r *lipgloss.Renderer, cat *catalog.Catalog, rows []catalog.Match) string {
	headerStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	indexStyle := r.NewStyle().Foreground(lipgloss.Color("#7f849c")).Width(4).Align(lipgloss.Right)
	nameStyle := r.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	sizeStyle := r.NewStyle().Foreground(lipgloss.Color("#fab387"))
	keyStyle := r.NewStyle().Foreground(lipgloss.Color("#bac2de"))

	nameWidth := len("Name")
	for _, m := range rows {
		nameWidth = max(nameWidth, len(m.Descriptor.Name))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d fonts, %s order", cat.Size(), cat.Ordering())))
	b.WriteString("\n")
	for _, m := range rows {
		d := m.Descriptor
		b.WriteString(indexStyle.Render(fmt.Sprint(m.Index)))
		b.WriteString("  ")
		b.WriteString(nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, d.Name)))
		b.WriteString("  ")
		b.WriteString(sizeStyle.Render(fmt.Sprintf("%-5s", d.Size)))
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(d.AssetKey))
		b.WriteString("\n")
	}
	return b.String()
}
