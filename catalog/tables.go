package catalog

import "fmt"

// Full returns the complete font table in authored order
// The order is hand-arranged; do not build it with Alphabetical
func Full() []Descriptor {
	return []Descriptor{
		{"Acorn", Size8x8, "acorn"},
		{"Alloy", Size12x12, "alloy"},
		{"Anikki", Size8x8, "anikki"},
		{"AnikkiSquare", Size10x10, "anikkisquare"},
		{"Buddy", Size10x10, "buddy"},
		{"BuddyGraphical", Size10x10, "buddygraphical"},
		{"CGAThick", Size8x8, "cgathick"},
		{"CGAThin", Size8x8, "cgathin"},
		{"Cheepicus", Size8x8, "cheepicus8"},
		{"Cheepicus", Size12x12, "cheepicus12"},
		{"Cheepicus", Size14x14, "cheepicus14"},
		{"Cheepicus", Size15x15, "cheepicus15"},
		{"Curses", Size12x12, "curses"},
		{"DB", Size12x12, "db"},
		{"DDW", Size10x10, "ddw"},
		{"Dullard", Size12x12, "dullard"},
		{"Geti", Size12x12, "geti"},
		{"Haberdash", Size12x12, "haberdash"},
		{"Herrbdog", Size7x7, "herrbdog7"},
		{"Herrbdog", Size12x12, "herrbdog12"},
		{"Jdpage", Size8x8, "jdpage"},
		{"Kein", Size12x12, "kein"},
		{"Kren", Size13x13, "kren"},
		{"LN", Size8x8, "ln"},
		{"LordNightmare", Size6x6, "nightmare"},
		{"MarkVII", Size12x12, "markvii"},
		{"MKV", Size12x12, "mkv"},
		{"MKVSolid", Size12x12, "mkvsolid"},
		{"Nice", Size12x12, "nice"},
		{"Nobbins", Size12x12, "nobbins"},
		{"Nostalgia", Size12x12, "nostalgia"},
		{"Pastiche", Size8x8, "pastiche"},
		{"Paul", Size12x12, "paul"},
		{"Potash", Size8x8, "potash8"},
		{"Potash", Size10x10, "potash10"},
		{"RDE", Size8x8, "rde"},
		{"SmoothWalls", Size10x10, "smoothwalls"},
		{"Taffer", Size10x10, "taffer"},
		{"Talryth", Size15x15, "talryth"},
		{"Terbert", Size7x7, "terbert7"},
		{"Terbert", Size10x10, "terbert10"},
		{"Terminus", Size10x10, "terminus"},
		{"TilesetUnknown", Size8x8, "tilesetunknown"},
		{"Tocky", Size10x10, "tocky"},
		{"Unknown", Size12x12, "unknown"},
		{"Vidumec", Size15x15, "vidumec"},
		{"Yayo", Size8x8, "yayo8"},
		{"Yayo", Size13x13, "yayo13"},
		{"Zaratustra", Size5x5, "zaratustra5"},
		{"Zaratustra", Size8x8, "zaratustra8"},
		{"Zesty", Size12x12, "zesty"},
	}
}

// Classic returns the first, smaller table, meant to be sorted by name
func Classic() []Descriptor {
	return []Descriptor{
		{"Acorn", Size8x8, "acorn"},
		{"Anikki", Size8x8, "anikki"},
		{"CGAThick", Size8x8, "cgathick"},
		{"CGAThin", Size8x8, "cgathin"},
		{"Cheepicus", Size8x8, "cheepicus8"},
		{"Jdpage", Size8x8, "jdpage"},
		{"LN", Size8x8, "ln"},
		{"LordNightmare", Size6x6, "nightmare"},
		{"Pastiche", Size8x8, "pastiche"},
		{"Potash", Size8x8, "potash8"},
		{"RDE", Size8x8, "rde"},
		{"Yayo", Size8x8, "yayo8"},
		{"Zaratustra", Size8x8, "zaratustra8"},
	}
}

// Table resolves a table name to its entries and native ordering
func Table(name string) ([]Descriptor, Ordering, error) {
	switch name {
	case "full", "":
		return Full(), Authored, nil
	case "classic":
		return Classic(), Alphabetical, nil
	}
	return nil, Authored, fmt.Errorf("unknown catalog table %q", name)
}
