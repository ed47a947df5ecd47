package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one ranked catalog entry
type Match struct {
	Index      int
	Descriptor Descriptor
	Distance   int
}

// Rank orders entries by edit distance between query and name
// Prefix hits score zero; ties keep catalog order. limit <= 0 returns all entries
func (c *Catalog) Rank(query string, limit int) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	matches := make([]Match, len(c.entries))
	for i, d := range c.entries {
		name := strings.ToLower(d.Name)
		dist := 0
		if q != "" && !strings.HasPrefix(name, q) {
			dist = levenshtein.ComputeDistance(q, name)
		}
		matches[i] = Match{Index: i, Descriptor: d, Distance: dist}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches
}
