package reporting

import (
	"sort"
	"strings"
)

// FallbackBucket collects records whose name is absent or all-whitespace.
const FallbackBucket = "Другие"

type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountByName maps each trimmed name to its occurrence count. Blank names
// land in the fallback bucket. Pure: the same input always yields the same
// counts.
func CountByName(names []string) map[string]int {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		key := strings.TrimSpace(name)
		if key == "" {
			key = FallbackBucket
		}
		counts[key]++
	}
	return counts
}

// RankedCounts produces the count-descending ranking for a name sequence.
// Equal counts keep the order names were first seen in, so re-running over
// the same input is fully deterministic.
func RankedCounts(names []string) []NameCount {
	counts := CountByName(names)

	indexByName := make(map[string]int, len(counts))
	items := make([]NameCount, 0, len(counts))
	for _, name := range names {
		key := strings.TrimSpace(name)
		if key == "" {
			key = FallbackBucket
		}
		if _, seen := indexByName[key]; seen {
			continue
		}
		indexByName[key] = len(items)
		items = append(items, NameCount{Name: key, Count: counts[key]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})

	return items
}

// BarSeries projects a ranking into an index-aligned label/value pair for
// bar-chart rendering. Empty input yields empty (non-nil) slices.
func BarSeries(items []NameCount) ([]string, []int) {
	labels := make([]string, len(items))
	data := make([]int, len(items))
	for i, item := range items {
		labels[i] = item.Name
		data[i] = item.Count
	}
	return labels, data
}
