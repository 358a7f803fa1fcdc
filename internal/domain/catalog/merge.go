package catalog

import "sort"

// Merge combines the compiled-in base list with the user-extended custom
// list into a single catalog sorted by code point. Duplicates across the two
// sources are removed by case-sensitive exact match only; case-insensitive
// duplicate prevention happens at insertion time (Service.Add), not here, so
// "X" and "x" can coexist post-merge if both were already seeded.
func Merge(base, custom []string) []string {
	seen := make(map[string]struct{}, len(base)+len(custom))
	merged := make([]string, 0, len(base)+len(custom))
	for _, list := range [][]string{base, custom} {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}
	sort.Strings(merged)
	return merged
}
