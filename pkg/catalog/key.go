package catalog

import (
	"slices"
	"strings"
)

// CourseKey computes the identity of the section a row belongs to.
// Combined class numbers are split on commas, trimmed and sorted, so
// "102, 101" and "101,102" yield the same key. Without combined classes
// the row's own class number is the key.
func CourseKey(r Row) string {
	var parts []string
	for _, p := range strings.Split(r.Get(ColCombinedClasses), ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return r.Get(ColClassNumber)
	}
	slices.Sort(parts)
	parts = slices.Compact(parts)
	return strings.Join(parts, ",")
}

// Group holds all rows that describe one logical section.
type Group struct {
	Key  string
	Rows []Row
}

// GroupRows partitions rows by course key. Groups come back sorted by
// key and keep the original row order inside each group. Rows without
// any key cannot be attributed to a section and are returned separately.
func GroupRows(rows []Row) ([]Group, []Row) {
	byKey := make(map[string][]Row)
	var unkeyed []Row
	for _, r := range rows {
		k := CourseKey(r)
		if k == "" {
			unkeyed = append(unkeyed, r)
			continue
		}
		byKey[k] = append(byKey[k], r)
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	res := make([]Group, len(keys))
	for i, k := range keys {
		res[i] = Group{Key: k, Rows: byKey[k]}
	}
	return res, unkeyed
}
