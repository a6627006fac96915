package common

import (
	"sort"
)

// SortedUnique returns the distinct values of vars in ascending order.
// The input is left untouched.
func SortedUnique(vars []int) []int {
	seen := make(map[int]struct{}, len(vars))
	result := make([]int, 0, len(vars))

	for _, v := range vars {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	sort.Ints(result)
	return result
}
