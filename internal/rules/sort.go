package rules

import (
	"cmp"
	"slices"
)

// Sort orders rules by start hour, then by minimum temperature. Unconstrained values sort after all concrete ones.
// Rules that compare equal keep their relative order.
func Sort(rules []Rule) {
	slices.SortStableFunc(rules, func(a, b Rule) int {
		if c := compareHour(a.StartHour, b.StartHour); c != 0 {
			return c
		}
		return compareTemp(a.MinTemp, b.MinTemp)
	})
}

func compareHour(a, b int) int {
	switch {
	case a == b:
		return 0
	case a == AnyHour:
		return 1
	case b == AnyHour:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}

func compareTemp(a, b float64) int {
	switch {
	case a == b:
		return 0
	case a == AnyTemp:
		return 1
	case b == AnyTemp:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}
