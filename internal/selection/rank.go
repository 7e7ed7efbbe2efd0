package selection

import (
	"strconv"
	"strings"
)

// ReorderRanked moves item to the given 1-based rank.
//
// The item is first removed; other items keep their relative order. A rank in
// 1..universe reinserts it at index min(rank-1, len(rest)). Any other rank leaves
// the item unranked. The result never holds more than universe entries.
func ReorderRanked(current []string, item string, rank int, universe int) []string {
	rest := make([]string, 0, len(current)+1)
	for _, s := range current {
		if s != item {
			rest = append(rest, s)
		}
	}

	if rank >= 1 && rank <= universe {
		idx := rank - 1
		if idx > len(rest) {
			idx = len(rest)
		}
		rest = append(rest, "")
		copy(rest[idx+1:], rest[idx:])
		rest[idx] = item
	}

	if universe >= 0 && len(rest) > universe {
		rest = rest[:universe]
	}
	return rest
}

// ParseRank converts raw rank input to an int. Empty, non-numeric, or
// non-positive input yields 0, which callers treat as unranked.
func ParseRank(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// RankOf returns the 1-based rank of item in seq, or 0 when absent.
func RankOf(seq []string, item string) int {
	return indexOf(seq, item) + 1
}
