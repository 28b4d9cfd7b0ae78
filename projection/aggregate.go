// Package projection builds local timelines from fetched dings.
// Handles ordering, grouping by conversation partner and the view state.
// Does not talk to a node or render anything.
package projection

import (
	"slices"
	"time"

	"dinger/domain/ding"

	"github.com/samber/lo"
)

// Merge concatenates received and sent dings. No de-duplication happens:
// a ding addressed to oneself shows up in both lists and is kept twice.
func Merge(received, sent []ding.Ding) []ding.Ding {
	merged := make([]ding.Ding, 0, len(received)+len(sent))
	merged = append(merged, received...)
	return append(merged, sent...)
}

// SortByTimestamp returns a copy ordered by ascending instant.
// The sort is stable so ties keep their merge order, and dings whose
// timestamp cannot be parsed are placed first.
func SortByTimestamp(dings []ding.Ding) []ding.Ding {
	sorted := slices.Clone(dings)
	slices.SortStableFunc(sorted, func(a, b ding.Ding) int {
		return sortKey(a).Compare(sortKey(b))
	})
	return sorted
}

func sortKey(d ding.Ding) time.Time {
	t, _ := d.Instant()
	return t
}

// Partner returns the other party of a ding seen from local.
func Partner(d ding.Ding, local string) string {
	if d.Sender == local {
		return d.Recipient
	}
	return d.Sender
}

// GroupByPartner buckets dings by conversation partner, keeping input order
// inside each bucket.
func GroupByPartner(dings []ding.Ding, local string) map[string][]ding.Ding {
	return lo.GroupBy(dings, func(d ding.Ding) string {
		return Partner(d, local)
	})
}
