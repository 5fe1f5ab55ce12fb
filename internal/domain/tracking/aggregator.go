package tracking

import "sort"

// Tab identifies a dashboard filter tab.
type Tab string

const (
	TabAll     Tab = "all"
	TabTickets Tab = "tickets"
	TabOrders  Tab = "orders"
	TabQuotes  Tab = "quotes"
)

var validTabs = map[Tab]bool{
	TabAll:     true,
	TabTickets: true,
	TabOrders:  true,
	TabQuotes:  true,
}

func (t Tab) IsValid() bool {
	return validTabs[t]
}

// Summary holds the per-category counts for a set of items.
type Summary struct {
	Total     int
	Pending   int
	Active    int
	Completed int
}

// MergeTimeline concatenates the given collections into one timeline sorted
// by creation time, newest first. Ties are broken by (kind, id) ascending so
// the ordering is deterministic across calls.
func MergeTimeline(collections ...[]Item) []Item {
	var merged []Item
	for _, c := range collections {
		merged = append(merged, c...)
	}

	sort.SliceStable(merged, func(a, b int) bool {
		ia, ib := merged[a], merged[b]
		if !ia.CreatedAt.Equal(ib.CreatedAt) {
			return ia.CreatedAt.After(ib.CreatedAt)
		}
		if ia.Kind != ib.Kind {
			return ia.Kind < ib.Kind
		}
		return ia.ID < ib.ID
	})

	return merged
}

// FilterByTab returns the items matching a dashboard tab: "tickets" covers
// both ticket kinds, "orders" both work-order kinds, "quotes" is an exact
// kind match and "all" is the identity.
func FilterByTab(items []Item, tab Tab) []Item {
	if tab == TabAll {
		return items
	}

	var filtered []Item
	for _, item := range items {
		switch tab {
		case TabTickets:
			if item.Kind.IsTicket() {
				filtered = append(filtered, item)
			}
		case TabOrders:
			if item.Kind.IsWorkOrder() {
				filtered = append(filtered, item)
			}
		case TabQuotes:
			if item.Kind == KindQuote {
				filtered = append(filtered, item)
			}
		}
	}
	return filtered
}

// Summarize counts items per canonical status category. It reads the already
// classified Status field so the counts can never drift from what Classify
// produced at projection time.
func Summarize(items []Item) Summary {
	s := Summary{Total: len(items)}
	for _, item := range items {
		switch item.Status {
		case CategoryPending:
			s.Pending++
		case CategoryActive:
			s.Active++
		case CategoryCompleted:
			s.Completed++
		}
	}
	return s
}
