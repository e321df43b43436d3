package odata

import "maps"

// Pager resets the pagination cursor to page 1 whenever the search term,
// sort expression, or filter map changes value between observations.
// Pagination-only changes and the first observation never trigger a reset.
// Not safe for concurrent use; hold one Pager per listing session.
type Pager struct {
	started     bool
	lastSearch  string
	lastSort    string
	lastFilters map[string]string
}

// Apply records the state and returns it with CurrentPage rewound to 1
// when any non-pagination input changed since the previous call.
func (p *Pager) Apply(state QueryState) QueryState {
	changed := p.started &&
		(state.SearchTerm != p.lastSearch ||
			state.SortBy != p.lastSort ||
			!maps.Equal(state.Filters, p.lastFilters))

	p.started = true
	p.lastSearch = state.SearchTerm
	p.lastSort = state.SortBy
	// Copy: the caller may mutate its map between observations, and the
	// comparison must be by value, not identity.
	p.lastFilters = maps.Clone(state.Filters)

	if changed {
		state.CurrentPage = 1
	}
	return state
}
