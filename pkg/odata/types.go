package odata

// FilterType declares how a filter value is rendered into an OData predicate.
type FilterType string

const (
	// FilterSelect renders as an exact match: `Key eq 'value'`.
	FilterSelect FilterType = "select"
	// FilterText renders as a substring match: `contains(Key, 'value')`.
	FilterText FilterType = "text"
)

// FilterOption is one entry of the static filter schema for an entity set.
// Schema order is significant: predicates are emitted in this order.
type FilterOption struct {
	Key  string
	Type FilterType
}

// QueryState is the ephemeral search/sort/filter/pagination state held by
// the caller. It is never persisted.
type QueryState struct {
	SearchTerm    string
	SortBy        string
	Filters       map[string]string
	FilterOptions []FilterOption

	// CurrentPage must be >= 1 and PageSize > 0; BuildQuery does not
	// validate and will happily produce a negative $skip otherwise.
	CurrentPage int
	PageSize    int
}

// Param is a single query parameter for MergeQuery. A slice of Params keeps
// the caller-provided application order, which a Go map cannot.
type Param struct {
	Key   string
	Value string
}
