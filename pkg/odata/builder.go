package odata

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildQuery maps a QueryState into an OData v4 query string.
//
// Parameter order is fixed: $search, $orderby, $filter, then always
// $top, $skip and $count=true. The result always starts with "?" and is
// never empty since the pagination parameters are unconditional.
func BuildQuery(state QueryState) string {
	params := make([]string, 0, 6)

	if state.SearchTerm != "" {
		params = append(params, "$search="+url.QueryEscape(state.SearchTerm))
	}

	if state.SortBy != "" {
		params = append(params, "$orderby="+url.QueryEscape(state.SortBy))
	}

	// Predicates follow the schema order of FilterOptions, not map order.
	var predicates []string
	for _, opt := range state.FilterOptions {
		value := state.Filters[opt.Key]
		if value == "" {
			continue
		}

		// OData single-quoted literal escaping: ' doubles to ''.
		escaped := strings.ReplaceAll(value, "'", "''")

		switch opt.Type {
		case FilterSelect:
			predicates = append(predicates, fmt.Sprintf("%s eq '%s'", opt.Key, escaped))
		default:
			// "text" and any unknown type fall back to contains().
			predicates = append(predicates, fmt.Sprintf("contains(%s, '%s')", opt.Key, escaped))
		}
	}
	if len(predicates) > 0 {
		params = append(params, "$filter="+url.QueryEscape(strings.Join(predicates, " and ")))
	}

	params = append(params,
		fmt.Sprintf("$top=%d", state.PageSize),
		fmt.Sprintf("$skip=%d", (state.CurrentPage-1)*state.PageSize),
		"$count=true",
	)

	return "?" + strings.Join(params, "&")
}
