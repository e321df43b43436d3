package repository

import "crm-admin-gateway/internal/model"

// ListEntitiesOptions holds parameters for listing records of one set.
// RawQuery is a complete OData query string (leading "?" included) as
// produced by the query builder; the repository appends it verbatim.
type ListEntitiesOptions struct {
	Set      model.EntitySet
	RawQuery string
}

// ListTasksOptions holds filter parameters for the dashboard task fetch.
type ListTasksOptions struct {
	Owner string // optional OwnerId filter
	Limit int    // max records to pull (default 500)
}
