package usecase

import (
	"context"

	"crm-admin-gateway/internal/crm"
	repo "crm-admin-gateway/internal/crm/repository"
	"crm-admin-gateway/internal/model"
	"crm-admin-gateway/pkg/odata"
)

// List returns a paginated page of an entity set from the backend.
//
// The OData query is assembled from the console's query state; the entity's
// static $expand is merged afterwards so an explicit expand in the state
// would win over the default.
func (uc *implUseCase) List(ctx context.Context, input crm.ListInput) (crm.ListOutput, error) {
	spec, ok := model.LookupEntitySpec(input.EntitySet)
	if !ok {
		return crm.ListOutput{}, crm.ErrUnknownEntitySet
	}

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = spec.DefaultOrderBy
	}

	query := odata.BuildQuery(odata.QueryState{
		SearchTerm:    input.SearchTerm,
		SortBy:        sortBy,
		Filters:       input.Filters,
		FilterOptions: spec.Filters,
		CurrentPage:   input.CurrentPage,
		PageSize:      input.PageSize,
	})
	if spec.Expand != "" {
		query = odata.MergeQuery(query, []odata.Param{{Key: "$expand", Value: spec.Expand}})
	}

	records, count, err := uc.repo.ListEntities(ctx, repo.ListEntitiesOptions{
		Set:      spec.Set,
		RawQuery: query,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEntities: %v", err)
		return crm.ListOutput{}, err
	}

	return crm.ListOutput{
		Records:  records,
		Count:    count,
		Page:     input.CurrentPage,
		PageSize: input.PageSize,
	}, nil
}
