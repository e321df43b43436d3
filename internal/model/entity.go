package model

import (
	"sort"

	"crm-admin-gateway/pkg/odata"
)

// EnvironmentName values used across the service.
type EnvironmentName string

const (
	EnvironmentDevelopment EnvironmentName = "development"
	EnvironmentProduction  EnvironmentName = "production"
)

// EntitySet is the OData collection name of a CRM entity.
type EntitySet string

const (
	EntityAccounts      EntitySet = "Accounts"
	EntityContacts      EntitySet = "Contacts"
	EntityLeads         EntitySet = "Leads"
	EntityIssues        EntitySet = "Issues"
	EntityOpportunities EntitySet = "Opportunities"
	EntityEmployees     EntitySet = "Employees"
	EntityTasks         EntitySet = "Tasks"
	EntityWorkflowRules EntitySet = "WorkflowRules"
)

// EntitySpec is the static per-entity-set metadata: how its list screen
// sorts by default, what it expands, and which filters it renders.
type EntitySpec struct {
	Set            EntitySet
	DefaultOrderBy string
	Expand         string
	Filters        []odata.FilterOption
}

// entitySpecs mirrors the admin console's screen configuration. Filter
// schema order drives $filter predicate order.
var entitySpecs = map[EntitySet]EntitySpec{
	EntityAccounts: {
		Set:            EntityAccounts,
		DefaultOrderBy: "Name asc",
		Expand:         "Contacts",
		Filters: []odata.FilterOption{
			{Key: "Industry", Type: odata.FilterSelect},
			{Key: "Name", Type: odata.FilterText},
		},
	},
	EntityContacts: {
		Set:            EntityContacts,
		DefaultOrderBy: "LastName asc,FirstName asc",
		Expand:         "Account",
		Filters: []odata.FilterOption{
			{Key: "AccountId", Type: odata.FilterSelect},
			{Key: "LastName", Type: odata.FilterText},
			{Key: "Email", Type: odata.FilterText},
		},
	},
	EntityLeads: {
		Set:            EntityLeads,
		DefaultOrderBy: "CreatedAt desc",
		Filters: []odata.FilterOption{
			{Key: "Status", Type: odata.FilterSelect},
			{Key: "Source", Type: odata.FilterSelect},
			{Key: "Company", Type: odata.FilterText},
		},
	},
	EntityIssues: {
		Set:            EntityIssues,
		DefaultOrderBy: "CreatedAt desc",
		Expand:         "Account",
		Filters: []odata.FilterOption{
			{Key: "Severity", Type: odata.FilterSelect},
			{Key: "Status", Type: odata.FilterSelect},
			{Key: "Subject", Type: odata.FilterText},
		},
	},
	EntityOpportunities: {
		Set:            EntityOpportunities,
		DefaultOrderBy: "CloseDate asc",
		Expand:         "Account",
		Filters: []odata.FilterOption{
			{Key: "Stage", Type: odata.FilterSelect},
			{Key: "Name", Type: odata.FilterText},
		},
	},
	EntityEmployees: {
		Set:            EntityEmployees,
		DefaultOrderBy: "LastName asc,FirstName asc",
		Filters: []odata.FilterOption{
			{Key: "Department", Type: odata.FilterSelect},
			{Key: "LastName", Type: odata.FilterText},
		},
	},
	EntityTasks: {
		Set:            EntityTasks,
		DefaultOrderBy: "DueDate asc",
		Filters: []odata.FilterOption{
			{Key: "Status", Type: odata.FilterSelect},
			{Key: "OwnerId", Type: odata.FilterSelect},
			{Key: "Subject", Type: odata.FilterText},
		},
	},
	EntityWorkflowRules: {
		Set:            EntityWorkflowRules,
		DefaultOrderBy: "Name asc",
		Filters: []odata.FilterOption{
			{Key: "TargetEntity", Type: odata.FilterSelect},
			{Key: "Name", Type: odata.FilterText},
		},
	},
}

// LookupEntitySpec resolves an entity set by its collection name.
func LookupEntitySpec(name string) (EntitySpec, bool) {
	spec, ok := entitySpecs[EntitySet(name)]
	return spec, ok
}

// EntitySets lists all registered collection names in alphabetical order.
func EntitySets() []EntitySet {
	sets := make([]EntitySet, 0, len(entitySpecs))
	for set := range entitySpecs {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i] < sets[j] })
	return sets
}
