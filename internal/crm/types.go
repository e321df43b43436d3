package crm

// Record is a schemaless CRM entity document as returned by the backend.
// Only the Tasks set gets a typed model (the dashboard needs its fields);
// everything else is passed through for rendering.
type Record map[string]any

// --- UseCase Inputs ---

type ListInput struct {
	EntitySet  string
	SearchTerm string
	SortBy     string
	Filters    map[string]string

	// CurrentPage and PageSize are clamped by the delivery layer; the
	// query builder itself does not validate them.
	CurrentPage int
	PageSize    int
}

type DetailInput struct {
	EntitySet string
	ID        string
}

type CreateInput struct {
	EntitySet string
	Payload   Record
}

type UpdateInput struct {
	EntitySet string
	ID        string
	Payload   Record
}

type DeleteInput struct {
	EntitySet string
	ID        string
}

// --- UseCase Outputs ---

type ListOutput struct {
	Records  []Record
	Count    int
	Page     int
	PageSize int
}

type DetailOutput struct {
	Record Record
}

type CreateOutput struct {
	Record Record
}

type UpdateOutput struct {
	Record Record
}
