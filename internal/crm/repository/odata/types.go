package odata

import "encoding/json"

// listEnvelope is the OData v4 collection payload.
type listEnvelope struct {
	Value []json.RawMessage `json:"value"`
	Count *int              `json:"@odata.count"`
}

// ListResult carries one page of raw records plus the server-side total.
// Count falls back to len(Items) when the backend omits @odata.count.
type ListResult struct {
	Items []json.RawMessage
	Count int
}
