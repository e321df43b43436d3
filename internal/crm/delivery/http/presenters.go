package http

import (
	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/pkg/odata"
)

type listReq struct {
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`

	// Session identifies a console tab; when present the list pager
	// rewinds to page 1 whenever search, sort, or filters change.
	Session string `form:"session"`
}

func (req listReq) toInput(set string, filters map[string]string) crm.ListInput {
	return crm.ListInput{
		EntitySet:   set,
		SearchTerm:  req.Search,
		SortBy:      req.Sort,
		Filters:     filters,
		CurrentPage: req.Page,
		PageSize:    req.PageSize,
	}
}

type searchReq struct {
	Query   string `json:"query"`
	Session string `json:"session" binding:"required"`
}

type listResp struct {
	Items    []crm.Record `json:"items"`
	Count    int          `json:"count"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

func newListResp(out crm.ListOutput) listResp {
	items := out.Records
	if items == nil {
		items = []crm.Record{}
	}
	return listResp{
		Items:    items,
		Count:    out.Count,
		Page:     out.Page,
		PageSize: out.PageSize,
	}
}

type detailResp struct {
	Record crm.Record `json:"record"`
}

type searchAcceptedResp struct {
	Session string `json:"session"`
	Queued  bool   `json:"queued"`
}

type entitySetsResp struct {
	Sets []entitySetResp `json:"sets"`
}

type entitySetResp struct {
	Name           string               `json:"name"`
	DefaultOrderBy string               `json:"default_order_by"`
	Filters        []entitySetFieldResp `json:"filters"`
}

type entitySetFieldResp struct {
	Key  string `json:"key"`
	Type string `json:"type"`
}

func filterTypeName(t odata.FilterType) string {
	if t == odata.FilterSelect {
		return "select"
	}
	return "text"
}
