package http

import (
	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/pkg/odata"
)

func (h handler) processListRequest(c *gin.Context) (crm.ListInput, error) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.processListRequest bind: %v", err)
		return crm.ListInput{}, errWrongQuery
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = h.defaultPageSize
	}
	if req.PageSize > h.maxPageSize {
		req.PageSize = h.maxPageSize
	}

	// Filter values arrive as filter[Key]=value pairs.
	filters := c.QueryMap("filter")

	input := req.toInput(c.Param("set"), filters)

	if req.Session != "" {
		state := h.sessions.get(req.Session).apply(odata.QueryState{
			SearchTerm:  input.SearchTerm,
			SortBy:      input.SortBy,
			Filters:     input.Filters,
			CurrentPage: input.CurrentPage,
			PageSize:    input.PageSize,
		})
		input.CurrentPage = state.CurrentPage
	}

	return input, nil
}

func (h handler) processDetailRequest(c *gin.Context) (crm.DetailInput, error) {
	id := c.Param("id")
	if id == "" {
		return crm.DetailInput{}, errMissingID
	}
	return crm.DetailInput{EntitySet: c.Param("set"), ID: id}, nil
}

func (h handler) processCreateRequest(c *gin.Context) (crm.CreateInput, error) {
	ctx := c.Request.Context()

	var payload crm.Record
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.processCreateRequest bind: %v", err)
		return crm.CreateInput{}, errWrongBody
	}
	return crm.CreateInput{EntitySet: c.Param("set"), Payload: payload}, nil
}

func (h handler) processUpdateRequest(c *gin.Context) (crm.UpdateInput, error) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		return crm.UpdateInput{}, errMissingID
	}

	var payload crm.Record
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.processUpdateRequest bind: %v", err)
		return crm.UpdateInput{}, errWrongBody
	}
	return crm.UpdateInput{EntitySet: c.Param("set"), ID: id, Payload: payload}, nil
}

func (h handler) processDeleteRequest(c *gin.Context) (crm.DeleteInput, error) {
	id := c.Param("id")
	if id == "" {
		return crm.DeleteInput{}, errMissingID
	}
	return crm.DeleteInput{EntitySet: c.Param("set"), ID: id}, nil
}

func (h handler) processSearchRequest(c *gin.Context) (searchReq, error) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.processSearchRequest bind: %v", err)
		return searchReq{}, errWrongBody
	}
	return req, nil
}
