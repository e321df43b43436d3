package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/crm"
	"crm-admin-gateway/internal/model"
	"crm-admin-gateway/pkg/response"
)

// @Summary List entity records
// @Description Lists records of an entity set with search, sort, filter and pagination
// @Tags CRM
// @Produce json
// @Param set path string true "Entity set name"
// @Param search query string false "Free-text search term"
// @Param sort query string false "Sort expression, e.g. LastName asc"
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Page size"
// @Param session query string false "Console session id"
// @Success 200 {object} response.Resp{data=listResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/crm/{set} [get]
func (h handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListRequest(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.List: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newListResp(out))
}

// @Summary Get one record
// @Description Fetches a single record of an entity set by id
// @Tags CRM
// @Produce json
// @Param set path string true "Entity set name"
// @Param id path string true "Record id"
// @Success 200 {object} response.Resp{data=detailResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/crm/{set}/{id} [get]
func (h handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDetailRequest(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.Detail(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.Detail: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, detailResp{Record: out.Record})
}

// @Summary Create a record
// @Description Creates a record in an entity set
// @Tags CRM
// @Accept json
// @Produce json
// @Param set path string true "Entity set name"
// @Param payload body object true "Record fields"
// @Success 200 {object} response.Resp{data=detailResp}
// @Router /api/v1/crm/{set} [post]
func (h handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateRequest(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.Create: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, detailResp{Record: out.Record})
}

// @Summary Update a record
// @Description Applies a partial update to a record
// @Tags CRM
// @Accept json
// @Produce json
// @Param set path string true "Entity set name"
// @Param id path string true "Record id"
// @Param payload body object true "Fields to change"
// @Success 200 {object} response.Resp{data=detailResp}
// @Failure 404 {object} response.Resp
// @Router /api/v1/crm/{set}/{id} [patch]
func (h handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateRequest(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	out, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.Update: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, detailResp{Record: out.Record})
}

// @Summary Delete a record
// @Description Deletes a record of an entity set
// @Tags CRM
// @Produce json
// @Param set path string true "Entity set name"
// @Param id path string true "Record id"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/crm/{set}/{id} [delete]
func (h handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDeleteRequest(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	if err := h.uc.Delete(ctx, input); err != nil {
		h.l.Errorf(ctx, "crm.delivery.http.Delete: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}

// @Summary Queue a typeahead search
// @Description Debounces search-as-you-type input and warms the list cache for the session
// @Tags CRM
// @Accept json
// @Produce json
// @Param set path string true "Entity set name"
// @Param payload body searchReq true "Search term and session id"
// @Success 202 {object} response.Resp{data=searchAcceptedResp}
// @Router /api/v1/crm/{set}/search [post]
func (h handler) Search(c *gin.Context) {
	req, err := h.processSearchRequest(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	set := c.Param("set")
	if _, ok := model.LookupEntitySpec(set); !ok {
		h.mapError(c, crm.ErrUnknownEntitySet)
		return
	}

	input := crm.ListInput{
		EntitySet:   set,
		SearchTerm:  req.Query,
		CurrentPage: 1,
		PageSize:    h.defaultPageSize,
	}

	// Each keystroke restarts the timer; only the last query within the
	// window actually hits the backend.
	sess := h.sessions.get(req.Session)
	sess.deb.Trigger(func() {
		if _, err := h.uc.List(context.Background(), input); err != nil {
			h.l.Warnf(context.Background(), "crm.delivery.http.Search warm list: %v", err)
		}
	})

	c.JSON(http.StatusAccepted, response.NewOKResp(searchAcceptedResp{
		Session: req.Session,
		Queued:  true,
	}))
}

// @Summary List entity sets
// @Description Returns the entity sets the console can administer, with their filter schemas
// @Tags CRM
// @Produce json
// @Success 200 {object} response.Resp{data=entitySetsResp}
// @Router /api/v1/crm [get]
func (h handler) Sets(c *gin.Context) {
	sets := model.EntitySets()

	resp := entitySetsResp{Sets: make([]entitySetResp, 0, len(sets))}
	for _, set := range sets {
		spec, _ := model.LookupEntitySpec(string(set))
		fields := make([]entitySetFieldResp, 0, len(spec.Filters))
		for _, f := range spec.Filters {
			fields = append(fields, entitySetFieldResp{Key: f.Key, Type: filterTypeName(f.Type)})
		}
		resp.Sets = append(resp.Sets, entitySetResp{
			Name:           string(set),
			DefaultOrderBy: spec.DefaultOrderBy,
			Filters:        fields,
		})
	}

	response.OK(c, resp)
}
