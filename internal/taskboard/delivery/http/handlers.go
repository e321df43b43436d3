package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"crm-admin-gateway/internal/taskboard"
	"crm-admin-gateway/pkg/response"
)

// @Summary Task dashboard
// @Description Partitions the task list into overdue, dueSoon, upcoming and completed buckets
// @Tags Dashboard
// @Produce json
// @Param bucket query string false "Return a single bucket: overdue, dueSoon, upcoming, completed or all"
// @Param owner query string false "Restrict to one owner's tasks"
// @Success 200 {object} response.Resp{data=boardResp}
// @Failure 400 {object} response.Resp
// @Router /api/v1/dashboard/tasks [get]
func (h handler) Board(c *gin.Context) {
	ctx := c.Request.Context()

	var req boardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "taskboard.delivery.http.Board bind: %v", err)
		response.Error(c, err)
		return
	}

	out, err := h.uc.Board(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, taskboard.ErrUnknownBucket) {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "taskboard.delivery.http.Board: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, newBoardResp(out, req.Bucket != "", time.Now()))
}
