package datarequest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/usecases"
	"datarequests/internal/domain/identity"
	"datarequests/internal/interfaces/http/middleware"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/utils"
)

type actionFunc func(ctx context.Context, caller identity.Caller, params actionParams) (interface{}, error)

func (h *Handler) actions() map[authz.Action]actionFunc {
	return map[authz.Action]actionFunc{
		authz.ActionCreate: func(ctx context.Context, caller identity.Caller, p actionParams) (interface{}, error) {
			return h.createUC.Execute(ctx, usecases.CreateDataRequestCommand{
				Caller:      caller,
				Title:       p.String("title"),
				Description: p.String("description"),
			})
		},
		authz.ActionShow: func(ctx context.Context, caller identity.Caller, p actionParams) (interface{}, error) {
			return h.showUC.Execute(ctx, usecases.ShowDataRequestQuery{
				Caller: caller,
				ID:     p.String("id"),
			})
		},
		authz.ActionList: func(ctx context.Context, caller identity.Caller, p actionParams) (interface{}, error) {
			includeComments, err := p.Bool("include_comments")
			if err != nil {
				return nil, err
			}
			return h.listUC.Execute(ctx, usecases.ListDataRequestsQuery{
				Caller:          caller,
				Status:          p.String("status"),
				IncludeComments: includeComments,
			})
		},
		authz.ActionCommentCreate: func(ctx context.Context, caller identity.Caller, p actionParams) (interface{}, error) {
			return h.createCommentUC.Execute(ctx, usecases.CreateCommentCommand{
				Caller:        caller,
				DataRequestID: p.String("data_request_id"),
				Content:       p.String("content"),
			})
		},
		authz.ActionCommentList: func(ctx context.Context, caller identity.Caller, p actionParams) (interface{}, error) {
			return h.listCommentsUC.Execute(ctx, usecases.ListCommentsQuery{
				Caller:        caller,
				DataRequestID: p.String("data_request_id"),
			})
		},
		authz.ActionStatusUpdate: func(ctx context.Context, caller identity.Caller, p actionParams) (interface{}, error) {
			return h.updateStatusUC.Execute(ctx, usecases.UpdateStatusCommand{
				Caller: caller,
				ID:     p.String("id"),
				Status: p.String("status"),
			})
		},
	}
}

// Action handles GET|POST /api/action/:name, the stable RPC surface. POST
// reads parameters from a JSON object body, GET from the query string.
func (h *Handler) Action(c *gin.Context) {
	name := authz.Action(c.Param("name"))

	fn, ok := h.actions()[name]
	if !ok {
		h.fail(c, errors.NewNotFoundError(fmt.Sprintf("Action %q not found", name)))
		return
	}

	params, err := readActionParams(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	caller := middleware.Caller(c)
	result, err := call(h, c, name, func(ctx context.Context) (interface{}, error) {
		return fn(ctx, caller, params)
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
