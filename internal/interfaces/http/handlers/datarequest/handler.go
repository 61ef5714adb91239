package datarequest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/dto"
	"datarequests/internal/application/datarequest/usecases"
	"datarequests/internal/interfaces/http/middleware"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/logger"
	"datarequests/internal/shared/services/markdown"
	"datarequests/internal/shared/utils"
)

// ActionObserver records the outcome of each action call.
type ActionObserver interface {
	Observe(action string, started time.Time, err error)
}

type Handler struct {
	createUC        usecases.CreateDataRequestExecutor
	showUC          usecases.ShowDataRequestExecutor
	listUC          usecases.ListDataRequestsExecutor
	createCommentUC usecases.CreateCommentExecutor
	listCommentsUC  usecases.ListCommentsExecutor
	updateStatusUC  usecases.UpdateStatusExecutor
	renderer        markdown.Renderer
	observer        ActionObserver
	logger          logger.Interface
}

func NewHandler(
	createUC usecases.CreateDataRequestExecutor,
	showUC usecases.ShowDataRequestExecutor,
	listUC usecases.ListDataRequestsExecutor,
	createCommentUC usecases.CreateCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	renderer markdown.Renderer,
	observer ActionObserver,
	log logger.Interface,
) *Handler {
	return &Handler{
		createUC:        createUC,
		showUC:          showUC,
		listUC:          listUC,
		createCommentUC: createCommentUC,
		listCommentsUC:  listCommentsUC,
		updateStatusUC:  updateStatusUC,
		renderer:        renderer,
		observer:        observer,
		logger:          log,
	}
}

// ShowPage is the payload of GET /datarequests/:id.
type ShowPage struct {
	DataRequest *dto.DataRequestDetailDTO `json:"data_request"`
	Comments    []dto.CommentDTO          `json:"comments"`
}

type createRequestBody struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
}

type commentBody struct {
	Content string `json:"content" form:"content"`
}

type statusBody struct {
	Status string `json:"status" form:"status"`
}

// List handles GET /datarequests. Comments are included unless the caller
// turns them off.
func (h *Handler) List(c *gin.Context) {
	includeComments, err := utils.QueryBool(c, "include_comments", true)
	if err != nil {
		h.fail(c, err)
		return
	}

	query := usecases.ListDataRequestsQuery{
		Caller:          middleware.Caller(c),
		Status:          c.Query("status"),
		IncludeComments: includeComments,
	}
	result, err := call(h, c, authz.ActionList, func(ctx context.Context) ([]dto.DataRequestListItemDTO, error) {
		return h.listUC.Execute(ctx, query)
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Create handles POST /datarequests
func (h *Handler) Create(c *gin.Context) {
	var body createRequestBody
	if err := c.ShouldBind(&body); err != nil {
		h.fail(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateDataRequestCommand{
		Caller:      middleware.Caller(c),
		Title:       body.Title,
		Description: body.Description,
	}
	result, err := call(h, c, authz.ActionCreate, func(ctx context.Context) (*dto.DataRequestDTO, error) {
		return h.createUC.Execute(ctx, cmd)
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Data request created")
}

// Show handles GET /datarequests/:id with the request's comments.
// ?render=html adds sanitized HTML renderings of the markdown text.
func (h *Handler) Show(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	caller := middleware.Caller(c)
	detail, err := call(h, c, authz.ActionShow, func(ctx context.Context) (*dto.DataRequestDetailDTO, error) {
		return h.showUC.Execute(ctx, usecases.ShowDataRequestQuery{Caller: caller, ID: requestID})
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	comments, err := call(h, c, authz.ActionCommentList, func(ctx context.Context) ([]dto.CommentDTO, error) {
		return h.listCommentsUC.Execute(ctx, usecases.ListCommentsQuery{Caller: caller, DataRequestID: requestID})
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	page := &ShowPage{DataRequest: detail, Comments: comments}
	if c.Query("render") == "html" {
		if err := h.renderPage(page); err != nil {
			h.fail(c, err)
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", page)
}

// ListComments handles GET /datarequests/:id/comments
func (h *Handler) ListComments(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	query := usecases.ListCommentsQuery{Caller: middleware.Caller(c), DataRequestID: requestID}
	result, err := call(h, c, authz.ActionCommentList, func(ctx context.Context) ([]dto.CommentDTO, error) {
		return h.listCommentsUC.Execute(ctx, query)
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateComment handles POST /datarequests/:id/comments
func (h *Handler) CreateComment(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	var body commentBody
	if err := c.ShouldBind(&body); err != nil {
		h.fail(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateCommentCommand{
		Caller:        middleware.Caller(c),
		DataRequestID: requestID,
		Content:       body.Content,
	}
	result, err := call(h, c, authz.ActionCommentCreate, func(ctx context.Context) (*dto.CommentDTO, error) {
		return h.createCommentUC.Execute(ctx, cmd)
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added")
}

// UpdateStatus handles POST /datarequests/:id/status
func (h *Handler) UpdateStatus(c *gin.Context) {
	requestID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		h.fail(c, err)
		return
	}

	var body statusBody
	if err := c.ShouldBind(&body); err != nil {
		h.fail(c, errors.NewBadRequestError("Invalid request body", err.Error()))
		return
	}

	cmd := usecases.UpdateStatusCommand{
		Caller: middleware.Caller(c),
		ID:     requestID,
		Status: body.Status,
	}
	result, err := call(h, c, authz.ActionStatusUpdate, func(ctx context.Context) (*dto.StatusDTO, error) {
		return h.updateStatusUC.Execute(ctx, cmd)
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated", result)
}

// call runs one action and reports its outcome to the observer.
func call[T any](h *Handler, c *gin.Context, action authz.Action, fn func(ctx context.Context) (T, error)) (T, error) {
	started := time.Now()
	result, err := fn(c.Request.Context())
	if h.observer != nil {
		h.observer.Observe(string(action), started, err)
	}
	return result, err
}

// fail logs at a level matching the error kind and writes the envelope.
func (h *Handler) fail(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil && appErr.Code < http.StatusInternalServerError {
		h.logger.Warnw("request rejected", "path", c.Request.URL.Path, "type", appErr.Type, "message", appErr.Message)
	} else {
		h.logger.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
	}
	_ = c.Error(err)
	utils.ErrorResponseWithError(c, err)
}

func (h *Handler) renderPage(page *ShowPage) error {
	html, err := h.renderer.Render(page.DataRequest.Description)
	if err != nil {
		return err
	}
	page.DataRequest.DescriptionHTML = html

	for i := range page.Comments {
		html, err := h.renderer.Render(page.Comments[i].Content)
		if err != nil {
			return err
		}
		page.Comments[i].ContentHTML = html
	}
	return nil
}
