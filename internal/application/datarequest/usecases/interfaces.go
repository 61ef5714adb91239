package usecases

import (
	"context"

	"datarequests/internal/application/datarequest/dto"
)

// Transactor runs fn inside one database transaction.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type CreateDataRequestExecutor interface {
	Execute(ctx context.Context, cmd CreateDataRequestCommand) (*dto.DataRequestDTO, error)
}

type ShowDataRequestExecutor interface {
	Execute(ctx context.Context, query ShowDataRequestQuery) (*dto.DataRequestDetailDTO, error)
}

type ListDataRequestsExecutor interface {
	Execute(ctx context.Context, query ListDataRequestsQuery) ([]dto.DataRequestListItemDTO, error)
}

type CreateCommentExecutor interface {
	Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error)
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error)
}
