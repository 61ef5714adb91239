package datarequest

import (
	"context"

	vo "datarequests/internal/domain/datarequest/valueobjects"
)

// Repository persists data requests. GetByID returns a not_found AppError
// when no row matches.
type Repository interface {
	Save(ctx context.Context, req *DataRequest) error
	UpdateStatus(ctx context.Context, req *DataRequest) error
	GetByID(ctx context.Context, id string) (*DataRequest, error)
	Exists(ctx context.Context, id string) (bool, error)
	// List returns requests newest first.
	List(ctx context.Context, filter Filter) ([]*DataRequest, error)
	// Delete removes the request; its comments go with it.
	Delete(ctx context.Context, id string) error
}

type Filter struct {
	Status *vo.Status
}

// CommentRepository persists comments. Lists are ordered oldest first.
type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByRequestID(ctx context.Context, requestID string) ([]*Comment, error)
	ListByRequestIDs(ctx context.Context, requestIDs []string) (map[string][]*Comment, error)
	CountByRequestID(ctx context.Context, requestID string) (int64, error)
	CountByRequestIDs(ctx context.Context, requestIDs []string) (map[string]int64, error)
}
