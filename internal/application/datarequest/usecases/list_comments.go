package usecases

import (
	"context"
	"fmt"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/dto"
	"datarequests/internal/domain/datarequest"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/logger"
	"datarequests/internal/shared/utils"
)

type ListCommentsQuery struct {
	Caller        identity.Caller `json:"-"`
	DataRequestID string          `json:"data_request_id" validate:"required"`
}

type ListCommentsUseCase struct {
	repo        datarequest.Repository
	commentRepo datarequest.CommentRepository
	txMgr       Transactor
	authorizer  authz.Authorizer
	resolver    identity.IdentityResolver
	logger      logger.Interface
}

func NewListCommentsUseCase(
	repo datarequest.Repository,
	commentRepo datarequest.CommentRepository,
	txMgr Transactor,
	authorizer authz.Authorizer,
	resolver identity.IdentityResolver,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		repo:        repo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		authorizer:  authorizer,
		resolver:    resolver,
		logger:      logger,
	}
}

// Execute returns the thread oldest first.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	if err := authorize(ctx, uc.authorizer, authz.ActionCommentList, query.Caller, uc.logger); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(query); err != nil {
		return nil, err
	}

	var comments []*datarequest.Comment
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.repo.Exists(txCtx, query.DataRequestID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError(msgRequestNotFound)
		}
		comments, err = uc.commentRepo.ListByRequestID(txCtx, query.DataRequestID)
		return err
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to list comments", "data_request_id", query.DataRequestID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	authors := newAuthorDirectory(uc.resolver, uc.logger)
	out := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		out = append(out, dto.ToCommentDTO(c, authors.lookup(ctx, c.AuthorID())))
	}
	return out, nil
}
