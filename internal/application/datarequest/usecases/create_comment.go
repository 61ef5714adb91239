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
	"datarequests/internal/shared/utils/logutil"
)

type CreateCommentCommand struct {
	Caller        identity.Caller `json:"-"`
	DataRequestID string          `json:"data_request_id" validate:"required"`
	Content       string          `json:"content" validate:"notblank"`
}

type CreateCommentUseCase struct {
	repo        datarequest.Repository
	commentRepo datarequest.CommentRepository
	txMgr       Transactor
	authorizer  authz.Authorizer
	resolver    identity.IdentityResolver
	logger      logger.Interface
}

func NewCreateCommentUseCase(
	repo datarequest.Repository,
	commentRepo datarequest.CommentRepository,
	txMgr Transactor,
	authorizer authz.Authorizer,
	resolver identity.IdentityResolver,
	logger logger.Interface,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		repo:        repo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		authorizer:  authorizer,
		resolver:    resolver,
		logger:      logger,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CommentDTO, error) {
	if err := authorize(ctx, uc.authorizer, authz.ActionCommentCreate, cmd.Caller, uc.logger); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid comment parameters", "data_request_id", cmd.DataRequestID, "error", err)
		return nil, err
	}

	comment, err := datarequest.NewComment(cmd.DataRequestID, cmd.Caller.UserID, cmd.Content)
	if err != nil {
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.repo.Exists(txCtx, cmd.DataRequestID)
		if err != nil {
			return err
		}
		if !exists {
			return errors.NewNotFoundError(msgRequestNotFound)
		}
		return uc.commentRepo.Save(txCtx, comment)
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("comment on unknown data request", "data_request_id", cmd.DataRequestID)
			return nil, err
		}
		uc.logger.Errorw("failed to save comment", "data_request_id", cmd.DataRequestID, "error", err)
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	uc.logger.Infow("comment created",
		"id", comment.ID(),
		"data_request_id", comment.DataRequestID(),
		"user_id", comment.AuthorID(),
		"content", logutil.Excerpt(comment.Content(), 60),
	)

	out := dto.ToCommentDTO(comment, newAuthorDirectory(uc.resolver, uc.logger).lookup(ctx, comment.AuthorID()))
	return &out, nil
}
