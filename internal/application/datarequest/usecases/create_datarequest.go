package usecases

import (
	"context"
	"fmt"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/dto"
	"datarequests/internal/domain/datarequest"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/logger"
	"datarequests/internal/shared/utils"
	"datarequests/internal/shared/utils/logutil"
)

type CreateDataRequestCommand struct {
	Caller      identity.Caller `json:"-"`
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
}

type CreateDataRequestUseCase struct {
	repo       datarequest.Repository
	txMgr      Transactor
	authorizer authz.Authorizer
	resolver   identity.IdentityResolver
	logger     logger.Interface
}

func NewCreateDataRequestUseCase(
	repo datarequest.Repository,
	txMgr Transactor,
	authorizer authz.Authorizer,
	resolver identity.IdentityResolver,
	logger logger.Interface,
) *CreateDataRequestUseCase {
	return &CreateDataRequestUseCase{
		repo:       repo,
		txMgr:      txMgr,
		authorizer: authorizer,
		resolver:   resolver,
		logger:     logger,
	}
}

func (uc *CreateDataRequestUseCase) Execute(ctx context.Context, cmd CreateDataRequestCommand) (*dto.DataRequestDTO, error) {
	if err := authorize(ctx, uc.authorizer, authz.ActionCreate, cmd.Caller, uc.logger); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid create data request parameters", "user_id", cmd.Caller.UserID, "error", err)
		return nil, err
	}

	req, err := datarequest.NewDataRequest(cmd.Title, cmd.Description, cmd.Caller.UserID)
	if err != nil {
		uc.logger.Warnw("rejected data request", "user_id", cmd.Caller.UserID, "error", err)
		return nil, err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.repo.Save(txCtx, req)
	})
	if err != nil {
		uc.logger.Errorw("failed to save data request", "user_id", cmd.Caller.UserID, "error", err)
		return nil, fmt.Errorf("failed to save data request: %w", err)
	}

	uc.logger.Infow("data request created",
		"id", req.ID(),
		"user_id", req.OwnerID(),
		"title", logutil.Excerpt(req.Title(), 60),
	)

	out := dto.ToDataRequestDTO(req, newAuthorDirectory(uc.resolver, uc.logger).lookup(ctx, req.OwnerID()))
	return &out, nil
}
