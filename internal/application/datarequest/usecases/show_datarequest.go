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

type ShowDataRequestQuery struct {
	Caller identity.Caller `json:"-"`
	ID     string          `json:"id" validate:"required"`
}

type ShowDataRequestUseCase struct {
	repo        datarequest.Repository
	commentRepo datarequest.CommentRepository
	txMgr       Transactor
	authorizer  authz.Authorizer
	resolver    identity.IdentityResolver
	logger      logger.Interface
}

func NewShowDataRequestUseCase(
	repo datarequest.Repository,
	commentRepo datarequest.CommentRepository,
	txMgr Transactor,
	authorizer authz.Authorizer,
	resolver identity.IdentityResolver,
	logger logger.Interface,
) *ShowDataRequestUseCase {
	return &ShowDataRequestUseCase{
		repo:        repo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		authorizer:  authorizer,
		resolver:    resolver,
		logger:      logger,
	}
}

func (uc *ShowDataRequestUseCase) Execute(ctx context.Context, query ShowDataRequestQuery) (*dto.DataRequestDetailDTO, error) {
	if err := authorize(ctx, uc.authorizer, authz.ActionShow, query.Caller, uc.logger); err != nil {
		return nil, err
	}
	if err := utils.ValidateStruct(query); err != nil {
		return nil, err
	}

	var (
		req   *datarequest.DataRequest
		count int64
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if req, err = uc.repo.GetByID(txCtx, query.ID); err != nil {
			return err
		}
		count, err = uc.commentRepo.CountByRequestID(txCtx, req.ID())
		return err
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("data request not found", "id", query.ID)
			return nil, err
		}
		uc.logger.Errorw("failed to show data request", "id", query.ID, "error", err)
		return nil, fmt.Errorf("failed to show data request: %w", err)
	}

	author := newAuthorDirectory(uc.resolver, uc.logger).lookup(ctx, req.OwnerID())
	return &dto.DataRequestDetailDTO{
		DataRequestDTO: dto.ToDataRequestDTO(req, author),
		CommentCount:   count,
	}, nil
}
