package usecases

import (
	"context"
	"fmt"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/dto"
	"datarequests/internal/domain/datarequest"
	vo "datarequests/internal/domain/datarequest/valueobjects"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/errors"
	"datarequests/internal/shared/logger"
	"datarequests/internal/shared/utils"
)

type UpdateStatusCommand struct {
	Caller identity.Caller `json:"-"`
	ID     string          `json:"id" validate:"required"`
	Status string          `json:"status" validate:"required,oneof=open closed"`
}

// UpdateStatusUseCase moves a request between open and closed. Concurrent
// updates are last-writer-wins.
type UpdateStatusUseCase struct {
	repo       datarequest.Repository
	txMgr      Transactor
	authorizer authz.Authorizer
	logger     logger.Interface
}

func NewUpdateStatusUseCase(
	repo datarequest.Repository,
	txMgr Transactor,
	authorizer authz.Authorizer,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		repo:       repo,
		txMgr:      txMgr,
		authorizer: authorizer,
		logger:     logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error) {
	if err := authorize(ctx, uc.authorizer, authz.ActionStatusUpdate, cmd.Caller, uc.logger); err != nil {
		return nil, err
	}

	if err := utils.ValidateStruct(cmd); err != nil {
		uc.logger.Warnw("invalid status update parameters", "id", cmd.ID, "status", cmd.Status, "error", err)
		return nil, err
	}

	var req *datarequest.DataRequest
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if req, err = uc.repo.GetByID(txCtx, cmd.ID); err != nil {
			return err
		}
		if err := req.ChangeStatus(vo.Status(cmd.Status)); err != nil {
			return err
		}
		return uc.repo.UpdateStatus(txCtx, req)
	})
	if err != nil {
		if errors.IsNotFoundError(err) || errors.IsValidationError(err) {
			uc.logger.Warnw("status update rejected", "id", cmd.ID, "error", err)
			return nil, err
		}
		uc.logger.Errorw("failed to update status", "id", cmd.ID, "error", err)
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	uc.logger.Infow("data request status updated", "id", req.ID(), "status", req.Status(), "user_id", cmd.Caller.UserID)
	return dto.ToStatusDTO(req), nil
}
