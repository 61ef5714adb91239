package usecases

import (
	"context"
	"fmt"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/dto"
	"datarequests/internal/domain/datarequest"
	vo "datarequests/internal/domain/datarequest/valueobjects"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/logger"
)

// ListDataRequestsQuery filters by status only when Status is exactly "open"
// or "closed".
type ListDataRequestsQuery struct {
	Caller          identity.Caller `json:"-"`
	Status          string          `json:"status"`
	IncludeComments bool            `json:"include_comments"`
}

type ListDataRequestsUseCase struct {
	repo        datarequest.Repository
	commentRepo datarequest.CommentRepository
	txMgr       Transactor
	authorizer  authz.Authorizer
	resolver    identity.IdentityResolver
	logger      logger.Interface
}

func NewListDataRequestsUseCase(
	repo datarequest.Repository,
	commentRepo datarequest.CommentRepository,
	txMgr Transactor,
	authorizer authz.Authorizer,
	resolver identity.IdentityResolver,
	logger logger.Interface,
) *ListDataRequestsUseCase {
	return &ListDataRequestsUseCase{
		repo:        repo,
		commentRepo: commentRepo,
		txMgr:       txMgr,
		authorizer:  authorizer,
		resolver:    resolver,
		logger:      logger,
	}
}

func (uc *ListDataRequestsUseCase) Execute(ctx context.Context, query ListDataRequestsQuery) ([]dto.DataRequestListItemDTO, error) {
	if err := authorize(ctx, uc.authorizer, authz.ActionList, query.Caller, uc.logger); err != nil {
		return nil, err
	}

	filter := datarequest.Filter{Status: vo.ParseFilter(query.Status)}

	var (
		requests []*datarequest.DataRequest
		counts   map[string]int64
		comments map[string][]*datarequest.Comment
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		if requests, err = uc.repo.List(txCtx, filter); err != nil {
			return err
		}
		if len(requests) == 0 {
			return nil
		}

		ids := make([]string, len(requests))
		for i, r := range requests {
			ids[i] = r.ID()
		}
		if counts, err = uc.commentRepo.CountByRequestIDs(txCtx, ids); err != nil {
			return err
		}
		if query.IncludeComments {
			comments, err = uc.commentRepo.ListByRequestIDs(txCtx, ids)
		}
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to list data requests", "status", query.Status, "error", err)
		return nil, fmt.Errorf("failed to list data requests: %w", err)
	}

	authors := newAuthorDirectory(uc.resolver, uc.logger)
	out := make([]dto.DataRequestListItemDTO, 0, len(requests))
	for _, r := range requests {
		item := dto.DataRequestListItemDTO{
			DataRequestDTO: dto.ToDataRequestDTO(r, authors.lookup(ctx, r.OwnerID())),
			CommentCount:   counts[r.ID()],
		}
		if query.IncludeComments {
			thread := comments[r.ID()]
			item.Comments = make([]dto.CommentDTO, 0, len(thread))
			for _, c := range thread {
				item.Comments = append(item.Comments, dto.ToCommentDTO(c, authors.lookup(ctx, c.AuthorID())))
			}
		}
		out = append(out, item)
	}

	uc.logger.Debugw("data requests listed", "count", len(out), "status", query.Status, "include_comments", query.IncludeComments)
	return out, nil
}
