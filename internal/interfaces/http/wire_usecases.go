package http

import (
	"gorm.io/gorm"

	"datarequests/internal/application/datarequest/authz"
	"datarequests/internal/application/datarequest/usecases"
	"datarequests/internal/domain/identity"
	"datarequests/internal/shared/db"
	"datarequests/internal/shared/logger"
)

type allUseCases struct {
	createDataRequest *usecases.CreateDataRequestUseCase
	showDataRequest   *usecases.ShowDataRequestUseCase
	listDataRequests  *usecases.ListDataRequestsUseCase
	createComment     *usecases.CreateCommentUseCase
	listComments      *usecases.ListCommentsUseCase
	updateStatus      *usecases.UpdateStatusUseCase
}

func newUseCases(
	repos *repositories,
	gdb *gorm.DB,
	authorizer authz.Authorizer,
	resolver identity.IdentityResolver,
	log logger.Interface,
) *allUseCases {
	txMgr := db.NewTransactionManager(gdb)
	ucLog := log.Named("datarequest")

	return &allUseCases{
		createDataRequest: usecases.NewCreateDataRequestUseCase(repos.dataRequestRepo, txMgr, authorizer, resolver, ucLog),
		showDataRequest:   usecases.NewShowDataRequestUseCase(repos.dataRequestRepo, repos.commentRepo, txMgr, authorizer, resolver, ucLog),
		listDataRequests:  usecases.NewListDataRequestsUseCase(repos.dataRequestRepo, repos.commentRepo, txMgr, authorizer, resolver, ucLog),
		createComment:     usecases.NewCreateCommentUseCase(repos.dataRequestRepo, repos.commentRepo, txMgr, authorizer, resolver, ucLog),
		listComments:      usecases.NewListCommentsUseCase(repos.dataRequestRepo, repos.commentRepo, txMgr, authorizer, resolver, ucLog),
		updateStatus:      usecases.NewUpdateStatusUseCase(repos.dataRequestRepo, txMgr, authorizer, ucLog),
	}
}
