package http

import (
	"datarequests/internal/infrastructure/metrics"
	datarequesthandlers "datarequests/internal/interfaces/http/handlers/datarequest"
	"datarequests/internal/shared/logger"
	"datarequests/internal/shared/services/markdown"
)

type allHandlers struct {
	dataRequest *datarequesthandlers.Handler
}

func newHandlers(ucs *allUseCases, m *metrics.ActionMetrics, log logger.Interface) *allHandlers {
	return &allHandlers{
		dataRequest: datarequesthandlers.NewHandler(
			ucs.createDataRequest,
			ucs.showDataRequest,
			ucs.listDataRequests,
			ucs.createComment,
			ucs.listComments,
			ucs.updateStatus,
			markdown.NewRenderer(),
			m,
			log.Named("handler.datarequest"),
		),
	}
}
